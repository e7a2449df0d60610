package usecase

import (
	"context"
	"net/url"
	"time"

	"tours/internal/domain/entity"

	"github.com/google/uuid"
)

// ListToursInput carries the raw query string of a listing request:
// filters such as price[lt]=500, sort, fields, page and limit.
type ListToursInput struct {
	Query url.Values
}

// ListToursOutput is one page of tours. Fields is the requested projection;
// empty means all fields.
type ListToursOutput struct {
	Tours  []*entity.Tour
	Fields []string
}

// CreateTourInput defines a new tour. Optional numeric fields are pointers.
type CreateTourInput struct {
	Name            string
	Duration        int
	MaxGroupSize    int
	Difficulty      string
	RatingsAverage  *float64
	RatingsQuantity *int
	Price           float64
	PriceDiscount   *float64
	Summary         string
	Description     string
	ImageCover      string
	Images          []string
	StartDates      []time.Time
	SecretTour      bool
}

// UpdateTourInput is a partial update; nil fields are left unchanged.
type UpdateTourInput struct {
	ID              uuid.UUID
	Name            *string
	Duration        *int
	MaxGroupSize    *int
	Difficulty      *string
	RatingsAverage  *float64
	RatingsQuantity *int
	Price           *float64
	PriceDiscount   *float64
	Summary         *string
	Description     *string
	ImageCover      *string
	Images          []string
	StartDates      []time.Time
	SecretTour      *bool
}

// TourUsecase defines the tour catalogue operations.
type TourUsecase interface {
	List(ctx context.Context, input *ListToursInput) (*ListToursOutput, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Tour, error)
	Create(ctx context.Context, input *CreateTourInput) (*entity.Tour, error)
	Update(ctx context.Context, input *UpdateTourInput) (*entity.Tour, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Stats summarises well-rated tours per difficulty.
	Stats(ctx context.Context) ([]*entity.TourStats, error)

	// MonthlyPlan counts tour starts per month of year, busiest month first.
	MonthlyPlan(ctx context.Context, year int) ([]*entity.MonthlyPlan, error)
}
