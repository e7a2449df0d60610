package repository

import (
	"context"
	"errors"

	"tours/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTourNotFound is returned when a tour does not exist or is secret.
var ErrTourNotFound = errors.New("tour not found")

// Comparison is the operator of a TourFilter.
type Comparison string

const (
	CompareEq  Comparison = "eq"
	CompareGt  Comparison = "gt"
	CompareGte Comparison = "gte"
	CompareLt  Comparison = "lt"
	CompareLte Comparison = "lte"
)

// TourFilter restricts a tour listing on one attribute.
type TourFilter struct {
	Field string // API attribute name, e.g. "price".
	Op    Comparison
	Value any
}

// SortField orders a tour listing on one attribute.
type SortField struct {
	Field string
	Desc  bool
}

// TourQuery describes a page of tours.
type TourQuery struct {
	Filters []TourFilter
	Sort    []SortField
	Offset  int
	Limit   int
}

// TourRepository defines persistence for tours. Secret tours are invisible to
// every read operation.
type TourRepository interface {
	List(ctx context.Context, query TourQuery) ([]*entity.Tour, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Tour, error)
	Create(ctx context.Context, tour *entity.Tour) error
	Update(ctx context.Context, tour *entity.Tour) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Stats groups tours rated at least minRating by difficulty, cheapest average first.
	Stats(ctx context.Context, minRating float64) ([]*entity.TourStats, error)

	// StartDates returns the name and the starts within year of every tour
	// starting at least once in year.
	StartDates(ctx context.Context, year int) ([]*entity.Tour, error)
}
