package impl

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	deliverycontext "tours/internal/delivery/context"
	"tours/internal/domain/entity"
	domainerrors "tours/internal/domain/errors"
	"tours/internal/domain/repository"
	"tours/internal/errors"
	"tours/internal/usecase"
	"tours/internal/util"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

// statsMinRating is the rating a tour needs to count in Stats.
const statsMinRating = 4.5

// tourRules mirrors the validated attributes of a tour.
type tourRules struct {
	Name           string  `validate:"required,min=10,max=40"`
	Duration       int     `validate:"gt=0"`
	MaxGroupSize   int     `validate:"gte=1"`
	Difficulty     string  `validate:"required,oneof=easy medium difficult"`
	RatingsAverage float64 `validate:"gte=1,lte=5"`
	Price          float64 `validate:"gt=0"`
	Summary        string  `validate:"required"`
	ImageCover     string  `validate:"required"`
}

var tourMessages = map[string]string{
	"Name.required":       "A tour must have a name",
	"Name.min":            "A tour name must have more or equal then 10 characters",
	"Name.max":            "A tour name must have less or equal then 40 characters",
	"Duration.gt":         "A tour must have a duration",
	"MaxGroupSize.gte":    "A tour must have a group size",
	"Difficulty.required": "A tour must have a difficulty",
	"Difficulty.oneof":    "Difficulty is either: easy, medium, difficult",
	"RatingsAverage.gte":  "Rating must be above 1.0",
	"RatingsAverage.lte":  "Rating must be below 5.0",
	"Price.gt":            "A tour must have a price",
	"Summary.required":    "A tour must have a summary",
	"ImageCover.required": "A tour must have a cover image",
}

// tourService implements the TourUsecase interface.
type tourService struct {
	tourRepo repository.TourRepository
	logger   *slog.Logger
}

// TourServiceParams holds dependencies for TourService, injected by Fx.
type TourServiceParams struct {
	fx.In

	TourRepo repository.TourRepository
	Logger   *slog.Logger
}

// NewTourService is the constructor for tourService.
func NewTourService(params TourServiceParams) usecase.TourUsecase {
	return &tourService{
		tourRepo: params.TourRepo,
		logger:   params.Logger,
	}
}

func (srv *tourService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *tourService) List(ctx context.Context, input *usecase.ListToursInput) (*usecase.ListToursOutput, error) {
	query, fields, err := parseTourQuery(input.Query)
	if err != nil {
		return nil, err
	}

	tours, err := srv.tourRepo.List(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tours")
	}

	return &usecase.ListToursOutput{Tours: tours, Fields: fields}, nil
}

func (srv *tourService) Get(ctx context.Context, id uuid.UUID) (*entity.Tour, error) {
	tour, err := srv.tourRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrTourNotFound) {
		return nil, domainerrors.ErrTourNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get tour")
	}

	return tour, nil
}

// Create validates and stores a tour. Missing ratings start at 4.5 and 0.
func (srv *tourService) Create(ctx context.Context, input *usecase.CreateTourInput) (*entity.Tour, error) {
	tour := &entity.Tour{
		Name:           strings.TrimSpace(input.Name),
		Duration:       input.Duration,
		MaxGroupSize:   input.MaxGroupSize,
		Difficulty:     entity.Difficulty(strings.TrimSpace(input.Difficulty)),
		RatingsAverage: entity.DefaultRatingsAverage,
		Price:          input.Price,
		PriceDiscount:  input.PriceDiscount,
		Summary:        strings.TrimSpace(input.Summary),
		Description:    strings.TrimSpace(input.Description),
		ImageCover:     strings.TrimSpace(input.ImageCover),
		Images:         input.Images,
		StartDates:     input.StartDates,
		SecretTour:     input.SecretTour,
	}
	if input.RatingsAverage != nil {
		tour.RatingsAverage = *input.RatingsAverage
	}
	if input.RatingsQuantity != nil {
		tour.RatingsQuantity = *input.RatingsQuantity
	}
	tour.Slug = util.Slugify(tour.Name)

	if err := validateTour(tour); err != nil {
		return nil, err
	}

	if err := srv.tourRepo.Create(ctx, tour); err != nil {
		return nil, errors.Wrap(err, "failed to create tour")
	}

	srv.log(ctx).Info("Tour created", slog.String("tourID", tour.ID.String()))

	return tour, nil
}

// Update merges input into the stored tour and validates the result.
func (srv *tourService) Update(ctx context.Context, input *usecase.UpdateTourInput) (*entity.Tour, error) {
	tour, err := srv.Get(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	applyTourUpdate(tour, input)

	if err := validateTour(tour); err != nil {
		return nil, err
	}

	if err := srv.tourRepo.Update(ctx, tour); err != nil {
		if errors.Is(err, repository.ErrTourNotFound) {
			return nil, domainerrors.ErrTourNotFound
		}

		return nil, errors.Wrap(err, "failed to update tour")
	}

	return tour, nil
}

func applyTourUpdate(tour *entity.Tour, input *usecase.UpdateTourInput) {
	if input.Name != nil {
		tour.Name = strings.TrimSpace(*input.Name)
		tour.Slug = util.Slugify(tour.Name)
	}
	if input.Duration != nil {
		tour.Duration = *input.Duration
	}
	if input.MaxGroupSize != nil {
		tour.MaxGroupSize = *input.MaxGroupSize
	}
	if input.Difficulty != nil {
		tour.Difficulty = entity.Difficulty(strings.TrimSpace(*input.Difficulty))
	}
	if input.RatingsAverage != nil {
		tour.RatingsAverage = *input.RatingsAverage
	}
	if input.RatingsQuantity != nil {
		tour.RatingsQuantity = *input.RatingsQuantity
	}
	if input.Price != nil {
		tour.Price = *input.Price
	}
	if input.PriceDiscount != nil {
		tour.PriceDiscount = input.PriceDiscount
	}
	if input.Summary != nil {
		tour.Summary = strings.TrimSpace(*input.Summary)
	}
	if input.Description != nil {
		tour.Description = strings.TrimSpace(*input.Description)
	}
	if input.ImageCover != nil {
		tour.ImageCover = strings.TrimSpace(*input.ImageCover)
	}
	if input.Images != nil {
		tour.Images = input.Images
	}
	if input.StartDates != nil {
		tour.StartDates = input.StartDates
	}
	if input.SecretTour != nil {
		tour.SecretTour = *input.SecretTour
	}
}

func (srv *tourService) Delete(ctx context.Context, id uuid.UUID) error {
	err := srv.tourRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrTourNotFound) {
		return domainerrors.ErrTourNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to delete tour")
	}

	srv.log(ctx).Info("Tour deleted", slog.String("tourID", id.String()))

	return nil
}

func (srv *tourService) Stats(ctx context.Context) ([]*entity.TourStats, error) {
	stats, err := srv.tourRepo.Stats(ctx, statsMinRating)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute tour stats")
	}

	return stats, nil
}

func (srv *tourService) MonthlyPlan(ctx context.Context, year int) ([]*entity.MonthlyPlan, error) {
	tours, err := srv.tourRepo.StartDates(ctx, year)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load tour start dates")
	}

	byMonth := make(map[int]*entity.MonthlyPlan)
	for _, tour := range tours {
		for _, start := range tour.StartDates {
			if start.Year() != year {
				continue
			}
			month := int(start.Month())
			plan, ok := byMonth[month]
			if !ok {
				plan = &entity.MonthlyPlan{Month: month}
				byMonth[month] = plan
			}
			plan.NumTourStarts++
			plan.Tours = append(plan.Tours, tour.Name)
		}
	}

	plans := make([]*entity.MonthlyPlan, 0, len(byMonth))
	for _, plan := range byMonth {
		plans = append(plans, plan)
	}
	slices.SortFunc(plans, func(a, b *entity.MonthlyPlan) int {
		if c := cmp.Compare(b.NumTourStarts, a.NumTourStarts); c != 0 {
			return c
		}

		return cmp.Compare(a.Month, b.Month)
	})

	return plans, nil
}

// validateTour checks a complete tour, reporting every broken rule at once.
func validateTour(tour *entity.Tour) error {
	var p problems

	err := validate.Struct(tourRules{
		Name:           tour.Name,
		Duration:       tour.Duration,
		MaxGroupSize:   tour.MaxGroupSize,
		Difficulty:     string(tour.Difficulty),
		RatingsAverage: tour.RatingsAverage,
		Price:          tour.Price,
		Summary:        tour.Summary,
		ImageCover:     tour.ImageCover,
	})
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			msg, ok := tourMessages[fe.Field()+"."+fe.Tag()]
			if !ok {
				msg = fmt.Sprintf("Invalid %s", fe.Field())
			}
			p = append(p, msg)
		}
	} else if err != nil {
		return errors.Wrap(err, "failed to validate tour")
	}

	if tour.PriceDiscount != nil && *tour.PriceDiscount >= tour.Price {
		p.add(false, fmt.Sprintf("Discount price (%s) should be below regular price",
			strconv.FormatFloat(*tour.PriceDiscount, 'f', -1, 64)))
	}

	return p.err()
}
