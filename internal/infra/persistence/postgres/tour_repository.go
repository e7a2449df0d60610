package postgres

import (
	"context"
	"time"

	"tours/internal/domain/entity"
	"tours/internal/domain/repository"
	"tours/internal/errors"
	"tours/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// tourColumns maps queryable API attributes to columns.
var tourColumns = map[string]string{
	"name":            "name",
	"slug":            "slug",
	"duration":        "duration",
	"maxGroupSize":    "max_group_size",
	"difficulty":      "difficulty",
	"ratingsAverage":  "ratings_average",
	"ratingsQuantity": "ratings_quantity",
	"price":           "price",
	"priceDiscount":   "price_discount",
	"createdAt":       "created_at",
}

var comparisonOperators = map[repository.Comparison]string{
	repository.CompareEq:  "=",
	repository.CompareGt:  ">",
	repository.CompareGte: ">=",
	repository.CompareLt:  "<",
	repository.CompareLte: "<=",
}

type tourRepository struct {
	db *gorm.DB
}

// NewTourRepository is the constructor for tourRepository.
func NewTourRepository(db *gorm.DB) repository.TourRepository {
	return &tourRepository{db: db}
}

// visible scopes a query to non-secret tours.
func (repo *tourRepository) visible(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Model(&model.TourModel{}).Where("secret_tour = ?", false)
}

func (repo *tourRepository) List(ctx context.Context, query repository.TourQuery) ([]*entity.Tour, error) {
	tx := repo.visible(ctx)

	for _, filter := range query.Filters {
		column, ok := tourColumns[filter.Field]
		if !ok {
			return nil, errors.Errorf("unsupported tour filter field %q", filter.Field)
		}
		operator, ok := comparisonOperators[filter.Op]
		if !ok {
			return nil, errors.Errorf("unsupported tour filter operator %q", filter.Op)
		}
		tx = tx.Where(clause.Expr{SQL: "? " + operator + " ?", Vars: []any{clause.Column{Name: column}, filter.Value}})
	}

	for _, sort := range query.Sort {
		column, ok := tourColumns[sort.Field]
		if !ok {
			return nil, errors.Errorf("unsupported tour sort field %q", sort.Field)
		}
		tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: sort.Desc})
	}
	tx = tx.Order("id ASC")

	if query.Offset > 0 {
		tx = tx.Offset(query.Offset)
	}
	if query.Limit > 0 {
		tx = tx.Limit(query.Limit)
	}

	var tourMs []*model.TourModel
	if err := tx.Find(&tourMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tours")
	}

	return toToursDomain(tourMs), nil
}

func (repo *tourRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tour, error) {
	var tourM model.TourModel
	if err := repo.visible(ctx).Where("id = ?", id).First(&tourM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTourNotFound
		}

		return nil, errors.Wrap(err, "failed to find tour by id")
	}

	return toTourDomain(&tourM), nil
}

// Create persists a new tour. A taken name becomes a DuplicateField error.
func (repo *tourRepository) Create(ctx context.Context, tour *entity.Tour) error {
	tourM := fromTourDomain(tour)
	if err := repo.db.WithContext(ctx).Create(tourM).Error; err != nil {
		return translateWriteError(err, tour.Name, "failed to create tour")
	}

	tour.ID = tourM.ID
	tour.CreatedAt = tourM.CreatedAt
	tour.UpdatedAt = tourM.UpdatedAt

	return nil
}

// Update overwrites every mutable column of a visible tour.
func (repo *tourRepository) Update(ctx context.Context, tour *entity.Tour) error {
	tourM := fromTourDomain(tour)
	tourM.UpdatedAt = time.Now()

	result := repo.visible(ctx).
		Where("id = ?", tour.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(tourM)
	if result.Error != nil {
		return translateWriteError(result.Error, tour.Name, "failed to update tour")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTourNotFound
	}

	tour.UpdatedAt = tourM.UpdatedAt

	return nil
}

func (repo *tourRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND secret_tour = ?", id, false).
		Delete(&model.TourModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete tour")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTourNotFound
	}

	return nil
}

type tourStatsRow struct {
	Difficulty string
	NumTours   int
	NumRatings int
	AvgRating  float64
	AvgPrice   float64
	MinPrice   float64
	MaxPrice   float64
}

func (repo *tourRepository) Stats(ctx context.Context, minRating float64) ([]*entity.TourStats, error) {
	var rows []tourStatsRow
	err := repo.visible(ctx).
		Select(`difficulty,
			COUNT(*) AS num_tours,
			COALESCE(SUM(ratings_quantity), 0) AS num_ratings,
			AVG(ratings_average) AS avg_rating,
			AVG(price) AS avg_price,
			MIN(price) AS min_price,
			MAX(price) AS max_price`).
		Where("ratings_average >= ?", minRating).
		Group("difficulty").
		Order("avg_price ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate tour stats")
	}

	stats := make([]*entity.TourStats, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, &entity.TourStats{
			Difficulty: entity.Difficulty(row.Difficulty),
			NumTours:   row.NumTours,
			NumRatings: row.NumRatings,
			AvgRating:  row.AvgRating,
			AvgPrice:   row.AvgPrice,
			MinPrice:   row.MinPrice,
			MaxPrice:   row.MaxPrice,
		})
	}

	return stats, nil
}

// StartDates returns visible tours with at least one start in year, keeping
// only the starts that fall in that year.
func (repo *tourRepository) StartDates(ctx context.Context, year int) ([]*entity.Tour, error) {
	var tourMs []*model.TourModel
	if err := repo.visible(ctx).Select("id", "name", "start_dates").Order("name ASC").Find(&tourMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load tour start dates")
	}

	tours := make([]*entity.Tour, 0, len(tourMs))
	for _, tourM := range tourMs {
		var starts []time.Time
		for _, start := range tourM.StartDates {
			if start.UTC().Year() == year {
				starts = append(starts, start)
			}
		}
		if len(starts) == 0 {
			continue
		}

		tours = append(tours, &entity.Tour{ID: tourM.ID, Name: tourM.Name, StartDates: starts})
	}

	return tours, nil
}

// --- Mapper Functions ---

func toToursDomain(tourMs []*model.TourModel) []*entity.Tour {
	tours := make([]*entity.Tour, 0, len(tourMs))
	for _, tourM := range tourMs {
		tours = append(tours, toTourDomain(tourM))
	}

	return tours
}

func toTourDomain(data *model.TourModel) *entity.Tour {
	if data == nil {
		return nil
	}

	return &entity.Tour{
		ID:              data.ID,
		Name:            data.Name,
		Slug:            data.Slug,
		Duration:        data.Duration,
		MaxGroupSize:    data.MaxGroupSize,
		Difficulty:      entity.Difficulty(data.Difficulty),
		RatingsAverage:  data.RatingsAverage,
		RatingsQuantity: data.RatingsQuantity,
		Price:           data.Price,
		PriceDiscount:   data.PriceDiscount,
		Summary:         data.Summary,
		Description:     data.Description,
		ImageCover:      data.ImageCover,
		Images:          data.Images,
		StartDates:      data.StartDates,
		SecretTour:      data.SecretTour,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromTourDomain(data *entity.Tour) *model.TourModel {
	if data == nil {
		return nil
	}

	images := data.Images
	if images == nil {
		images = []string{}
	}
	startDates := data.StartDates
	if startDates == nil {
		startDates = []time.Time{}
	}

	return &model.TourModel{
		ID:              data.ID,
		Name:            data.Name,
		Slug:            data.Slug,
		Duration:        data.Duration,
		MaxGroupSize:    data.MaxGroupSize,
		Difficulty:      string(data.Difficulty),
		RatingsAverage:  data.RatingsAverage,
		RatingsQuantity: data.RatingsQuantity,
		Price:           data.Price,
		PriceDiscount:   data.PriceDiscount,
		Summary:         data.Summary,
		Description:     data.Description,
		ImageCover:      data.ImageCover,
		Images:          images,
		StartDates:      startDates,
		SecretTour:      data.SecretTour,
		CreatedAt:       data.CreatedAt,
	}
}
