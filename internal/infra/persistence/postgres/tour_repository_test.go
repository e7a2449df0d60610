package postgres

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tours/internal/domain/entity"
	domainerrors "tours/internal/domain/errors"
	"tours/internal/domain/repository"
)

func newTestTour(name string, difficulty entity.Difficulty, price, rating float64) *entity.Tour {
	return &entity.Tour{
		Name:           name,
		Slug:           "slug",
		Duration:       5,
		MaxGroupSize:   10,
		Difficulty:     difficulty,
		RatingsAverage: rating,
		Price:          price,
		Summary:        "A tour",
		ImageCover:     "cover.jpg",
	}
}

func seedTours(t *testing.T, repo repository.TourRepository) []*entity.Tour {
	t.Helper()

	tours := []*entity.Tour{
		newTestTour("The Forest Hiker", entity.DifficultyEasy, 397, 4.7),
		newTestTour("The Sea Explorer", entity.DifficultyMedium, 497, 4.8),
		newTestTour("The Snow Adventurer", entity.DifficultyDifficult, 997, 4.5),
		newTestTour("The City Wanderer", entity.DifficultyEasy, 1197, 4.6),
		newTestTour("The Park Camper", entity.DifficultyMedium, 1497, 4.2),
	}
	tours[0].RatingsQuantity = 37
	tours[3].RatingsQuantity = 10

	for _, tour := range tours {
		require.NoError(t, repo.Create(context.Background(), tour))
	}

	return tours
}

func TestTourRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewTourRepository(newTestDB(t))

	discount := 50.0
	start := time.Date(2026, 4, 25, 9, 0, 0, 0, time.UTC)
	tour := newTestTour("The Forest Hiker", entity.DifficultyEasy, 397, 4.7)
	tour.PriceDiscount = &discount
	tour.Images = []string{"tour-1-1.jpg", "tour-1-2.jpg"}
	tour.StartDates = []time.Time{start}
	require.NoError(t, repo.Create(ctx, tour))
	assert.NotEqual(t, uuid.Nil, tour.ID)

	got, err := repo.FindByID(ctx, tour.ID)
	require.NoError(t, err)
	assert.Equal(t, "The Forest Hiker", got.Name)
	assert.Equal(t, []string{"tour-1-1.jpg", "tour-1-2.jpg"}, got.Images)
	require.Len(t, got.StartDates, 1)
	assert.True(t, start.Equal(got.StartDates[0]))
	require.NotNil(t, got.PriceDiscount)
	assert.InDelta(t, 50.0, *got.PriceDiscount, 0.001)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrTourNotFound)
}

func TestTourRepository_DuplicateName(t *testing.T) {
	ctx := context.Background()
	repo := NewTourRepository(newTestDB(t))

	require.NoError(t, repo.Create(ctx, newTestTour("The Forest Hiker", entity.DifficultyEasy, 397, 4.7)))

	err := repo.Create(ctx, newTestTour("The Forest Hiker", entity.DifficultyEasy, 397, 4.7))

	appErr, ok := domainerrors.From(err)
	require.True(t, ok)
	assert.Equal(t, domainerrors.KindDuplicateField, appErr.Kind())
	assert.Contains(t, appErr.Message(), `"The Forest Hiker"`)
}

func TestTourRepository_SecretToursAreHidden(t *testing.T) {
	ctx := context.Background()
	repo := NewTourRepository(newTestDB(t))

	seedTours(t, repo)
	secret := newTestTour("The Secret Passage", entity.DifficultyEasy, 10, 5)
	secret.SecretTour = true
	require.NoError(t, repo.Create(ctx, secret))

	tours, err := repo.List(ctx, repository.TourQuery{})
	require.NoError(t, err)
	assert.Len(t, tours, 5)

	_, err = repo.FindByID(ctx, secret.ID)
	assert.ErrorIs(t, err, repository.ErrTourNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, secret.ID), repository.ErrTourNotFound)
}

func TestTourRepository_ListFiltersSortsAndPages(t *testing.T) {
	ctx := context.Background()
	repo := NewTourRepository(newTestDB(t))
	seedTours(t, repo)

	tours, err := repo.List(ctx, repository.TourQuery{
		Filters: []repository.TourFilter{
			{Field: "price", Op: repository.CompareLt, Value: 1200.0},
			{Field: "difficulty", Op: repository.CompareEq, Value: "easy"},
		},
		Sort: []repository.SortField{{Field: "price", Desc: true}},
	})
	require.NoError(t, err)
	require.Len(t, tours, 2)
	assert.Equal(t, "The City Wanderer", tours[0].Name)
	assert.Equal(t, "The Forest Hiker", tours[1].Name)

	page, err := repo.List(ctx, repository.TourQuery{
		Sort:   []repository.SortField{{Field: "price"}},
		Offset: 2,
		Limit:  2,
	})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "The Snow Adventurer", page[0].Name)
	assert.Equal(t, "The City Wanderer", page[1].Name)

	beyond, err := repo.List(ctx, repository.TourQuery{Offset: math.MaxInt, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, beyond)

	_, err = repo.List(ctx, repository.TourQuery{
		Filters: []repository.TourFilter{{Field: "secretTour", Op: repository.CompareEq, Value: true}},
	})
	assert.Error(t, err)
}

func TestTourRepository_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewTourRepository(newTestDB(t))
	tours := seedTours(t, repo)

	tour := tours[0]
	tour.Price = 499
	tour.Name = "The Forest Hiker II"
	require.NoError(t, repo.Update(ctx, tour))

	got, err := repo.FindByID(ctx, tour.ID)
	require.NoError(t, err)
	assert.InDelta(t, 499.0, got.Price, 0.001)
	assert.Equal(t, "The Forest Hiker II", got.Name)

	tour.Name = "The Sea Explorer"
	err = repo.Update(ctx, tour)
	appErr, ok := domainerrors.From(err)
	require.True(t, ok)
	assert.Equal(t, domainerrors.KindDuplicateField, appErr.Kind())

	require.NoError(t, repo.Delete(ctx, tour.ID))
	_, err = repo.FindByID(ctx, tour.ID)
	assert.ErrorIs(t, err, repository.ErrTourNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, tour.ID), repository.ErrTourNotFound)

	missing := newTestTour("The Missing Tour", entity.DifficultyEasy, 10, 4)
	missing.ID = uuid.New()
	assert.ErrorIs(t, repo.Update(ctx, missing), repository.ErrTourNotFound)
}

func TestTourRepository_Stats(t *testing.T) {
	ctx := context.Background()
	repo := NewTourRepository(newTestDB(t))
	seedTours(t, repo)

	stats, err := repo.Stats(ctx, 4.5)
	require.NoError(t, err)
	require.Len(t, stats, 3)

	// The Park Camper (4.2) is below the threshold.
	assert.Equal(t, entity.DifficultyMedium, stats[0].Difficulty)
	assert.Equal(t, 1, stats[0].NumTours)
	assert.InDelta(t, 497.0, stats[0].AvgPrice, 0.001)

	assert.Equal(t, entity.DifficultyEasy, stats[1].Difficulty)
	assert.Equal(t, 2, stats[1].NumTours)
	assert.Equal(t, 47, stats[1].NumRatings)
	assert.InDelta(t, 797.0, stats[1].AvgPrice, 0.001)
	assert.InDelta(t, 397.0, stats[1].MinPrice, 0.001)
	assert.InDelta(t, 1197.0, stats[1].MaxPrice, 0.001)
	assert.InDelta(t, 4.65, stats[1].AvgRating, 0.001)

	assert.Equal(t, entity.DifficultyDifficult, stats[2].Difficulty)
}

func TestTourRepository_StartDates(t *testing.T) {
	ctx := context.Background()
	repo := NewTourRepository(newTestDB(t))

	hiker := newTestTour("The Forest Hiker", entity.DifficultyEasy, 397, 4.7)
	hiker.StartDates = []time.Time{
		time.Date(2026, 4, 25, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 7, 20, 9, 0, 0, 0, time.UTC),
		time.Date(2027, 3, 5, 9, 0, 0, 0, time.UTC),
	}
	explorer := newTestTour("The Sea Explorer", entity.DifficultyMedium, 497, 4.8)
	explorer.StartDates = []time.Time{time.Date(2027, 6, 19, 9, 0, 0, 0, time.UTC)}
	require.NoError(t, repo.Create(ctx, hiker))
	require.NoError(t, repo.Create(ctx, explorer))

	tours, err := repo.StartDates(ctx, 2026)
	require.NoError(t, err)
	require.Len(t, tours, 1)
	assert.Equal(t, "The Forest Hiker", tours[0].Name)
	assert.Len(t, tours[0].StartDates, 2)
}
