package entity

import (
	"time"

	"github.com/google/uuid"
)

// Difficulty grades how demanding a tour is.
type Difficulty string

const (
	DifficultyEasy      Difficulty = "easy"
	DifficultyMedium    Difficulty = "medium"
	DifficultyDifficult Difficulty = "difficult"
)

// IsValid checks if the Difficulty is a valid value.
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyDifficult:
		return true
	default:
		return false
	}
}

// DefaultRatingsAverage is the rating a tour starts with before any review.
const DefaultRatingsAverage = 4.5

// Tour is a bookable trip.
type Tour struct {
	ID              uuid.UUID
	Name            string
	Slug            string // Derived from Name.
	Duration        int    // Length in days.
	MaxGroupSize    int
	Difficulty      Difficulty
	RatingsAverage  float64
	RatingsQuantity int
	Price           float64
	PriceDiscount   *float64
	Summary         string
	Description     string
	ImageCover      string
	Images          []string
	StartDates      []time.Time
	SecretTour      bool // Secret tours never appear in queries.
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DurationWeeks returns the tour length expressed in weeks.
func (t *Tour) DurationWeeks() float64 {
	return float64(t.Duration) / 7
}

// TourStats aggregates well-rated tours of one difficulty.
type TourStats struct {
	Difficulty Difficulty
	NumTours   int
	NumRatings int
	AvgRating  float64
	AvgPrice   float64
	MinPrice   float64
	MaxPrice   float64
}

// MonthlyPlan lists the tours starting in a calendar month.
type MonthlyPlan struct {
	Month         int
	NumTourStarts int
	Tours         []string
}
