// Package handler contains the HTTP handlers for the API.
package handler

import (
	"strconv"
	"time"

	"tours/internal/domain/entity"
	domainerrors "tours/internal/domain/errors"
	"tours/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// UserResponse is the public view of a user. Credentials and reset state never leave the server.
type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Photo string    `json:"photo,omitempty"`
	Role  string    `json:"role"`
}

func toUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Photo: user.Photo,
		Role:  user.Role.String(),
	}
}

func toUserResponses(users []*entity.User) []*UserResponse {
	out := make([]*UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, toUserResponse(user))
	}

	return out
}

// tourToMap renders a tour by attribute name so listings can project fields.
// createdAt is never exposed.
func tourToMap(tour *entity.Tour) map[string]any {
	images := tour.Images
	if images == nil {
		images = []string{}
	}
	startDates := tour.StartDates
	if startDates == nil {
		startDates = []time.Time{}
	}

	m := map[string]any{
		"id":              tour.ID,
		"name":            tour.Name,
		"slug":            tour.Slug,
		"duration":        tour.Duration,
		"durationWeeks":   tour.DurationWeeks(),
		"maxGroupSize":    tour.MaxGroupSize,
		"difficulty":      tour.Difficulty,
		"ratingsAverage":  tour.RatingsAverage,
		"ratingsQuantity": tour.RatingsQuantity,
		"price":           tour.Price,
		"summary":         tour.Summary,
		"description":     tour.Description,
		"imageCover":      tour.ImageCover,
		"images":          images,
		"startDates":      startDates,
		"secretTour":      tour.SecretTour,
	}
	if tour.PriceDiscount != nil {
		m["priceDiscount"] = *tour.PriceDiscount
	}

	return m
}

func toTourMaps(tours []*entity.Tour, fields []string) []map[string]any {
	out := make([]map[string]any, 0, len(tours))
	for _, tour := range tours {
		m := tourToMap(tour)
		if len(fields) > 0 {
			m = util.Pick(m, fields...)
		}
		out = append(out, m)
	}

	return out
}

// TourStatsResponse is one difficulty bucket of the tour statistics.
type TourStatsResponse struct {
	Difficulty string  `json:"difficulty"`
	NumTours   int     `json:"numTours"`
	NumRatings int     `json:"numRatings"`
	AvgRating  float64 `json:"avgRating"`
	AvgPrice   float64 `json:"avgPrice"`
	MinPrice   float64 `json:"minPrice"`
	MaxPrice   float64 `json:"maxPrice"`
}

// MonthlyPlanResponse counts the tours starting in one month.
type MonthlyPlanResponse struct {
	Month         int      `json:"month"`
	NumTourStarts int      `json:"numTourStarts"`
	Tours         []string `json:"tours"`
}

// paramUUID parses a path parameter, reporting a MalformedReference when it is not a UUID.
func paramUUID(c echo.Context, name string) (uuid.UUID, error) {
	raw := c.Param(name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domainerrors.NewMalformedReferenceError(name, raw)
	}

	return id, nil
}

func paramInt(c echo.Context, name string) (int, error) {
	raw := c.Param(name)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domainerrors.NewMalformedReferenceError(name, raw)
	}

	return n, nil
}
