package handler

import (
	"log/slog"
	"net/http"
	"time"

	"tours/internal/delivery/api/response"
	"tours/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TourHandlerParams holds dependencies for TourHandler, injected by Fx.
type TourHandlerParams struct {
	fx.In

	TourUC usecase.TourUsecase
	Logger *slog.Logger
}

// TourHandler serves the tour catalogue.
type TourHandler struct {
	tourUC usecase.TourUsecase
	logger *slog.Logger
}

// NewTourHandler is the constructor for TourHandler
func NewTourHandler(params TourHandlerParams) *TourHandler {
	return &TourHandler{
		tourUC: params.TourUC,
		logger: params.Logger,
	}
}

// CreateTourRequest represents the request body for creating a tour
type CreateTourRequest struct {
	Name            string      `json:"name"`
	Duration        int         `json:"duration"`
	MaxGroupSize    int         `json:"maxGroupSize"`
	Difficulty      string      `json:"difficulty"`
	RatingsAverage  *float64    `json:"ratingsAverage"`
	RatingsQuantity *int        `json:"ratingsQuantity" validate:"omitempty,gte=0"`
	Price           float64     `json:"price"`
	PriceDiscount   *float64    `json:"priceDiscount" validate:"omitempty,gte=0"`
	Summary         string      `json:"summary"`
	Description     string      `json:"description"`
	ImageCover      string      `json:"imageCover"`
	Images          []string    `json:"images"`
	StartDates      []time.Time `json:"startDates"`
	SecretTour      bool        `json:"secretTour"`
}

// UpdateTourRequest represents the request body for a partial tour update
type UpdateTourRequest struct {
	Name            *string     `json:"name"`
	Duration        *int        `json:"duration"`
	MaxGroupSize    *int        `json:"maxGroupSize"`
	Difficulty      *string     `json:"difficulty"`
	RatingsAverage  *float64    `json:"ratingsAverage"`
	RatingsQuantity *int        `json:"ratingsQuantity" validate:"omitempty,gte=0"`
	Price           *float64    `json:"price"`
	PriceDiscount   *float64    `json:"priceDiscount" validate:"omitempty,gte=0"`
	Summary         *string     `json:"summary"`
	Description     *string     `json:"description"`
	ImageCover      *string     `json:"imageCover"`
	Images          []string    `json:"images"`
	StartDates      []time.Time `json:"startDates"`
	SecretTour      *bool       `json:"secretTour"`
}

// AliasTopTours rewrites the query into the five best rated, cheapest tours.
func AliasTopTours(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		query := c.Request().URL.Query()
		query.Set("limit", "5")
		query.Set("sort", "-ratingsAverage,price")
		query.Set("fields", "name,price,ratingsAverage,summary,difficulty")
		c.Request().URL.RawQuery = query.Encode()

		return next(c)
	}
}

// ListTours returns a filtered, sorted page of tours.
func (h *TourHandler) ListTours(c echo.Context) error {
	output, err := h.tourUC.List(c.Request().Context(), &usecase.ListToursInput{Query: c.QueryParams()})
	if err != nil {
		return err
	}

	return response.List(c, len(output.Tours), map[string]any{"tours": toTourMaps(output.Tours, output.Fields)})
}

// GetTour returns one tour by id.
func (h *TourHandler) GetTour(c echo.Context) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	tour, err := h.tourUC.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]any{"tour": tourToMap(tour)})
}

// CreateTour adds a tour to the catalogue.
func (h *TourHandler) CreateTour(c echo.Context) error {
	var req CreateTourRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tour, err := h.tourUC.Create(c.Request().Context(), &usecase.CreateTourInput{
		Name:            req.Name,
		Duration:        req.Duration,
		MaxGroupSize:    req.MaxGroupSize,
		Difficulty:      req.Difficulty,
		RatingsAverage:  req.RatingsAverage,
		RatingsQuantity: req.RatingsQuantity,
		Price:           req.Price,
		PriceDiscount:   req.PriceDiscount,
		Summary:         req.Summary,
		Description:     req.Description,
		ImageCover:      req.ImageCover,
		Images:          req.Images,
		StartDates:      req.StartDates,
		SecretTour:      req.SecretTour,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, map[string]any{"tour": tourToMap(tour)})
}

// UpdateTour applies a partial update.
func (h *TourHandler) UpdateTour(c echo.Context) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateTourRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tour, err := h.tourUC.Update(c.Request().Context(), &usecase.UpdateTourInput{
		ID:              id,
		Name:            req.Name,
		Duration:        req.Duration,
		MaxGroupSize:    req.MaxGroupSize,
		Difficulty:      req.Difficulty,
		RatingsAverage:  req.RatingsAverage,
		RatingsQuantity: req.RatingsQuantity,
		Price:           req.Price,
		PriceDiscount:   req.PriceDiscount,
		Summary:         req.Summary,
		Description:     req.Description,
		ImageCover:      req.ImageCover,
		Images:          req.Images,
		StartDates:      req.StartDates,
		SecretTour:      req.SecretTour,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]any{"tour": tourToMap(tour)})
}

// DeleteTour removes a tour and answers 204.
func (h *TourHandler) DeleteTour(c echo.Context) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.tourUC.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return response.NoContent(c)
}

// TourStats summarises well-rated tours per difficulty.
func (h *TourHandler) TourStats(c echo.Context) error {
	stats, err := h.tourUC.Stats(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]*TourStatsResponse, 0, len(stats))
	for _, s := range stats {
		out = append(out, &TourStatsResponse{
			Difficulty: string(s.Difficulty),
			NumTours:   s.NumTours,
			NumRatings: s.NumRatings,
			AvgRating:  s.AvgRating,
			AvgPrice:   s.AvgPrice,
			MinPrice:   s.MinPrice,
			MaxPrice:   s.MaxPrice,
		})
	}

	return response.Success(c, http.StatusOK, map[string]any{"stats": out})
}

// MonthlyPlan counts tour starts per month of the year in the path.
func (h *TourHandler) MonthlyPlan(c echo.Context) error {
	year, err := paramInt(c, "year")
	if err != nil {
		return err
	}

	plans, err := h.tourUC.MonthlyPlan(c.Request().Context(), year)
	if err != nil {
		return err
	}

	out := make([]*MonthlyPlanResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, &MonthlyPlanResponse{Month: p.Month, NumTourStarts: p.NumTourStarts, Tours: p.Tours})
	}

	return response.Success(c, http.StatusOK, map[string]any{"plan": out})
}
