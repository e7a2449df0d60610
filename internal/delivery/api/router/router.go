// Package router contains routing for the API.
package router

import (
	"tours/internal/delivery/api/middleware"
	"tours/internal/delivery/api/router/handler"
	"tours/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	TourHandler    *handler.TourHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	tourHandler    *handler.TourHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		userHandler:    params.UserHandler,
		tourHandler:    params.TourHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application. Extra
// middleware applies to the whole /api/v1 group.
func (r *router) RegisterRoutes(e *echo.Echo, apiMiddleware ...echo.MiddlewareFunc) {
	e.GET("/health", handler.HealthCheck)

	protect := r.authMiddleware.Protect
	staff := r.authMiddleware.RestrictTo(entity.RoleAdmin, entity.RoleLeadGuide)

	apiV1 := e.Group("/api/v1", apiMiddleware...)

	usersGroup := apiV1.Group("/users")
	{
		usersGroup.POST("/signup", r.authHandler.Signup)
		usersGroup.POST("/login", r.authHandler.Login)
		usersGroup.POST("/forgotPassword", r.authHandler.ForgotPassword)
		usersGroup.PATCH("/resetPassword/:token", r.authHandler.ResetPassword)

		usersGroup.PATCH("/updateMyPassword", r.authHandler.UpdatePassword, protect)
		usersGroup.GET("/me", r.userHandler.GetMe, protect)
		usersGroup.PATCH("/updateMe", r.userHandler.UpdateMe, protect)

		adminOnly := r.authMiddleware.RestrictTo(entity.RoleAdmin)
		usersGroup.GET("", r.userHandler.ListUsers, protect, adminOnly)
		usersGroup.GET("/:id", r.userHandler.GetUser, protect, adminOnly)
	}

	toursGroup := apiV1.Group("/tours")
	{
		toursGroup.GET("/top-5-cheap", r.tourHandler.ListTours, handler.AliasTopTours)
		toursGroup.GET("/tour-stats", r.tourHandler.TourStats)
		toursGroup.GET("/monthly-plan/:year", r.tourHandler.MonthlyPlan)

		toursGroup.GET("", r.tourHandler.ListTours)
		toursGroup.GET("/:id", r.tourHandler.GetTour)
		toursGroup.POST("", r.tourHandler.CreateTour, protect, staff)
		toursGroup.PATCH("/:id", r.tourHandler.UpdateTour, protect, staff)
		toursGroup.DELETE("/:id", r.tourHandler.DeleteTour, protect, staff)
	}
}
