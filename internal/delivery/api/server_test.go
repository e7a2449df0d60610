package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tours/config"
	apimiddleware "tours/internal/delivery/api/middleware"
	"tours/internal/delivery/api/router"
	"tours/internal/delivery/api/router/handler"
	"tours/internal/domain/entity"
	domainerrors "tours/internal/domain/errors"
	"tours/internal/errors"
	mockUsecase "tours/internal/mocks/usecase"
	"tours/internal/usecase"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// apiFixtures holds the echo instance and the mocked use cases behind it.
type apiFixtures struct {
	e      *echo.Echo
	authUC *mockUsecase.MockAuthUsecase
	userUC *mockUsecase.MockUserUsecase
	tourUC *mockUsecase.MockTourUsecase
}

func newTestConfig(env string) *config.Config {
	cfg := &config.Config{}
	cfg.Env.Env = env
	cfg.HTTP.MaxRequestBodySize = "10KB"
	cfg.HTTP.RateLimit = config.RateLimitConfig{Requests: 100, Window: time.Hour}
	cfg.Auth.CookieExpiresIn = 90 * 24 * time.Hour

	return cfg
}

func createTestAPI(t *testing.T, cfg *config.Config) apiFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f := apiFixtures{
		authUC: mockUsecase.NewMockAuthUsecase(t),
		userUC: mockUsecase.NewMockUserUsecase(t),
		tourUC: mockUsecase.NewMockTourUsecase(t),
	}

	f.e = newEcho(cfg, logger, router.RouterParams{
		AuthHandler:    handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: f.authUC, Cfg: cfg, Logger: logger}),
		UserHandler:    handler.NewUserHandler(handler.UserHandlerParams{UserUC: f.userUC, Logger: logger}),
		TourHandler:    handler.NewTourHandler(handler.TourHandlerParams{TourUC: f.tourUC, Logger: logger}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(f.authUC),
	})

	return f
}

func (f apiFixtures) do(method, target, body string, headers ...string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func newAdmin() *entity.User {
	return &entity.User{ID: uuid.New(), Name: "Admin", Email: "admin@x.com", Role: entity.RoleAdmin, PasswordHash: "secret_hash"}
}

func TestSignup_SetsCookieAndHidesCredentials(t *testing.T) {
	f := createTestAPI(t, newTestConfig(config.EnvProduction))
	user := &entity.User{
		ID:                 uuid.New(),
		Name:               "Ann",
		Email:              "ann@x.com",
		Role:               entity.RoleUser,
		PasswordHash:       "hashed_password",
		PasswordResetToken: "reset_hash",
	}

	f.authUC.EXPECT().
		Signup(mock.Anything, &usecase.SignupInput{
			Name: "Ann", Email: "ann@x.com", Password: "secret12", PasswordConfirm: "secret12",
		}).
		Return(&usecase.AuthOutput{User: user, Token: "signed.jwt"}, nil)

	rec := f.do(http.MethodPost, "/api/v1/users/signup",
		`{"name":"Ann","email":"ann@x.com","password":"secret12","passwordConfirm":"secret12","role":"admin"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "signed.jwt", body["token"])
	assert.NotContains(t, rec.Body.String(), "hashed_password")
	assert.NotContains(t, rec.Body.String(), "reset_hash")
	assert.NotContains(t, rec.Body.String(), "password")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "jwt", cookies[0].Name)
	assert.Equal(t, "signed.jwt", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)
	assert.WithinDuration(t, time.Now().Add(90*24*time.Hour), cookies[0].Expires, time.Minute)
}

func TestLogin_StrictModeFailure(t *testing.T) {
	f := createTestAPI(t, newTestConfig(config.EnvProduction))
	f.authUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

	rec := f.do(http.MethodPost, "/api/v1/users/login", `{"email":"ann@x.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, map[string]any{"status": "fail", "message": "Incorrect email or password"}, decodeBody(t, rec))
}

func TestUnexpectedError(t *testing.T) {
	failure := errors.Wrap(errors.New("pq: connection refused"), "failed to compute tour stats")

	t.Run("strict mode hides internals", func(t *testing.T) {
		f := createTestAPI(t, newTestConfig(config.EnvProduction))
		f.tourUC.EXPECT().Stats(mock.Anything).Return(nil, failure)

		rec := f.do(http.MethodGet, "/api/v1/tours/tour-stats", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, map[string]any{"status": "error", "message": "Something went wrong!"}, decodeBody(t, rec))
	})

	t.Run("verbose mode carries diagnostics", func(t *testing.T) {
		f := createTestAPI(t, newTestConfig(config.EnvDevelopment))
		f.tourUC.EXPECT().Stats(mock.Anything).Return(nil, failure)

		rec := f.do(http.MethodGet, "/api/v1/tours/tour-stats", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "error", body["status"])
		assert.Equal(t, "INTERNAL_ERROR", body["code"])
		assert.Equal(t, "failed to compute tour stats: pq: connection refused", body["error"])
		assert.Contains(t, body["stack"], "server_test.go")
	})
}

func TestUnknownRoute(t *testing.T) {
	f := createTestAPI(t, newTestConfig(config.EnvProduction))

	rec := f.do(http.MethodGet, "/api/v1/bookings?page=2", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, map[string]any{
		"status":  "fail",
		"message": "Can't find /api/v1/bookings?page=2 on this server!",
	}, decodeBody(t, rec))
}

func TestProtect(t *testing.T) {
	admin := newAdmin()

	t.Run("no token", func(t *testing.T) {
		f := createTestAPI(t, newTestConfig(config.EnvProduction))
		f.authUC.EXPECT().Authenticate(mock.Anything, "").Return(nil, domainerrors.ErrNotLoggedIn)

		rec := f.do(http.MethodGet, "/api/v1/users/me", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "You are not logged in! Please log in to get access.", decodeBody(t, rec)["message"])
	})

	t.Run("bearer token", func(t *testing.T) {
		f := createTestAPI(t, newTestConfig(config.EnvProduction))
		f.authUC.EXPECT().Authenticate(mock.Anything, "header.jwt").Return(admin, nil)

		rec := f.do(http.MethodGet, "/api/v1/users/me", "", echo.HeaderAuthorization, "Bearer header.jwt")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), admin.ID.String())
		assert.NotContains(t, rec.Body.String(), "secret_hash")
	})

	t.Run("cookie fallback", func(t *testing.T) {
		f := createTestAPI(t, newTestConfig(config.EnvProduction))
		f.authUC.EXPECT().Authenticate(mock.Anything, "cookie.jwt").Return(admin, nil)

		rec := f.do(http.MethodGet, "/api/v1/users/me", "", "Cookie", "jwt=cookie.jwt")

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRestrictTo(t *testing.T) {
	f := createTestAPI(t, newTestConfig(config.EnvProduction))
	user := &entity.User{ID: uuid.New(), Role: entity.RoleUser}
	tourID := uuid.New()

	f.authUC.EXPECT().Authenticate(mock.Anything, "user.jwt").Return(user, nil)
	f.authUC.EXPECT().
		Authorize(user, []entity.Role{entity.RoleAdmin, entity.RoleLeadGuide}).
		Return(domainerrors.ErrForbidden)

	rec := f.do(http.MethodDelete, "/api/v1/tours/"+tourID.String(), "", echo.HeaderAuthorization, "Bearer user.jwt")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "You do not have permission to perform this action", decodeBody(t, rec)["message"])
}

func TestDeleteTour(t *testing.T) {
	f := createTestAPI(t, newTestConfig(config.EnvProduction))
	admin := newAdmin()
	tourID := uuid.New()

	f.authUC.EXPECT().Authenticate(mock.Anything, "admin.jwt").Return(admin, nil)
	f.authUC.EXPECT().Authorize(admin, []entity.Role{entity.RoleAdmin, entity.RoleLeadGuide}).Return(nil)
	f.tourUC.EXPECT().Delete(mock.Anything, tourID).Return(nil)

	rec := f.do(http.MethodDelete, "/api/v1/tours/"+tourID.String(), "", echo.HeaderAuthorization, "Bearer admin.jwt")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestUpdateMe_RefusesPasswords(t *testing.T) {
	f := createTestAPI(t, newTestConfig(config.EnvProduction))
	user := &entity.User{ID: uuid.New(), Role: entity.RoleUser}
	f.authUC.EXPECT().Authenticate(mock.Anything, "user.jwt").Return(user, nil)

	rec := f.do(http.MethodPatch, "/api/v1/users/updateMe", `{"name":"Ann","password":"newpass123"}`,
		echo.HeaderAuthorization, "Bearer user.jwt")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t,
		"This route is not for password updates. Please use /updateMyPassword.",
		decodeBody(t, rec)["message"])
}

func TestGetTour_MalformedID(t *testing.T) {
	f := createTestAPI(t, newTestConfig(config.EnvProduction))

	rec := f.do(http.MethodGet, "/api/v1/tours/abc", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid id: abc.", decodeBody(t, rec)["message"])
}

func TestTopFiveCheap(t *testing.T) {
	f := createTestAPI(t, newTestConfig(config.EnvProduction))
	discount := 100.0
	tour := &entity.Tour{
		ID:             uuid.New(),
		Name:           "The Forest Hiker",
		Price:          397,
		PriceDiscount:  &discount,
		RatingsAverage: 4.7,
		Summary:        "Breathtaking hike",
		Difficulty:     entity.DifficultyEasy,
	}

	f.tourUC.EXPECT().
		List(mock.Anything, mock.MatchedBy(func(in *usecase.ListToursInput) bool {
			return in.Query.Get("limit") == "5" && in.Query.Get("sort") == "-ratingsAverage,price"
		})).
		Return(&usecase.ListToursOutput{
			Tours:  []*entity.Tour{tour},
			Fields: []string{"id", "name", "price", "ratingsAverage", "summary", "difficulty"},
		}, nil)

	rec := f.do(http.MethodGet, "/api/v1/tours/top-5-cheap", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.EqualValues(t, 1, body["results"])
	tours := body["data"].(map[string]any)["tours"].([]any)
	require.Len(t, tours, 1)
	got := tours[0].(map[string]any)
	assert.Len(t, got, 6)
	assert.Equal(t, "The Forest Hiker", got["name"])
	assert.NotContains(t, got, "priceDiscount")
	assert.NotContains(t, got, "createdAt")
}

func TestMonthlyPlan_MalformedYear(t *testing.T) {
	f := createTestAPI(t, newTestConfig(config.EnvProduction))

	rec := f.do(http.MethodGet, "/api/v1/tours/monthly-plan/next", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid year: next.", decodeBody(t, rec)["message"])
}

func TestForgotPassword_ValidatesEmail(t *testing.T) {
	f := createTestAPI(t, newTestConfig(config.EnvProduction))

	rec := f.do(http.MethodPost, "/api/v1/users/forgotPassword", `{"email":"nope"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid input data. Please provide a valid email", decodeBody(t, rec)["message"])
}

func TestForgotPassword_BuildsResetURL(t *testing.T) {
	f := createTestAPI(t, newTestConfig(config.EnvProduction))
	f.authUC.EXPECT().
		ForgotPassword(mock.Anything, &usecase.ForgotPasswordInput{
			Email:        "ann@x.com",
			ResetURLBase: "http://example.com/api/v1/users/resetPassword",
		}).
		Return(nil)

	rec := f.do(http.MethodPost, "/api/v1/users/forgotPassword", `{"email":"ann@x.com"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"status": "success", "message": "Token sent to email!"}, decodeBody(t, rec))
}

func TestRateLimit(t *testing.T) {
	cfg := newTestConfig(config.EnvProduction)
	cfg.HTTP.RateLimit = config.RateLimitConfig{Requests: 2, Window: time.Hour}
	f := createTestAPI(t, cfg)
	f.tourUC.EXPECT().Stats(mock.Anything).Return([]*entity.TourStats{}, nil).Times(2)

	for range 2 {
		assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/v1/tours/tour-stats", "").Code)
	}
	rec := f.do(http.MethodGet, "/api/v1/tours/tour-stats", "")

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "Too many requests from this IP, please try again in an hour!", decodeBody(t, rec)["message"])

	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/health", "").Code)
}

func TestBodyLimit(t *testing.T) {
	f := createTestAPI(t, newTestConfig(config.EnvProduction))

	rec := f.do(http.MethodPost, "/api/v1/users/login", `{"email":"`+strings.Repeat("a", 11*1024)+`"}`)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "fail", decodeBody(t, rec)["status"])
}
