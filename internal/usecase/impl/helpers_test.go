package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"tours/internal/domain/entity"
	domainerrors "tours/internal/domain/errors"
	"tours/internal/domain/repository"
	mockRepo "tours/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedNow() time.Time {
	return testNow
}

func newTestUser() *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		Name:         "Ann",
		Email:        "ann@x.com",
		Role:         entity.RoleUser,
		PasswordHash: "hashed_password",
		CreatedAt:    testNow.Add(-24 * time.Hour),
	}
}

// expectTransaction makes txManager run the callback against a factory
// handing out userRepo.
func expectTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager, userRepo repository.UserRepository) {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(userRepo).Maybe()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

// assertKind checks that err carries an AppError of the given kind.
func assertKind(t *testing.T, err error, kind domainerrors.Kind) domainerrors.AppError {
	t.Helper()

	require.Error(t, err)
	appErr, ok := domainerrors.From(err)
	require.True(t, ok, "expected an AppError, got %v", err)
	assert.Equal(t, kind, appErr.Kind())

	return appErr
}
