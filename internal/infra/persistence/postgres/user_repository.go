package postgres

import (
	"context"
	"strings"
	"time"

	"tours/internal/domain/entity"
	"tours/internal/domain/repository"
	"tours/internal/errors"
	"tours/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID reads from the primary so a password change is visible immediately.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ?", id).
		First(&userM).Error
	if err != nil {
		return nil, notFoundOr(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", normalizeEmail(email)).
		First(&userM).Error
	if err != nil {
		return nil, notFoundOr(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// FindByResetToken locks the matching row with SELECT ... FOR UPDATE.
func (repo *userRepository) FindByResetToken(ctx context.Context, hash string, now time.Time) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("password_reset_token = ? AND password_reset_expires > ?", hash, now.UTC()).
		First(&userM).Error
	if err != nil {
		return nil, notFoundOr(err, "failed to find user by reset token")
	}

	return toUserDomain(&userM), nil
}

// List returns every user, oldest first.
func (repo *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	var userMs []*model.UserModel
	if err := repo.db.WithContext(ctx).Order("created_at ASC").Order("id ASC").Find(&userMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userMs))
	for _, userM := range userMs {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// Create persists a new user. A taken email becomes a DuplicateField error.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	user.Email = normalizeEmail(user.Email)
	if user.Role == "" {
		user.Role = entity.RoleUser
	}

	userM := fromUserDomain(user)
	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		return translateWriteError(err, user.Email, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// UpdateProfile writes name, email and photo only.
func (repo *userRepository) UpdateProfile(ctx context.Context, user *entity.User) error {
	user.Email = normalizeEmail(user.Email)
	now := time.Now()

	err := repo.updateColumns(ctx, user.ID, map[string]any{
		"name":       user.Name,
		"email":      user.Email,
		"photo":      user.Photo,
		"updated_at": now,
	})
	if err != nil {
		return translateWriteError(err, user.Email, "failed to update user profile")
	}

	user.UpdatedAt = now

	return nil
}

func (repo *userRepository) SetPasswordReset(ctx context.Context, id uuid.UUID, tokenHash string, expiresAt time.Time) error {
	err := repo.updateColumns(ctx, id, map[string]any{
		"password_reset_token":   tokenHash,
		"password_reset_expires": expiresAt.UTC(),
	})

	return notFoundOr(err, "failed to set password reset")
}

func (repo *userRepository) ClearPasswordReset(ctx context.Context, id uuid.UUID) error {
	err := repo.updateColumns(ctx, id, map[string]any{
		"password_reset_token":   nil,
		"password_reset_expires": nil,
	})

	return notFoundOr(err, "failed to clear password reset")
}

// UpdatePassword stores the hash and change time and drops any pending reset in one UPDATE.
func (repo *userRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string, changedAt time.Time) error {
	err := repo.updateColumns(ctx, id, map[string]any{
		"password_hash":          passwordHash,
		"password_changed_at":    changedAt.UTC(),
		"password_reset_token":   nil,
		"password_reset_expires": nil,
		"updated_at":             time.Now(),
	})

	return notFoundOr(err, "failed to update password")
}

// PurgeExpiredResets clears resets whose expiry is at or before now.
func (repo *userRepository) PurgeExpiredResets(ctx context.Context, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("password_reset_expires IS NOT NULL AND password_reset_expires <= ?", now.UTC()).
		Updates(map[string]any{
			"password_reset_token":   nil,
			"password_reset_expires": nil,
		})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to purge expired password resets")
	}

	return result.RowsAffected, nil
}

func (repo *userRepository) updateColumns(ctx context.Context, id uuid.UUID, columns map[string]any) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(columns)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// notFoundOr maps gorm.ErrRecordNotFound to the repository sentinel and wraps anything else.
func notFoundOr(err error, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repository.ErrUserNotFound
	}

	return errors.Wrap(err, op)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	user := &entity.User{
		ID:                   data.ID,
		Name:                 data.Name,
		Email:                data.Email,
		Photo:                data.Photo,
		Role:                 entity.Role(data.Role),
		PasswordHash:         data.PasswordHash,
		PasswordChangedAt:    data.PasswordChangedAt,
		PasswordResetExpires: data.PasswordResetExpires,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
	if data.PasswordResetToken != nil {
		user.PasswordResetToken = *data.PasswordResetToken
	}

	return user
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	userM := &model.UserModel{
		ID:                   data.ID,
		Name:                 data.Name,
		Email:                data.Email,
		Photo:                data.Photo,
		Role:                 data.Role.String(),
		PasswordHash:         data.PasswordHash,
		PasswordChangedAt:    data.PasswordChangedAt,
		PasswordResetExpires: data.PasswordResetExpires,
	}
	if data.PasswordResetToken != "" {
		token := data.PasswordResetToken
		userM.PasswordResetToken = &token
	}

	return userM
}
