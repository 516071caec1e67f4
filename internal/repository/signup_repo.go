package repository

import (
	"context"
	"errors"
	"time"

	"vaultlist/internal/entity"

	"gorm.io/gorm"
)

type SignupRepository interface {
	Create(ctx context.Context, signup *entity.EmailSignup) error
	FindByEmail(ctx context.Context, email string) (*entity.EmailSignup, error)
	FindByToken(ctx context.Context, token string) (*entity.EmailSignup, error)
	MarkVerified(ctx context.Context, token string, now time.Time) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type signupRepository struct {
	db *gorm.DB
}

func NewSignupRepository(db *gorm.DB) SignupRepository {
	return &signupRepository{db: db}
}

func (r *signupRepository) Create(ctx context.Context, signup *entity.EmailSignup) error {
	return r.db.WithContext(ctx).Create(signup).Error
}

func (r *signupRepository) FindByEmail(ctx context.Context, email string) (*entity.EmailSignup, error) {
	var signup entity.EmailSignup
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&signup).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &signup, err
}

func (r *signupRepository) FindByToken(ctx context.Context, token string) (*entity.EmailSignup, error) {
	var signup entity.EmailSignup
	err := r.db.WithContext(ctx).
		Where("verification_token = ? AND verification_token <> ''", token).
		First(&signup).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &signup, err
}

// MarkVerified performs the verify transition as a single conditional update
// keyed on the token value. Racing callers are arbitrated by the store:
// exactly one observes a row affected, the rest observe zero.
func (r *signupRepository) MarkVerified(ctx context.Context, token string, now time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&entity.EmailSignup{}).
		Where("verification_token = ? AND is_verified = ?", token, false).
		Updates(map[string]any{
			"is_verified":        true,
			"verified_at":        &now,
			"verification_token": "",
		})

	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *signupRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.EmailSignup{}).
		Count(&count).Error
	return count, err
}
