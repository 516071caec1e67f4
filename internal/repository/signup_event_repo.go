package repository

import (
	"context"

	"vaultlist/internal/entity"

	"gorm.io/gorm"
)

type SignupEventRepository interface {
	Log(ctx context.Context, event *entity.SignupEvent) error
}

type signupEventRepository struct {
	db *gorm.DB
}

func NewSignupEventRepository(db *gorm.DB) SignupEventRepository {
	return &signupEventRepository{db: db}
}

func (r *signupEventRepository) Log(ctx context.Context, event *entity.SignupEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}
