package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"donation-api/internal/domain"
)

type AdminRepo struct{ db *gorm.DB }

func NewAdminRepo(db *gorm.DB) *AdminRepo { return &AdminRepo{db: db} }

func (r *AdminRepo) FindByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	var a domain.Admin
	err := r.db.WithContext(ctx).First(&a, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &a, err
}

func (r *AdminRepo) Create(ctx context.Context, a *domain.Admin) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AdminRepo) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	return r.db.WithContext(ctx).
		Model(&domain.Admin{}).
		Where("id = ?", id).
		Update("password_hash", passwordHash).Error
}
