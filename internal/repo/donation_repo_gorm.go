package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"donation-api/internal/domain"
)

type DonationRepo struct{ db *gorm.DB }

func NewDonationRepo(db *gorm.DB) *DonationRepo { return &DonationRepo{db: db} }

func (r *DonationRepo) Create(ctx context.Context, d *domain.Donation) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DonationRepo) ListAll(ctx context.Context) ([]domain.Donation, error) {
	ds := make([]domain.Donation, 0)
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&ds).Error
	return ds, err
}

func (r *DonationRepo) FindByID(ctx context.Context, id uint) (*domain.Donation, error) {
	var d domain.Donation
	err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &d, err
}

// UpdateStatus is a no-op success when id does not exist; RowsAffected is
// deliberately not checked.
func (r *DonationRepo) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).
		Model(&domain.Donation{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *DonationRepo) CountAll(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Donation{}).Count(&n).Error
	return n, err
}

func (r *DonationRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&domain.Donation{}).
		Where("status = ?", status).
		Count(&n).Error
	return n, err
}
