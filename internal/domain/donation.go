package domain

import (
	"context"
	"time"
)

// Canonical status literals. These are the values the dashboard filters
// and the stats aggregation match on, so they must round-trip through
// storage and export unchanged.
const (
	StatusReceived     = "تم الاستلام"
	StatusUnderProcess = "تحت المعالجة"
	StatusCompleted    = "مكتمل"
)

// ValidStatus reports whether s is one of the three lifecycle values.
func ValidStatus(s string) bool {
	return s == StatusReceived || s == StatusUnderProcess || s == StatusCompleted
}

type Donation struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	FullName string `gorm:"size:191" json:"full_name"`
	Phone    string `gorm:"size:32" json:"phone"`
	Region   string `gorm:"size:64" json:"region"`
	District string `gorm:"size:64" json:"district"`
	// Category is the comma-joined item-type labels as the form submitted
	// them, e.g. "ملابس, أحذية". Stored verbatim.
	Category  string    `gorm:"size:255" json:"category"`
	Status    string    `gorm:"size:32;not null;index" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (Donation) TableName() string { return "donations" }

type DonationStats struct {
	Total        int64 `json:"total"`
	UnderProcess int64 `json:"underProcess"`
	Completed    int64 `json:"completed"`
}

type DonationRepository interface {
	Create(ctx context.Context, d *Donation) error
	ListAll(ctx context.Context) ([]Donation, error)
	FindByID(ctx context.Context, id uint) (*Donation, error)
	// UpdateStatus succeeds even when id does not exist; callers must not
	// rely on existence being enforced.
	UpdateStatus(ctx context.Context, id uint, status string) error
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}
