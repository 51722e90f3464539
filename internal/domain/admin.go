package domain

import (
	"context"
	"time"
)

type Admin struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:64;not null" json:"username"`
	PasswordHash string    `gorm:"size:100;not null" json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Admin) TableName() string { return "admins" }

type AdminRepository interface {
	FindByUsername(ctx context.Context, username string) (*Admin, error)
	Create(ctx context.Context, a *Admin) error
	UpdatePassword(ctx context.Context, id uint, passwordHash string) error
}
