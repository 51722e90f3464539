package service

import (
	"context"
	"fmt"

	"donation-api/internal/domain"
)

type SubmitInput struct {
	FullName string
	Phone    string
	Region   string
	District string
	Category string
}

// DonationService owns the record lifecycle: creation, listing, status
// transitions and aggregate counts. Field validation is the submitting
// client's job; whatever strings arrive are persisted verbatim.
type DonationService struct {
	donations domain.DonationRepository
}

func NewDonationService(donations domain.DonationRepository) *DonationService {
	return &DonationService{donations: donations}
}

func (s *DonationService) Submit(ctx context.Context, in SubmitInput) (uint, error) {
	d := domain.Donation{
		FullName: in.FullName,
		Phone:    in.Phone,
		Region:   in.Region,
		District: in.District,
		Category: in.Category,
		Status:   domain.StatusReceived,
	}
	if err := s.donations.Create(ctx, &d); err != nil {
		return 0, fmt.Errorf("create donation: %w", err)
	}
	return d.ID, nil
}

func (s *DonationService) ListAll(ctx context.Context) ([]domain.Donation, error) {
	return s.donations.ListAll(ctx)
}

// UpdateStatus permits any transition between the three lifecycle values,
// backward ones included; the admin is the sole authority and no workflow
// order is enforced. Unknown ids succeed silently.
func (s *DonationService) UpdateStatus(ctx context.Context, id uint, status string) error {
	if !domain.ValidStatus(status) {
		return ErrInvalidStatus
	}
	if err := s.donations.UpdateStatus(ctx, id, status); err != nil {
		return fmt.Errorf("update donation %d: %w", id, err)
	}
	return nil
}

func (s *DonationService) Stats(ctx context.Context) (domain.DonationStats, error) {
	var st domain.DonationStats
	var err error
	if st.Total, err = s.donations.CountAll(ctx); err != nil {
		return st, fmt.Errorf("count donations: %w", err)
	}
	if st.UnderProcess, err = s.donations.CountByStatus(ctx, domain.StatusUnderProcess); err != nil {
		return st, fmt.Errorf("count under process: %w", err)
	}
	if st.Completed, err = s.donations.CountByStatus(ctx, domain.StatusCompleted); err != nil {
		return st, fmt.Errorf("count completed: %w", err)
	}
	return st, nil
}
