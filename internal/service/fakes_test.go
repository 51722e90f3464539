package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"donation-api/internal/domain"
)

var errStoreDown = errors.New("store unavailable")

// In-memory DonationRepository. Each insert gets the next integer id and a
// strictly increasing timestamp, mirroring the real store's ordering.
type fakeDonationRepo struct {
	mu     sync.Mutex
	nextID uint
	base   time.Time
	items  map[uint]domain.Donation
	down   bool
}

func newFakeDonationRepo() *fakeDonationRepo {
	return &fakeDonationRepo{
		base:  time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
		items: make(map[uint]domain.Donation),
	}
}

func (f *fakeDonationRepo) Create(_ context.Context, d *domain.Donation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		return errStoreDown
	}
	f.nextID++
	d.ID = f.nextID
	d.CreatedAt = f.base.Add(time.Duration(f.nextID) * time.Second)
	f.items[d.ID] = *d
	return nil
}

func (f *fakeDonationRepo) ListAll(_ context.Context) ([]domain.Donation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		return nil, errStoreDown
	}
	out := make([]domain.Donation, 0, len(f.items))
	for _, d := range f.items {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeDonationRepo) FindByID(_ context.Context, id uint) (*domain.Donation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		return nil, errStoreDown
	}
	d, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (f *fakeDonationRepo) UpdateStatus(_ context.Context, id uint, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		return errStoreDown
	}
	if d, ok := f.items[id]; ok {
		d.Status = status
		f.items[id] = d
	}
	return nil
}

func (f *fakeDonationRepo) CountAll(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		return 0, errStoreDown
	}
	return int64(len(f.items)), nil
}

func (f *fakeDonationRepo) CountByStatus(_ context.Context, status string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		return 0, errStoreDown
	}
	var n int64
	for _, d := range f.items {
		if d.Status == status {
			n++
		}
	}
	return n, nil
}

type fakeAdminRepo struct {
	mu     sync.Mutex
	nextID uint
	byName map[string]*domain.Admin
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{byName: make(map[string]*domain.Admin)}
}

func (f *fakeAdminRepo) FindByUsername(_ context.Context, username string) (*domain.Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.byName[username]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAdminRepo) Create(_ context.Context, a *domain.Admin) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	a.ID = f.nextID
	cp := *a
	f.byName[a.Username] = &cp
	return nil
}

func (f *fakeAdminRepo) UpdatePassword(_ context.Context, id uint, passwordHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.byName {
		if a.ID == id {
			a.PasswordHash = passwordHash
		}
	}
	return nil
}
