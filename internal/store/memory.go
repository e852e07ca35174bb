package store

import (
	"context"
	"sort"
	"sync"

	"github.com/foodbridge/foodbridge/internal/models"
)

// MemoryUsers is a mutex-guarded in-memory Users implementation. It exists so
// handlers can be exercised without a running MongoDB.
type MemoryUsers struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewMemoryUsers() *MemoryUsers {
	return &MemoryUsers{users: make(map[string]models.User)}
}

func (s *MemoryUsers) Insert(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return ErrDuplicateEmail
		}
	}
	s.users[u.ID] = *u
	return nil
}

func (s *MemoryUsers) FindByID(_ context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (s *MemoryUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryUsers) FindByIDs(_ context.Context, ids []string) (map[string]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]models.User, len(ids))
	for _, id := range ids {
		if u, ok := s.users[id]; ok {
			out[id] = u
		}
	}
	return out, nil
}

func (s *MemoryUsers) UpdateByID(_ context.Context, id string, patch models.UserPatch) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.Email != nil && *patch.Email != u.Email {
		for _, existing := range s.users {
			if existing.Email == *patch.Email {
				return nil, ErrDuplicateEmail
			}
		}
		u.Email = *patch.Email
	}
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Phone != nil {
		u.Phone = *patch.Phone
	}
	if patch.Address != nil {
		u.Address = *patch.Address
	}
	if patch.ProfileImage != nil {
		u.ProfileImage = *patch.ProfileImage
	}
	s.users[id] = u
	return &u, nil
}

// MemoryDonations is a mutex-guarded in-memory Donations implementation.
type MemoryDonations struct {
	mu        sync.RWMutex
	donations map[string]models.Donation
}

func NewMemoryDonations() *MemoryDonations {
	return &MemoryDonations{donations: make(map[string]models.Donation)}
}

func (s *MemoryDonations) Insert(_ context.Context, d *models.Donation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.donations[d.ID] = *d
	return nil
}

func (s *MemoryDonations) FindByID(_ context.Context, id string) (*models.Donation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.donations[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &d, nil
}

func (s *MemoryDonations) ListByStatus(_ context.Context, status string) ([]models.Donation, error) {
	return s.list(func(d models.Donation) bool { return d.Status == status }), nil
}

func (s *MemoryDonations) ListByDonor(_ context.Context, donorID string) ([]models.Donation, error) {
	return s.list(func(d models.Donation) bool { return d.DonorID == donorID }), nil
}

func (s *MemoryDonations) list(match func(models.Donation) bool) []models.Donation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Donation{}
	for _, d := range s.donations {
		if match(d) {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (s *MemoryDonations) UpdateByID(_ context.Context, id string, patch models.DonationPatch) (*models.Donation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.donations[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.Status != nil {
		d.Status = *patch.Status
	}
	if patch.Description != nil {
		d.Description = *patch.Description
	}
	s.donations[id] = d
	return &d, nil
}

func (s *MemoryDonations) DeleteByID(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.donations[id]; !ok {
		return ErrNotFound
	}
	delete(s.donations, id)
	return nil
}

// MemoryContacts is an in-memory Contacts implementation.
type MemoryContacts struct {
	mu       sync.Mutex
	messages []models.ContactMessage
}

func NewMemoryContacts() *MemoryContacts {
	return &MemoryContacts{}
}

func (s *MemoryContacts) Insert(_ context.Context, m *models.ContactMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, *m)
	return nil
}

// Messages returns a copy of everything stored, for assertions in tests.
func (s *MemoryContacts) Messages() []models.ContactMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ContactMessage, len(s.messages))
	copy(out, s.messages)
	return out
}
