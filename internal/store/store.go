// Package store defines the persistence contract behind the API and its two
// implementations: MongoDB for production and an in-memory variant for tests.
package store

import (
	"context"
	"errors"

	"github.com/foodbridge/foodbridge/internal/models"
)

var (
	// ErrNotFound is returned when the referenced document does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when an insert or update would violate
	// email uniqueness.
	ErrDuplicateEmail = errors.New("email already in use")
)

// Users is the user-collection contract.
type Users interface {
	Insert(ctx context.Context, u *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByIDs(ctx context.Context, ids []string) (map[string]models.User, error)
	UpdateByID(ctx context.Context, id string, patch models.UserPatch) (*models.User, error)
}

// Donations is the donation-collection contract. Listings are ordered
// newest-first by creation time.
type Donations interface {
	Insert(ctx context.Context, d *models.Donation) error
	FindByID(ctx context.Context, id string) (*models.Donation, error)
	ListByStatus(ctx context.Context, status string) ([]models.Donation, error)
	ListByDonor(ctx context.Context, donorID string) ([]models.Donation, error)
	UpdateByID(ctx context.Context, id string, patch models.DonationPatch) (*models.Donation, error)
	DeleteByID(ctx context.Context, id string) error
}

// Contacts stores messages from the public contact form.
type Contacts interface {
	Insert(ctx context.Context, m *models.ContactMessage) error
}
