package models

import "time"

// Donation statuses, set manually by the owning donor. There is no automated
// transition logic between them.
const (
	StatusAvailable = "available"
	StatusScheduled = "scheduled"
	StatusPickedUp  = "picked_up"
)

// ValidStatus reports whether s is a known donation status.
func ValidStatus(s string) bool {
	switch s {
	case StatusAvailable, StatusScheduled, StatusPickedUp:
		return true
	}
	return false
}

// Donation is a posting by a restaurant offering surplus food for pickup.
// Only the owning donor may mutate or delete it.
type Donation struct {
	ID          string    `bson:"_id" json:"id"`
	DonorID     string    `bson:"donor_id" json:"donorId"`
	FoodType    string    `bson:"food_type" json:"foodType"`
	Quantity    string    `bson:"quantity" json:"quantity"`
	ExpiryDate  time.Time `bson:"expiry_date" json:"expiryDate"`
	Location    string    `bson:"location" json:"location"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Status      string    `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}

// DonorSummary is the donor annotation attached to public listings.
type DonorSummary struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PublicDonation is a donation annotated with its donor for the public feed.
type PublicDonation struct {
	Donation
	Donor DonorSummary `json:"donor"`
}

// DonationPatch is a partial update to a donation. A nil field is left
// unchanged; a present field is applied even when it is empty.
type DonationPatch struct {
	Status      *string `json:"status"`
	Description *string `json:"description"`
}
