package models

import "time"

// Roles a user can register with. Role is immutable after creation; no
// role-change endpoint exists.
const (
	RoleRestaurant = "restaurant"
	RoleNGO        = "ngo"
)

// User is an account record for either side of the exchange: restaurants
// that post surplus food and NGOs that collect it.
type User struct {
	ID           string `bson:"_id" json:"id"`
	Name         string `bson:"name" json:"name"`
	Email        string `bson:"email" json:"email"`
	Password     string `bson:"password" json:"-"` // never return
	Role         string `bson:"role" json:"role"`
	Organization string `bson:"organization,omitempty" json:"organization,omitempty"`
	Phone        string `bson:"phone,omitempty" json:"phone,omitempty"`
	Address      string `bson:"address,omitempty" json:"address,omitempty"`
	City         string `bson:"city,omitempty" json:"city,omitempty"`
	ZipCode      string `bson:"zip_code,omitempty" json:"zipCode,omitempty"`
	ProfileImage string `bson:"profile_image,omitempty" json:"profileImage,omitempty"`
	Bio          string `bson:"bio,omitempty" json:"bio,omitempty"`

	// Restaurant-specific fields
	RestaurantType string `bson:"restaurant_type,omitempty" json:"restaurantType,omitempty"`
	OperatingHours string `bson:"operating_hours,omitempty" json:"operatingHours,omitempty"`

	// NGO-specific fields
	NGOType             string `bson:"ngo_type,omitempty" json:"ngoType,omitempty"`
	ServiceArea         string `bson:"service_area,omitempty" json:"serviceArea,omitempty"`
	BeneficiariesServed string `bson:"beneficiaries_served,omitempty" json:"beneficiariesServed,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// UserPatch is a partial profile update restricted to the self-editable
// fields. A nil field is left unchanged; a present field is applied even
// when it is empty.
type UserPatch struct {
	Name         *string `json:"name"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Address      *string `json:"address"`
	ProfileImage *string `json:"profileImage"`
}
