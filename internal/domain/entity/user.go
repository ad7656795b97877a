// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeviceIDLength is the length of a generated device token.
const DeviceIDLength = 40

// User is a registered member of the civic app. Actions are owned by users.
type User struct {
	ID             uuid.UUID `json:"id"`                                                     // The Global Unique Identifier (GUID) for the user.
	UserName       string    `json:"user_name" validate:"required,max=64"`                   // Public handle.
	DeviceID       string    `json:"device_id" validate:"required,len=40"`                   // Token identifying the user's phone.
	Email          string    `json:"email" validate:"required,email"`                        // Contact address.
	FirstName      string    `json:"first_name" validate:"required,max=64"`                  // Given name.
	LastName       string    `json:"last_name" validate:"required,max=64"`                   // Family name.
	About          string    `json:"about" validate:"required,max=1000"`                     // Free text profile blurb.
	StreetAddress1 string    `json:"street_address_1" validate:"required"`                   // Primary street line.
	StreetAddress2 *string   `json:"street_address_2,omitempty" validate:"omitempty,max=64"` // Apartment, suite or unit. Nil when absent.
	City           string    `json:"city" validate:"required"`                               // City name.
	State          string    `json:"state" validate:"required,len=2,uppercase"`              // Two letter state abbreviation.
	Zip            string    `json:"zip" validate:"required,numeric,len=5"`                  // Five digit zip code.
	CreatedAt      time.Time `json:"created_at"`                                             // Timestamp of when this user was stored.
	UpdatedAt      time.Time `json:"updated_at"`                                             // Timestamp of the last modification.
}
