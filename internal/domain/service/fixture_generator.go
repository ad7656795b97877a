// Package service defines interfaces for core, stateless domain logic.
// Implementations live in the infra layer.
package service

import (
	"context"
	"time"

	"civic/internal/domain/entity"
	"civic/internal/domain/repository"
)

// ActionCopy is the generated marketing text of an action.
type ActionCopy struct {
	Title    string
	Headline string
	Issue    string // The issue phrase the title and headline were built around.
}

// ListingWindow is when an action is shown to users.
type ListingWindow struct {
	Start time.Time
	End   time.Time
}

// EventWindow is a listing window plus the start of the event itself.
// The event ends when the listing ends.
type EventWindow struct {
	ListingWindow
	EventStart time.Time
}

// FixtureGenerator produces randomized field values for fixture records.
// Implementations own their random source so runs can be reproduced from a seed.
type FixtureGenerator interface {
	// Stance flips a fair coin between support and oppose.
	Stance() entity.Stance

	// IntRange returns a uniform integer in [lo, hi].
	IntRange(lo, hi int) int

	// OfficialType picks an elected-office label.
	OfficialType() string

	// KudosText picks a congratulatory message.
	KudosText() string

	// PickUser returns a uniformly chosen user of pool.
	// It fails with ErrNoUsersAvailable when the pool is empty.
	PickUser(ctx context.Context, pool repository.UserPool) (*entity.User, error)

	ListingWindow() ListingWindow
	EventWindow() EventWindow

	// ActionCopy builds a title and headline for the category and stance.
	ActionCopy(category entity.ActionCategory, stance entity.Stance) ActionCopy

	// CallScript builds a phone script around point with roughly length characters of filler.
	CallScript(point string, length int) string

	// PhoneNumber returns a valid North American number as 10 digits.
	PhoneNumber() (string, error)

	// Prose returns filler text of at most maxChars characters, paragraphs separated by blank lines.
	Prose(maxChars int) string

	DeviceID() string
	UserName() string
	Email() string
	FirstName() string
	LastName() string
	FullName() string
	StreetAddress() string
	SecondaryAddress() string
	City() string
	StateAbbr() string
	Zip() string

	// Location returns a one-line postal address.
	Location() string

	// VenuePoint returns latitude and longitude inside the configured bounds.
	VenuePoint() (lat, lon float64)
}
