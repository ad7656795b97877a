package validation

import (
	"strings"
	"testing"
	"time"

	"civic/internal/domain/entity"
	domainerrors "civic/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUser() *entity.User {
	return &entity.User{
		ID:             uuid.New(),
		UserName:       "marcher",
		DeviceID:       strings.Repeat("A", entity.DeviceIDLength),
		Email:          "marcher@example.org",
		FirstName:      "Ada",
		LastName:       "Lovelace",
		About:          "Organizer.",
		StreetAddress1: "12 Main St",
		City:           "Oakland",
		State:          "CA",
		Zip:            "94607",
	}
}

func TestRecordValidator_ValidUser(t *testing.T) {
	require.NoError(t, New().Validate(validUser()))
}

func TestRecordValidator_InvalidUser(t *testing.T) {
	user := validUser()
	user.DeviceID = "short"
	user.State = "ca"

	err := New().Validate(user)
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "User.DeviceID(len)")
	assert.Contains(t, err.Error(), "User.State(uppercase)")
	assert.Equal(t, "VALIDATION_FAILED", domainerrors.Code(err))
}

func TestRecordValidator_EventOrdering(t *testing.T) {
	end := time.Date(2026, 5, 1, 18, 0, 0, 0, time.UTC)
	event := &entity.EventAction{
		Action: entity.Action{
			UserID:            uuid.New(),
			Title:             "March for Peace",
			Headline:          "Peace Now",
			ListStartDatetime: end.Add(-72 * time.Hour),
			ListEndDatetime:   end,
			KudosText:         "You did it. Good job!",
		},
		Location:           "1 Plaza, Denver, CO 80202",
		Latitude:           39.7,
		Longitude:          -104.9,
		EventStartDatetime: end.Add(2 * time.Hour),
		EventEndDatetime:   end,
	}

	err := New().Validate(event)
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "EventStartDatetime(ltfield)")

	event.EventStartDatetime = end.Add(-2 * time.Hour)
	require.NoError(t, New().Validate(event))
}

func TestRecordValidator_CallPhone(t *testing.T) {
	phone := "20245611"
	call := &entity.CallAction{
		Action: entity.Action{
			UserID:            uuid.New(),
			Title:             "Act for Peace",
			Headline:          "Peace",
			ListStartDatetime: time.Now(),
			ListEndDatetime:   time.Now(),
			KudosText:         "You're making a difference.",
		},
		TargetPhoneNumber: &phone,
		Script:            "Hello.",
		TalkingPoint1:     "Support Peace",
	}

	err := New().Validate(call)
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "TargetPhoneNumber(len)")
}
