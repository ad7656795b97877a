package entity

import (
	"time"

	"github.com/google/uuid"
)

// ActionCategory names the kind of campaign action. It selects the verb vocabulary for titles.
type ActionCategory string

const (
	ActionCategoryCall  ActionCategory = "call"
	ActionCategoryEmail ActionCategory = "email"
	ActionCategoryEvent ActionCategory = "event"
)

// Stance is whether an action supports or opposes its issue.
// It only shapes generated text and is never stored.
type Stance bool

const (
	StanceSupport Stance = true
	StanceOppose  Stance = false
)

// Connector returns the word joining a title's verb and issue, padded with spaces.
func (s Stance) Connector() string {
	if s == StanceSupport {
		return " for "
	}

	return " against "
}

// Imperative returns the talking point / subject prefix for the stance.
func (s Stance) Imperative() string {
	if s == StanceSupport {
		return "Support "
	}

	return "Oppose "
}

func (s Stance) String() string {
	if s == StanceSupport {
		return "support"
	}

	return "oppose"
}

// Action holds the fields shared by every campaign action.
type Action struct {
	ID                uuid.UUID `json:"id"`
	UserID            uuid.UUID `json:"user_id" validate:"required"` // Owner of the action.
	Title             string    `json:"title" validate:"required,max=128"`
	Headline          string    `json:"headline" validate:"required,max=256"`
	Description       *string   `json:"description,omitempty"` // Nil when the action has no long description.
	ListStartDatetime time.Time `json:"list_start_datetime" validate:"required"`
	ListEndDatetime   time.Time `json:"list_end_datetime" validate:"required"`
	KudosText         string    `json:"kudos_text" validate:"required"` // Shown after a user completes the action.
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// CallAction asks users to phone an official.
type CallAction struct {
	Action

	TargetPhoneNumber  *string `json:"target_phone_number,omitempty" validate:"omitempty,numeric,len=10"`
	TargetName         *string `json:"target_name,omitempty"`
	TargetOfficialType *string `json:"target_official_type,omitempty"`
	Script             string  `json:"script" validate:"required"`
	TalkingPoint1      string  `json:"talking_point_1" validate:"required"`
	TalkingPoint2      *string `json:"talking_point_2,omitempty"`
	TalkingPoint3      *string `json:"talking_point_3,omitempty"`
}

// EmailAction asks users to write to an official.
type EmailAction struct {
	Action

	TargetEmail        *string `json:"target_email,omitempty" validate:"omitempty,email"`
	TargetName         *string `json:"target_name,omitempty"`
	TargetOfficialType *string `json:"target_official_type,omitempty"`
	EmailSubject       string  `json:"email_subject" validate:"required"`
	Body               string  `json:"body" validate:"required"`
}

// EventAction invites users to attend an in-person event.
type EventAction struct {
	Action

	Location           string    `json:"location" validate:"required"`
	Latitude           float64   `json:"latitude" validate:"latitude"`
	Longitude          float64   `json:"longitude" validate:"longitude"`
	EventStartDatetime time.Time `json:"event_start_datetime" validate:"required,ltfield=EventEndDatetime"`
	EventEndDatetime   time.Time `json:"event_end_datetime" validate:"required"`
}
