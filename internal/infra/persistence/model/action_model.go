package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActionFields are the columns shared by every action table.
// Each action model declares its own User association so AutoMigrate creates the foreign key.
type ActionFields struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID `gorm:"type:uuid;not null;index"`
	Title             string    `gorm:"type:varchar(128);not null"`
	Headline          string    `gorm:"type:varchar(256);not null"`
	Description       *string   `gorm:"type:text"`
	ListStartDatetime time.Time `gorm:"not null"`
	ListEndDatetime   time.Time `gorm:"not null"`
	KudosText         string    `gorm:"type:varchar(255);not null"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// CallActionModel mirrors the 'call_actions' table.
type CallActionModel struct {
	ActionFields `gorm:"embedded"`

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`

	TargetPhoneNumber  *string `gorm:"type:varchar(10)"`
	TargetName         *string `gorm:"type:varchar(255)"`
	TargetOfficialType *string `gorm:"type:varchar(64)"`
	Script             string  `gorm:"type:text;not null"`
	TalkingPoint1      string  `gorm:"column:talking_point_1;type:varchar(255);not null"`
	TalkingPoint2      *string `gorm:"column:talking_point_2;type:varchar(255)"`
	TalkingPoint3      *string `gorm:"column:talking_point_3;type:varchar(255)"`
}

// TableName explicitly sets the table name for GORM.
func (CallActionModel) TableName() string {
	return "call_actions"
}

// BeforeCreate assigns a time ordered ID when none is set.
func (m *CallActionModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}

// EmailActionModel mirrors the 'email_actions' table.
type EmailActionModel struct {
	ActionFields `gorm:"embedded"`

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`

	TargetEmail        *string `gorm:"type:varchar(255)"`
	TargetName         *string `gorm:"type:varchar(255)"`
	TargetOfficialType *string `gorm:"type:varchar(64)"`
	EmailSubject       string  `gorm:"type:varchar(255);not null"`
	Body               string  `gorm:"type:text;not null"`
}

// TableName explicitly sets the table name for GORM.
func (EmailActionModel) TableName() string {
	return "email_actions"
}

// BeforeCreate assigns a time ordered ID when none is set.
func (m *EmailActionModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}

// EventActionModel mirrors the 'event_actions' table.
type EventActionModel struct {
	ActionFields `gorm:"embedded"`

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`

	Location           string    `gorm:"type:varchar(255);not null"`
	Latitude           float64   `gorm:"not null"`
	Longitude          float64   `gorm:"not null"`
	EventStartDatetime time.Time `gorm:"not null"`
	EventEndDatetime   time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (EventActionModel) TableName() string {
	return "event_actions"
}

// BeforeCreate assigns a time ordered ID when none is set.
func (m *EventActionModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}

// All lists every fixture model in dependency order, parents first.
func All() []any {
	return []any{
		&UserModel{},
		&CallActionModel{},
		&EmailActionModel{},
		&EventActionModel{},
	}
}
