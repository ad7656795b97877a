package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel mirrors the 'users' table.
// IDs are UUIDv7 assigned in BeforeCreate so the same model works on PostgreSQL and SQLite.
type UserModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserName       string    `gorm:"type:varchar(64);not null"`
	DeviceID       string    `gorm:"type:varchar(40);not null"`
	Email          string    `gorm:"type:varchar(255);not null"`
	FirstName      string    `gorm:"type:varchar(64);not null"`
	LastName       string    `gorm:"type:varchar(64);not null"`
	About          string    `gorm:"type:text;not null"`
	StreetAddress1 string    `gorm:"column:street_address_1;type:varchar(255);not null"`
	StreetAddress2 *string   `gorm:"column:street_address_2;type:varchar(64)"`
	City           string    `gorm:"type:varchar(100);not null"`
	State          string    `gorm:"type:varchar(2);not null"`
	Zip            string    `gorm:"type:varchar(10);not null"`
	CreatedAt      time.Time `gorm:"index"`
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// BeforeCreate assigns a time ordered ID when none is set.
func (m *UserModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}

func assignID(id *uuid.UUID) error {
	if *id != uuid.Nil {
		return nil
	}

	v7, err := uuid.NewV7()
	if err != nil {
		return err
	}
	*id = v7

	return nil
}
