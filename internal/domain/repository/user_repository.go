// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"civic/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserPool is a countable, indexable set of users that actions can be assigned to.
// Offsets are zero based and must be below Count.
type UserPool interface {
	Count(ctx context.Context) (int64, error)
	FindAtOffset(ctx context.Context, offset int64) (*entity.User, error)
}

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	UserPool

	// Create persists a new user and commits it immediately.
	Create(ctx context.Context, user *entity.User) error

	// DeleteAll removes every user. Actions must be removed first.
	DeleteAll(ctx context.Context) (int64, error)
}
