package repository

import (
	"context"

	"civic/internal/domain/entity"
)

// ActionRepository persists the three kinds of campaign actions.
// Each Create call is its own unit of work: the row is committed before the call returns.
type ActionRepository interface {
	CreateCallAction(ctx context.Context, action *entity.CallAction) error
	CreateEmailAction(ctx context.Context, action *entity.EmailAction) error
	CreateEventAction(ctx context.Context, action *entity.EventAction) error

	// CountByCategory returns the number of stored actions of one category.
	CountByCategory(ctx context.Context, category entity.ActionCategory) (int64, error)

	// DeleteAll removes every action of every category.
	DeleteAll(ctx context.Context) (int64, error)
}
