// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"
)

// SeedPlan is how many records of each kind one run creates.
type SeedPlan struct {
	Users        int
	CallActions  int
	EmailActions int
	EventActions int
}

// SeedSummary reports what a run stored. Counts include the committed prefix of a failed run.
type SeedSummary struct {
	Users        int
	CallActions  int
	EmailActions int
	EventActions int
	Duration     time.Duration
}

// Total returns the number of records stored across every kind.
func (s SeedSummary) Total() int {
	return s.Users + s.CallActions + s.EmailActions + s.EventActions
}

// ResetResult reports how many rows a reset removed.
type ResetResult struct {
	Users   int64
	Actions int64
}

// SeedUsecase fills a development database with fixture records.
// Each record is committed before the next one is built; a failure stops the run and keeps what was stored.
type SeedUsecase interface {
	// SeedUsers creates count users and returns how many were stored.
	SeedUsers(ctx context.Context, count int) (int, error)

	// SeedCallActions creates count call actions owned by existing users.
	SeedCallActions(ctx context.Context, count int) (int, error)

	// SeedEmailActions creates count email actions owned by existing users.
	SeedEmailActions(ctx context.Context, count int) (int, error)

	// SeedEventActions creates count event actions owned by existing users.
	SeedEventActions(ctx context.Context, count int) (int, error)

	// SeedAll runs users, call, email and event seeding in that order.
	SeedAll(ctx context.Context, plan SeedPlan) (*SeedSummary, error)

	// Reset deletes every action and user in one transaction.
	Reset(ctx context.Context) (*ResetResult, error)
}
