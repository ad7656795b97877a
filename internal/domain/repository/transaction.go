package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// Seeding never batches records; transactions are used by maintenance operations such as reset.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances that are bound to a specific transaction.
type RepositoryFactory interface {
	// NewUserRepository returns a UserRepository instance bound to the current transaction.
	NewUserRepository() UserRepository

	// NewActionRepository returns an ActionRepository instance bound to the current transaction.
	NewActionRepository() ActionRepository
}
