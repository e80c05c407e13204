package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows callers to group writes without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances that are bound to a specific transaction.
type RepositoryFactory interface {
	// NewRoomRepository returns a RoomRepository instance bound to the current transaction.
	NewRoomRepository() RoomRepository

	// NewNotificationRepository returns a NotificationRepository instance bound to the current transaction.
	NewNotificationRepository() NotificationRepository
}
