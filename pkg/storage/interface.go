// Package storage declares the persistence ports of the service. Each domain
// owns a small interface, the backends under pkg/storage implement all of them.
//
//go:generate mockgen -package mockstorage -destination=mock/mockstorage.go . AllStorage,Storage,TxStorage
package storage

import "context"

// AllStorage is every domain port. Handlers that need several of them, or a
// transaction, take this.
type AllStorage interface {
	IntegrationStorage
	EndpointStorage
	DeliveryStorage
	PostingStorage
	RecordStorage
	JobStorage
}

// TxStorage runs on an open transaction. It is unusable after Commit or
// Rollback.
type TxStorage interface {
	AllStorage

	Commit() error
	Rollback() error
}

// Storage is the root handle created at startup.
type Storage interface {
	AllStorage

	Close() error

	// Begin opens a transaction the caller must commit or roll back.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb in a transaction, committing when it returns nil.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
