package storage

import "errors"

var (
	// ErrAlreadyInTx is returned by Begin on a transactional handle.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned by Commit and Rollback outside a transaction.
	ErrNotInTx = errors.New("not in tx")
	// ErrDuplicate reports a unique constraint violation, e.g. a second
	// integration with the same provider and name.
	ErrDuplicate = errors.New("duplicate record")
)
