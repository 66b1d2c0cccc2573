package ports

import "context"

// UnitOfWork coordinates a transaction over the order store. The creation
// saga uses it to make the order row and all line rows visible atomically or
// not at all.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
}
