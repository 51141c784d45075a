package ports

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
)

// OrderRepository defines the data-access contract the order processor
// consumes. It distinguishes two failure kinds on the write path: a
// persistence-specific failure (wrapped so errors.Is matches
// errs.ErrPersistenceFailed) which the processor absorbs per order, and any
// other failure, which propagates and aborts the batch.
type OrderRepository interface {
	// GetAllPendingForUser retrieves the user's pending orders — those
	// still in the New status — in stable storage order. A failure here is
	// fatal to the whole batch and propagates unmodified.
	GetAllPendingForUser(ctx context.Context, userID kernel.UUID) ([]*order.Order, error)

	// UpdateStatus persists the order's final status and priority.
	// Returns an error matching errs.ErrPersistenceFailed when the write
	// itself failed; any other error signals a non-persistence fault.
	UpdateStatus(ctx context.Context, id kernel.UUID, status order.Status, priority order.Priority) error

	// GetUsersWithPendingOrders lists the users that currently have at
	// least one order in the New status. Used by the scheduled batch job.
	GetUsersWithPendingOrders(ctx context.Context) ([]kernel.UUID, error)
}
