// Package queries contains read-side operations of the order pipeline.
// Query handlers read the database directly and return flat response
// models, bypassing the domain aggregates.
package queries

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var (
	ErrGetProcessedOrdersQueryIsNotConstructed = errors.New(
		"GetProcessedOrdersQuery must be created via NewGetProcessedOrdersQuery constructor",
	)
)

// GetProcessedOrdersQuery retrieves a user's orders that have already been
// through the pipeline — everything whose status is no longer "new".
//
// Example:
//
//	query, err := NewGetProcessedOrdersQuery(userID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetProcessedOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get processed orders: %w", err)
//	}
type GetProcessedOrdersQuery struct {
	userID kernel.UUID
	guard  guard.ConstructorGuard
}

// NewGetProcessedOrdersQuery creates a query for the given user.
// The user ID must be a valid UUID.
func NewGetProcessedOrdersQuery(userID kernel.UUID) (GetProcessedOrdersQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetProcessedOrdersQuery{}, err
	}

	return GetProcessedOrdersQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// UserID returns the identifier of the user whose orders are queried.
func (q GetProcessedOrdersQuery) UserID() kernel.UUID {
	return q.userID
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetProcessedOrdersQueryIsNotConstructed if validation fails.
func (q GetProcessedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetProcessedOrdersQueryIsNotConstructed)
}

// GetProcessedOrdersQueryResponse is the flat read model of one processed
// order.
type GetProcessedOrdersQueryResponse struct {
	ID       kernel.UUID
	Type     string
	Amount   float64
	Flag     bool
	Status   string
	Priority string
}
