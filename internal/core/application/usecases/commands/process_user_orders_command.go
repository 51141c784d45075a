// Package commands contains the business operations that drive the order
// post-processing pipeline. All commands follow a consistent pattern:
// constructor validation, capability orchestration, and persistence with
// explicit failure containment.
package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var ErrProcessUserOrdersCommandIsNotConstructed = errors.New(
	"ProcessUserOrdersCommand must be created via NewProcessUserOrdersCommand constructor",
)

// ProcessUserOrdersCommand triggers the post-processing of one user's
// pending orders: type dispatch, status assignment, priority derivation,
// and persistence of the result.
//
// Example:
//
//	cmd, err := NewProcessUserOrdersCommand(userID)
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, cmd)
type ProcessUserOrdersCommand struct {
	userID kernel.UUID
	guard  guard.ConstructorGuard
}

// NewProcessUserOrdersCommand creates a command for the given user.
// The user ID must be a valid UUID.
func NewProcessUserOrdersCommand(userID kernel.UUID) (ProcessUserOrdersCommand, error) {
	if err := userID.Validate(); err != nil {
		return ProcessUserOrdersCommand{}, err
	}

	return ProcessUserOrdersCommand{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// UserID returns the identifier of the user whose orders are processed.
func (c ProcessUserOrdersCommand) UserID() kernel.UUID {
	return c.userID
}

// Validate ensures the command was created through the constructor.
// Returns ErrProcessUserOrdersCommandIsNotConstructed if validation fails.
func (c *ProcessUserOrdersCommand) Validate() error {
	return c.guard.Validate(
		ErrProcessUserOrdersCommandIsNotConstructed,
	)
}
