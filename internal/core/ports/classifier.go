package ports

import (
	"context"

	"orderflow/internal/core/domain/model/classification"
	"orderflow/internal/core/domain/model/kernel"
)

// Classifier defines the remote classification contract for type-B orders.
type Classifier interface {
	// Classify requests a classification envelope for the given order.
	// Transport, timeout, decode and open-circuit failures are wrapped so
	// errors.Is matches errs.ErrClassificationFailed; the processor maps
	// them to the api_failure status. A returned envelope may still carry
	// a non-success status, which is not an error at this level.
	Classify(ctx context.Context, orderID kernel.UUID) (classification.Result, error)
}
