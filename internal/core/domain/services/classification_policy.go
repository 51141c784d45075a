package services

import (
	"orderflow/internal/core/domain/model/classification"
	"orderflow/internal/core/domain/model/order"
)

// ClassificationPolicy is a domain service that derives a type-B order's
// status from a classification envelope and the order's own amount and flag.
//
// Business rules, evaluated in this exact precedence (first match wins):
//  1. Non-success envelope -> api_error
//  2. data >= 50 and amount < 100 -> processed
//  3. data < 50 or flag -> pending
//  4. otherwise -> error
//
// The amount/data rule is deliberately checked before the flag rule, so a
// flagged order with high data and low amount still classifies as
// processed, not pending. That evaluation order is load-bearing business
// behavior and must not be reordered.
//
// Example usage:
//
//	policy := NewClassificationPolicy()
//	status, err := policy.StatusFor(result, o)
//	if err != nil {
//	    // order failed validation
//	    return err
//	}
//	// status is one of: APIError, Processed, Pending, Error
type ClassificationPolicy struct{}

// NewClassificationPolicy creates a new ClassificationPolicy instance.
func NewClassificationPolicy() ClassificationPolicy {
	return ClassificationPolicy{}
}

// StatusFor derives the status for the given order from the envelope.
//
// Parameters:
//   - result: the envelope returned by the classification capability
//   - o: the order being classified (must be valid)
//
// Returns one of APIError, Processed, Pending, or Error, or a validation
// error when the order was not properly constructed.
func (p ClassificationPolicy) StatusFor(result classification.Result, o *order.Order) (order.Status, error) {
	if err := o.Validate(); err != nil {
		return order.Undefined, err
	}

	if !result.Succeeded() {
		return order.APIError, nil
	}

	switch {
	case result.Data >= 50 && o.Amount() < 100:
		return order.Processed, nil
	case result.Data < 50 || o.Flag():
		return order.Pending, nil
	default:
		return order.Error, nil
	}
}
