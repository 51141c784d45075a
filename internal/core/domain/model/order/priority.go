package order

import (
	"fmt"

	"orderflow/internal/pkg/errs"
)

// highPriorityThreshold is the monetary amount above which an order is
// considered high priority. The comparison is strict: an amount of exactly
// 200 stays low.
const highPriorityThreshold = 200

// Priority represents the derived urgency of an order. It is recomputed
// from the order's amount on every pipeline pass and always overwritten,
// independent of the order's type or status outcome.
type Priority int

const (
	// PriorityUndefined represents an invalid or unset priority.
	PriorityUndefined Priority = iota

	// Low is the priority assigned at construction and to any order whose
	// amount does not exceed the high-priority threshold.
	Low

	// High is the priority for orders whose amount exceeds the threshold.
	High
)

// getPriorityStrings returns the map of Priority values to their canonical
// string forms.
func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		PriorityUndefined: "undefined",
		Low:               "low",
		High:              "high",
	}
}

// PriorityForAmount derives the priority from a monetary amount.
// A missing amount coerces to zero and therefore yields Low.
func PriorityForAmount(amount float64) Priority {
	if amount > highPriorityThreshold {
		return High
	}
	return Low
}

// Validate checks if the Priority value is valid.
func (p Priority) Validate() error {
	if p != Low && p != High {
		return errs.NewValueIsInvalidErrorWithCause("priority is invalid", fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}

// String returns the canonical string form of the priority.
// Invalid values render as "undefined". Implements fmt.Stringer.
func (p Priority) String() string {
	if str, ok := getPriorityStrings()[p]; ok {
		return str
	}
	return "undefined"
}

// PriorityFromString parses the canonical string form back into a Priority.
// Used when reconstructing orders from persistence.
func PriorityFromString(s string) (Priority, error) {
	switch s {
	case "low":
		return Low, nil
	case "high":
		return High, nil
	default:
		return PriorityUndefined, errs.NewValueIsInvalidErrorWithCause("priority is invalid", fmt.Errorf("%q is not a valid priority", s))
	}
}
