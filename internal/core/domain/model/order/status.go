package order

import (
	"fmt"

	"orderflow/internal/pkg/errs"
)

// Status represents the processing state of an order. Orders enter the
// pipeline as New and leave it with exactly one of the terminal statuses
// assigned by the processor.
//
// Terminal statuses by source:
//
//	type A:      Exported | ExportFailed
//	type B:      Processed | Pending | Error | APIError | APIFailure
//	type C:      Completed | InProgress
//	other types: UnknownType
//	persistence: DBError (overwrites any of the above)
//
// Status is a value object that validates its values and provides the
// string representations used for persistence and export.
type Status int

const (
	// Undefined represents an invalid or unset status.
	// This value (0) helps catch uninitialized Status values.
	Undefined Status = iota

	// New is the initial status assigned at construction.
	// Orders in this status are pending and eligible for processing.
	New

	// Exported indicates a type-A order whose rows were written to the sink.
	Exported

	// ExportFailed indicates a type-A order whose sink could not be opened.
	ExportFailed

	// Completed indicates a flagged type-C order.
	Completed

	// InProgress indicates an unflagged type-C order.
	InProgress

	// UnknownType indicates an order with an unrecognized type discriminant.
	UnknownType

	// APIFailure indicates the classification call itself failed.
	APIFailure

	// APIError indicates the classification envelope reported non-success.
	APIError

	// Processed indicates a successfully classified type-B order.
	Processed

	// Pending indicates a type-B order deferred by the classification rules.
	Pending

	// Error indicates a type-B order that matched no classification rule.
	Error

	// DBError indicates the status/priority update could not be persisted.
	DBError
)

// getStatusStrings returns the map of Status values to their canonical
// string forms. These exact strings are stored in the database and written
// to export rows.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Undefined:    "undefined",
		New:          "new",
		Exported:     "exported",
		ExportFailed: "export_failed",
		Completed:    "completed",
		InProgress:   "in_progress",
		UnknownType:  "unknown_type",
		APIFailure:   "api_failure",
		APIError:     "api_error",
		Processed:    "processed",
		Pending:      "pending",
		Error:        "error",
		DBError:      "db_error",
	}
}

// getValidStatusStrings returns the map of valid Status values only.
func getValidStatusStrings() map[Status]string {
	strings := getStatusStrings()
	delete(strings, Undefined)
	return strings
}

// Validate checks if the Status value is valid.
// Undefined (0) and any out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical string form of the status.
// Invalid values render as "undefined". Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "undefined"
}

// StatusFromString parses the canonical string form back into a Status.
// Used when reconstructing orders from persistence.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Undefined, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}
