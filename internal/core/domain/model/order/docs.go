// Package order provides the domain entities and business rules for the
// order post-processing pipeline.
//
// The package includes:
//   - Order: the aggregate root carrying a type discriminant, monetary
//     amount, boolean flag, and the mutable status/priority pair
//   - Status: the enumerated processing outcomes the pipeline assigns
//   - Priority: the urgency derived from the order's amount
//   - Type: the closed discriminant (A, B, C, unknown) that selects the
//     processing handler
//
// Key business rules:
//   - Orders are constructed with status "new" and priority "low"
//   - The processor is the sole mutator of status and priority
//   - Priority is "high" iff the amount exceeds 200, else "low"
//   - Unrecognized type discriminants map to the unknown variant rather
//     than failing, so every fetched order is processed
//
// The package follows Domain-Driven Design principles, providing rich
// domain behavior, encapsulation, and validation to ensure business rules
// are enforced.
package order
