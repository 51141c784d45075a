// Package services provides domain services for the order pipeline —
// business rules that combine a domain entity with data from an external
// capability and therefore don't belong to a single aggregate.
//
// The package includes:
//   - ClassificationPolicy: derives a type-B order's status from the remote
//     classification envelope and the order's own amount and flag
//
// Domain services here are pure: they perform no I/O and hold no state.
package services
