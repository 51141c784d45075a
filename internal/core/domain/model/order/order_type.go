package order

// Type is the closed discriminant that selects the processing handler for
// an order. The raw discriminant arrives as an open string; anything other
// than the three recognized values parses to TypeUnknown, so the dispatch
// switch stays exhaustive over exactly four cases.
type Type int

const (
	// TypeUnknown is the catch-all for unrecognized or missing
	// discriminants. It is a legitimate variant, not an invalid value:
	// orders of this type are processed and marked UnknownType.
	TypeUnknown Type = iota

	// TypeA selects the export handler.
	TypeA

	// TypeB selects the remote classification handler.
	TypeB

	// TypeC selects the flag handler.
	TypeC
)

// TypeFromString maps a raw discriminant to its closed variant.
// The mapping is total: unrecognized input yields TypeUnknown.
func TypeFromString(s string) Type {
	switch s {
	case "A":
		return TypeA
	case "B":
		return TypeB
	case "C":
		return TypeC
	default:
		return TypeUnknown
	}
}

// String returns the canonical discriminant string.
// Implements fmt.Stringer.
func (t Type) String() string {
	switch t {
	case TypeA:
		return "A"
	case TypeB:
		return "B"
	case TypeC:
		return "C"
	default:
		return "unknown"
	}
}
