// Package classification provides the response envelope returned by the
// remote classification capability for type-B orders.
package classification

// StatusSuccess is the only envelope status that counts as a successful
// classification. Any other value signals a non-success envelope.
const StatusSuccess = "success"

// Result is the envelope of one remote classification call: a status string
// and a numeric payload whose meaning is defined only for type-B orders.
type Result struct {
	Status string
	Data   float64
}

// NewResult creates a classification result envelope.
func NewResult(status string, data float64) Result {
	return Result{Status: status, Data: data}
}

// Succeeded reports whether the envelope carries a successful
// classification.
func (r Result) Succeeded() bool {
	return r.Status == StatusSuccess
}
