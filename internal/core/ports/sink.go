package ports

// RowSink abstracts an append-only, row-structured write destination for
// order exports. Implementations must make Open idempotently create the
// durable location it writes into (directory, workbook, bucket) — creation
// is not an error if the location already exists.
type RowSink interface {
	// Open creates the named destination and returns a writer for it.
	// An Open failure means nothing was written.
	Open(name string) (RowWriter, error)
}

// RowWriter writes string rows to an open destination. Close must be called
// on every path once Open has succeeded; it flushes and releases the
// destination.
type RowWriter interface {
	WriteRow(fields []string) error
	Close() error
}
