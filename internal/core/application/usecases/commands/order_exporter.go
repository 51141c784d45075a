package commands

import (
	"fmt"
	"strconv"
	"time"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/ports"
)

// noteAmountThreshold is the amount above which an export carries the
// high-value annotation row. Strict comparison: exactly 150 gets no note.
const noteAmountThreshold = 150

// exportHeader is the six-column header row of every export.
var exportHeader = []string{"ID", "Type", "Amount", "Flag", "Status", "Priority"}

// OrderExporter writes one order to a row sink: a header row, a data row
// with the order's current field values, and — for high-value orders — an
// annotation row. The data row reflects the order's status at the time of
// writing, before the processor assigns the exported status.
//
// Destination names are deterministic per order ID and current time
// (order_<id>_<unixtime>.csv); collisions across rapid repeated exports of
// the same order are accepted.
type OrderExporter struct {
	sink ports.RowSink
	now  func() time.Time
}

// NewOrderExporter creates an exporter writing to the given sink.
func NewOrderExporter(sink ports.RowSink) OrderExporter {
	return OrderExporter{
		sink: sink,
		now:  time.Now,
	}
}

// Export writes the order's row set to a freshly opened destination.
// Returns an error when the destination cannot be opened (nothing is
// written in that case) or when a write fails. The writer is closed on
// every path once Open has succeeded.
func (e OrderExporter) Export(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	name := fmt.Sprintf("order_%s_%d.csv", o.ID(), e.now().Unix())

	w, err := e.sink.Open(name)
	if err != nil {
		return fmt.Errorf("open export destination %s: %w", name, err)
	}

	if err := e.writeRows(w, o); err != nil {
		_ = w.Close()
		return err
	}

	return w.Close()
}

func (e OrderExporter) writeRows(w ports.RowWriter, o *order.Order) error {
	if err := w.WriteRow(exportHeader); err != nil {
		return fmt.Errorf("write header row: %w", err)
	}

	data := []string{
		o.ID().String(),
		o.Type().String(),
		strconv.FormatFloat(o.Amount(), 'f', -1, 64),
		strconv.FormatBool(o.Flag()),
		o.Status().String(),
		o.Priority().String(),
	}
	if err := w.WriteRow(data); err != nil {
		return fmt.Errorf("write data row: %w", err)
	}

	if o.Amount() > noteAmountThreshold {
		note := []string{"", "", "", "", "Note", "High value order"}
		if err := w.WriteRow(note); err != nil {
			return fmt.Errorf("write note row: %w", err)
		}
	}

	return nil
}
