package commands

import (
	"context"
	"errors"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/core/ports"
	"orderflow/internal/pkg/errs"
)

// Exporter writes one order's export rows to a sink. Implemented by
// OrderExporter; declared as an interface here so the handler can be tested
// against a fake.
type Exporter interface {
	Export(o *order.Order) error
}

// ProcessUserOrdersCommandHandler is the order processor. For each pending
// order of a user it dispatches on the order's type to assign a status,
// derives the priority from the amount, and persists the result.
//
// Failure containment follows a strict taxonomy:
//   - fetch failure: fatal, propagates unmodified
//   - export failure (type A): contained as export_failed
//   - classification failure (type B): contained as api_failure
//   - non-success classification envelope (type B): contained as api_error
//   - persistence-specific failure: contained as db_error, batch continues
//   - anything else: propagates and aborts the remaining batch
//
// Example:
//
//	handler := NewProcessUserOrdersCommandHandler(repo, classifier, exporter)
//	orders, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    // the batch aborted; no partial result is returned
//	    return err
//	}
//	// every order carries a final status and priority
type ProcessUserOrdersCommandHandler struct {
	orders     ports.OrderRepository
	classifier ports.Classifier
	exporter   Exporter
	policy     services.ClassificationPolicy
}

// NewProcessUserOrdersCommandHandler creates the order processor with its
// three capabilities: the order repository, the remote classifier, and the
// export sink wrapper.
func NewProcessUserOrdersCommandHandler(
	orders ports.OrderRepository,
	classifier ports.Classifier,
	exporter Exporter,
) ProcessUserOrdersCommandHandler {
	return ProcessUserOrdersCommandHandler{
		orders:     orders,
		classifier: classifier,
		exporter:   exporter,
		policy:     services.NewClassificationPolicy(),
	}
}

// Handle processes all pending orders of the command's user, strictly one
// at a time in fetch order. Each order passes through type dispatch, then
// priority derivation, then persistence. Returns the full mutated slice in
// input order, or an error when the batch aborted — never both.
func (h ProcessUserOrdersCommandHandler) Handle(
	ctx context.Context,
	command ProcessUserOrdersCommand,
) ([]*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.GetAllPendingForUser(ctx, command.UserID())
	if err != nil {
		return nil, err
	}

	for _, o := range orders {
		if err := h.applyTypeRules(ctx, o); err != nil {
			return nil, err
		}

		o.RecalculatePriority()

		if err := h.persist(ctx, o); err != nil {
			return nil, err
		}
	}

	return orders, nil
}

// applyTypeRules dispatches on the order's type and assigns the resulting
// status. Only the contained failure classes are absorbed here; any other
// error aborts the batch.
func (h ProcessUserOrdersCommandHandler) applyTypeRules(ctx context.Context, o *order.Order) error {
	switch o.Type() {
	case order.TypeA:
		if err := h.exporter.Export(o); err != nil {
			return o.ApplyStatus(order.ExportFailed)
		}
		return o.ApplyStatus(order.Exported)

	case order.TypeB:
		result, err := h.classifier.Classify(ctx, o.ID())
		if errors.Is(err, errs.ErrClassificationFailed) {
			return o.ApplyStatus(order.APIFailure)
		}
		if err != nil {
			return err
		}

		status, err := h.policy.StatusFor(result, o)
		if err != nil {
			return err
		}
		return o.ApplyStatus(status)

	case order.TypeC:
		if o.Flag() {
			return o.ApplyStatus(order.Completed)
		}
		return o.ApplyStatus(order.InProgress)

	default:
		return o.ApplyStatus(order.UnknownType)
	}
}

// persist writes the order's final status and priority. A
// persistence-specific failure is absorbed: the order is marked db_error
// (keeping its computed priority) and the batch continues. Any other
// failure propagates.
func (h ProcessUserOrdersCommandHandler) persist(ctx context.Context, o *order.Order) error {
	err := h.orders.UpdateStatus(ctx, o.ID(), o.Status(), o.Priority())
	if err == nil {
		return nil
	}

	if errors.Is(err, errs.ErrPersistenceFailed) {
		return o.ApplyStatus(order.DBError)
	}

	return err
}
