package queries

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProcessedOrdersQueryHandler reads a user's processed orders from the
// database. Everything that has left the "new" status counts as processed,
// including the contained failure outcomes (export_failed, api_failure,
// db_error and friends).
type GetProcessedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetProcessedOrdersQueryHandler creates a handler for processed-order
// queries. Requires a GORM database connection for query execution.
func NewGetProcessedOrdersQueryHandler(db *gorm.DB) GetProcessedOrdersQueryHandler {
	return GetProcessedOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by order ID for consistent
// output.
func (h GetProcessedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetProcessedOrdersQuery,
) ([]GetProcessedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetProcessedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_type,
			amount,
			flag,
			status,
			priority
		FROM orders
		WHERE user_id = ? AND status != ?
		ORDER BY id
	`, query.UserID().Bytes(), order.New.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetProcessedOrdersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&orderResp.Type,
			&orderResp.Amount,
			&orderResp.Flag,
			&orderResp.Status,
			&orderResp.Priority,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
