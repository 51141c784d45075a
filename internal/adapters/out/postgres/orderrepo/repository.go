// Package orderrepo provides a PostgreSQL implementation of the order
// repository port using GORM.
package orderrepo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/ports"
	"orderflow/internal/pkg/errs"
)

var _ ports.OrderRepository = (*GormOrderRepository)(nil)

// GormOrderRepository persists Order aggregates in PostgreSQL.
//
// Infrastructure failures are wrapped so that callers can match them
// with errors.Is against errs.ErrPersistenceFailed.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a repository backed by the given database handle.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add stores a new order.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewPersistenceErrorWithCause("add order", err)
	}
	return nil
}

// GetAllPendingForUser returns the user's orders that have not been
// processed yet, in insertion order.
func (r *GormOrderRepository) GetAllPendingForUser(
	ctx context.Context, userID kernel.UUID,
) ([]*order.Order, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID.Bytes(), order.New.String()).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewPersistenceErrorWithCause("get pending orders", err)
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}
	return orders, nil
}

// UpdateStatus writes the final status and priority of a processed order.
func (r *GormOrderRepository) UpdateStatus(
	ctx context.Context, id kernel.UUID, status order.Status, priority order.Priority,
) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if err := status.Validate(); err != nil {
		return err
	}
	if err := priority.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", id.Bytes()).
		Updates(map[string]interface{}{
			"status":   status.String(),
			"priority": priority.String(),
		})
	if result.Error != nil {
		return errs.NewPersistenceErrorWithCause("update order status", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewPersistenceErrorWithCause("update order status", gorm.ErrRecordNotFound)
	}
	return nil
}

// GetUsersWithPendingOrders returns each user that has at least one
// unprocessed order.
func (r *GormOrderRepository) GetUsersWithPendingOrders(ctx context.Context) ([]kernel.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("status = ?", order.New.String()).
		Distinct().
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, errs.NewPersistenceErrorWithCause("get users with pending orders", err)
	}

	userIDs := make([]kernel.UUID, 0, len(ids))
	for _, id := range ids {
		userID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		userIDs = append(userIDs, userID)
	}
	return userIDs, nil
}
