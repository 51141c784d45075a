package orderrepo

import (
	"github.com/google/uuid"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
)

// OrderDTO is the database representation of an Order aggregate.
type OrderDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;index"`
	OrderType string    `gorm:"type:varchar(16)"`
	Amount    float64
	Flag      bool
	Status    string `gorm:"type:varchar(32);index"`
	Priority  string `gorm:"type:varchar(8)"`
}

// TableName returns the database table name for OrderDTO.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an Order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:        aggregate.ID().Bytes(),
		UserID:    aggregate.UserID().Bytes(),
		OrderType: aggregate.Type().String(),
		Amount:    aggregate.Amount(),
		Flag:      aggregate.Flag(),
		Status:    aggregate.Status().String(),
		Priority:  aggregate.Priority().String(),
	}
}

// toDomain reconstructs an Order aggregate from its database representation.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	priority, err := order.PriorityFromString(dto.Priority)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, userID, order.TypeFromString(dto.OrderType),
		dto.Amount, dto.Flag, status, priority)
}
