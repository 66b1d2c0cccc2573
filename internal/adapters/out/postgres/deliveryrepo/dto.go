// Package deliveryrepo persists the delivery aggregate with GORM. The unique
// index on order_token is what enforces the one-delivery-per-order rule; the
// repository surfaces a violation as a Conflict so the event consumer can
// treat duplicate fulfillment events as a benign replay.
package deliveryrepo

import (
	"time"

	"pizzadelivery/internal/core/domain/model/delivery"
	"pizzadelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting deliveries.
type DeliveryDTO struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	Token      uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	OrderToken uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	AgentID    *int64    `gorm:"index"`
	Status     int       `gorm:"index"`
	AssignedAt *time.Time
	UpdatedAt  time.Time
}

// TableName overrides GORM's default naming to use "deliveries".
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:         aggregate.ID(),
		Token:      aggregate.Token().Bytes(),
		OrderToken: aggregate.OrderToken().Bytes(),
		AgentID:    aggregate.AgentID(),
		Status:     int(aggregate.Status()),
		AssignedAt: aggregate.AssignedAt(),
		UpdatedAt:  aggregate.UpdatedAt(),
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	token, err := kernel.UUIDFromBytes(dto.Token[:])
	if err != nil {
		return nil, err
	}

	orderToken, err := kernel.UUIDFromBytes(dto.OrderToken[:])
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(
		dto.ID,
		token,
		orderToken,
		dto.AgentID,
		delivery.Status(dto.Status),
		dto.AssignedAt,
		dto.UpdatedAt,
	)
}
