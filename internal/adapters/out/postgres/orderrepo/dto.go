// Package orderrepo persists the order aggregate with GORM. The order row
// and its line rows map one aggregate; the lines association carries a
// cascade so deleting an order removes its lines in the same statement.
package orderrepo

import (
	"time"

	"pizzadelivery/internal/core/domain/model/kernel"
	"pizzadelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The sequence id is the primary key; the token carries a unique index and is
// what the public API exposes.
type OrderDTO struct {
	ID              int64     `gorm:"primaryKey;autoIncrement"`
	Token           uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	CustomerID      int64     `gorm:"index"`
	LocationCode    string
	TotalPrice      float64
	Status          int `gorm:"index"`
	CreatedAt       time.Time
	DeliveryAddress *string
	Lines           []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO is one priced position of an order. The subtotal is stored
// denormalized for the read side.
type OrderLineDTO struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	OrderID   int64 `gorm:"index"`
	ItemID    int64
	Quantity  int
	UnitPrice float64
	Subtotal  float64
}

// TableName overrides GORM's default naming to use "order_lines".
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	lines := make([]OrderLineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, OrderLineDTO{
			OrderID:   aggregate.ID(),
			ItemID:    line.ItemID(),
			Quantity:  line.Quantity(),
			UnitPrice: line.UnitPrice(),
			Subtotal:  line.Subtotal(),
		})
	}

	return OrderDTO{
		ID:              aggregate.ID(),
		Token:           aggregate.Token().Bytes(),
		CustomerID:      aggregate.CustomerID(),
		LocationCode:    aggregate.LocationCode(),
		TotalPrice:      aggregate.TotalPrice(),
		Status:          int(aggregate.Status()),
		CreatedAt:       aggregate.CreatedAt(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		Lines:           lines,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	token, err := kernel.UUIDFromBytes(dto.Token[:])
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := order.NewLine(lineDTO.ItemID, lineDTO.Quantity, lineDTO.UnitPrice)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		dto.ID,
		token,
		dto.CustomerID,
		dto.LocationCode,
		dto.TotalPrice,
		order.Status(dto.Status),
		dto.CreatedAt,
		dto.DeliveryAddress,
		lines,
	)
}
