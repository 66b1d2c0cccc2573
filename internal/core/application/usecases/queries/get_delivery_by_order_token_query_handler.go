package queries

import (
	"context"

	"pizzadelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetDeliveryByOrderTokenQueryHandler reads the delivery of one order.
type GetDeliveryByOrderTokenQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryByOrderTokenQueryHandler creates a handler bound to the delivery store.
func NewGetDeliveryByOrderTokenQueryHandler(db *gorm.DB) GetDeliveryByOrderTokenQueryHandler {
	return GetDeliveryByOrderTokenQueryHandler{db: db}
}

// Handle executes the query.
func (h GetDeliveryByOrderTokenQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryByOrderTokenQuery,
) (DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return DeliveryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+deliveryColumns+`
		FROM deliveries
		WHERE order_token = ?
	`, query.OrderToken().Bytes()).Rows()
	if err != nil {
		return DeliveryResponse{}, err
	}

	deliveries, err := scanDeliveries(rows)
	if err != nil {
		return DeliveryResponse{}, err
	}
	if len(deliveries) == 0 {
		return DeliveryResponse{}, errs.NewObjectNotFoundError("orderToken", query.OrderToken().String())
	}

	return deliveries[0], nil
}
