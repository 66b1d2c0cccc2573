package queries

import (
	"context"
	"database/sql"

	"pizzadelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetDeliveryQueryHandler reads one delivery by id or token.
type GetDeliveryQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryQueryHandler creates a handler bound to the delivery store.
func NewGetDeliveryQueryHandler(db *gorm.DB) GetDeliveryQueryHandler {
	return GetDeliveryQueryHandler{db: db}
}

// Handle executes the query.
func (h GetDeliveryQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryQuery,
) (DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return DeliveryResponse{}, err
	}

	var rows *sql.Rows
	var err error
	if query.ByToken() {
		rows, err = h.db.WithContext(ctx).Raw(`
			SELECT `+deliveryColumns+`
			FROM deliveries
			WHERE token = ?
		`, query.Token().Bytes()).Rows()
	} else {
		rows, err = h.db.WithContext(ctx).Raw(`
			SELECT `+deliveryColumns+`
			FROM deliveries
			WHERE id = ?
		`, query.DeliveryID()).Rows()
	}
	if err != nil {
		return DeliveryResponse{}, err
	}

	deliveries, err := scanDeliveries(rows)
	if err != nil {
		return DeliveryResponse{}, err
	}
	if len(deliveries) == 0 {
		if query.ByToken() {
			return DeliveryResponse{}, errs.NewObjectNotFoundError("deliveryToken", query.Token().String())
		}
		return DeliveryResponse{}, errs.NewObjectNotFoundError("deliveryID", query.DeliveryID())
	}

	return deliveries[0], nil
}
