package queries

import (
	"context"

	"pizzadelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderByTokenQueryHandler reads one order, lines included, by token.
type GetOrderByTokenQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByTokenQueryHandler creates a handler bound to the order store.
func NewGetOrderByTokenQueryHandler(db *gorm.DB) GetOrderByTokenQueryHandler {
	return GetOrderByTokenQueryHandler{db: db}
}

// Handle executes the query.
func (h GetOrderByTokenQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByTokenQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderSummaryColumns+`
		FROM orders
		WHERE token = ?
	`, query.OrderToken().Bytes()).Rows()
	if err != nil {
		return OrderResponse{}, err
	}

	resp, found, err := scanOrder(ctx, h.db, rows)
	if err != nil {
		return OrderResponse{}, err
	}
	if !found {
		return OrderResponse{}, errs.NewObjectNotFoundError("orderToken", query.OrderToken().String())
	}

	return resp, nil
}
