package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"pizzadelivery/internal/core/domain/model/identity"
	"pizzadelivery/internal/core/domain/model/order"
	"pizzadelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderStatusQueryHandler reads the status projection of one order.
type GetOrderStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatusQueryHandler creates a handler bound to the order store.
func NewGetOrderStatusQueryHandler(db *gorm.DB) GetOrderStatusQueryHandler {
	return GetOrderStatusQueryHandler{db: db}
}

// Handle executes the query. A customer asking about an order they do not
// own gets a Forbidden.
func (h GetOrderStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatusQuery,
) (OrderStatusResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderStatusResponse{}, err
	}

	var statusCode int
	var customerID int64
	var totalPrice float64
	var createdAt time.Time
	row := h.db.WithContext(ctx).Raw(`
		SELECT status, customer_id, total_price, created_at
		FROM orders
		WHERE token = ?
	`, query.OrderToken().Bytes()).Row()

	if err := row.Scan(&statusCode, &customerID, &totalPrice, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderStatusResponse{}, errs.NewObjectNotFoundError("orderToken", query.OrderToken().String())
		}
		return OrderStatusResponse{}, err
	}

	if query.Actor().Role == identity.RoleCustomer && customerID != query.Actor().UserID {
		return OrderStatusResponse{}, errs.NewForbiddenError("not your order")
	}

	return OrderStatusResponse{
		Token:      query.OrderToken(),
		Status:     order.Status(statusCode).String(),
		TotalPrice: totalPrice,
		CreatedAt:  createdAt,
	}, nil
}
