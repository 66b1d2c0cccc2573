// Package queries contains the read-side operations. Query handlers bypass
// the domain model and read projections straight off the database with raw
// SQL, returning plain response structs.
package queries

import (
	"context"
	"database/sql"
	"time"

	"pizzadelivery/internal/core/domain/model/kernel"
	"pizzadelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// orderSummaryColumns is the column set every order list query selects, in
// the order scanOrderSummaries expects.
const orderSummaryColumns = `
	id,
	token,
	customer_id,
	location_code,
	total_price,
	status,
	created_at,
	delivery_address`

// OrderLineResponse is one priced position of an order read model.
type OrderLineResponse struct {
	ItemID    int64
	Quantity  int
	UnitPrice float64
	Subtotal  float64
}

// OrderResponse is the full order read model, lines included.
type OrderResponse struct {
	ID              int64
	Token           kernel.UUID
	CustomerID      int64
	LocationCode    string
	TotalPrice      float64
	Status          string
	CreatedAt       time.Time
	DeliveryAddress *string
	Lines           []OrderLineResponse
}

// OrderSummaryResponse is the order read model without lines, used by list
// queries where line detail would only bloat the payload.
type OrderSummaryResponse struct {
	ID              int64
	Token           kernel.UUID
	CustomerID      int64
	LocationCode    string
	TotalPrice      float64
	Status          string
	CreatedAt       time.Time
	DeliveryAddress *string
}

// scanOrderSummaries reads rows selecting orderSummaryColumns.
func scanOrderSummaries(rows *sql.Rows) ([]OrderSummaryResponse, error) {
	defer rows.Close()

	orders := make([]OrderSummaryResponse, 0)
	for rows.Next() {
		var resp OrderSummaryResponse
		var token uuid.UUID
		var statusCode int

		if err := rows.Scan(
			&resp.ID,
			&token,
			&resp.CustomerID,
			&resp.LocationCode,
			&resp.TotalPrice,
			&statusCode,
			&resp.CreatedAt,
			&resp.DeliveryAddress,
		); err != nil {
			return nil, err
		}

		orderToken, err := kernel.UUIDFromBytes(token[:])
		if err != nil {
			return nil, err
		}
		resp.Token = orderToken
		resp.Status = order.Status(statusCode).String()
		orders = append(orders, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// scanOrder reads exactly one row selecting orderSummaryColumns and attaches
// the order's lines.
func scanOrder(ctx context.Context, db *gorm.DB, rows *sql.Rows) (OrderResponse, bool, error) {
	summaries, err := scanOrderSummaries(rows)
	if err != nil {
		return OrderResponse{}, false, err
	}
	if len(summaries) == 0 {
		return OrderResponse{}, false, nil
	}

	summary := summaries[0]
	lines, err := loadOrderLines(ctx, db, summary.ID)
	if err != nil {
		return OrderResponse{}, false, err
	}

	return OrderResponse{
		ID:              summary.ID,
		Token:           summary.Token,
		CustomerID:      summary.CustomerID,
		LocationCode:    summary.LocationCode,
		TotalPrice:      summary.TotalPrice,
		Status:          summary.Status,
		CreatedAt:       summary.CreatedAt,
		DeliveryAddress: summary.DeliveryAddress,
		Lines:           lines,
	}, true, nil
}

// loadOrderLines reads the line rows for one order.
func loadOrderLines(ctx context.Context, db *gorm.DB, orderID int64) ([]OrderLineResponse, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			item_id,
			quantity,
			unit_price,
			subtotal
		FROM order_lines
		WHERE order_id = ?
		ORDER BY id
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]OrderLineResponse, 0)
	for rows.Next() {
		var line OrderLineResponse
		if err = rows.Scan(&line.ItemID, &line.Quantity, &line.UnitPrice, &line.Subtotal); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
