package queries

import (
	"database/sql"
	"time"

	"pizzadelivery/internal/core/domain/model/delivery"
	"pizzadelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// deliveryColumns is the column set every delivery query selects, in the
// order scanDeliveries expects.
const deliveryColumns = `
	id,
	token,
	order_token,
	agent_id,
	status,
	assigned_at,
	updated_at`

// DeliveryResponse is the delivery read model.
type DeliveryResponse struct {
	ID         int64
	Token      kernel.UUID
	OrderToken kernel.UUID
	AgentID    *int64
	Status     string
	AssignedAt *time.Time
	UpdatedAt  time.Time
}

// scanDeliveries reads rows selecting deliveryColumns.
func scanDeliveries(rows *sql.Rows) ([]DeliveryResponse, error) {
	defer rows.Close()

	deliveries := make([]DeliveryResponse, 0)
	for rows.Next() {
		var resp DeliveryResponse
		var token, orderToken uuid.UUID
		var statusCode int

		if err := rows.Scan(
			&resp.ID,
			&token,
			&orderToken,
			&resp.AgentID,
			&statusCode,
			&resp.AssignedAt,
			&resp.UpdatedAt,
		); err != nil {
			return nil, err
		}

		deliveryToken, err := kernel.UUIDFromBytes(token[:])
		if err != nil {
			return nil, err
		}
		orderTokenID, err := kernel.UUIDFromBytes(orderToken[:])
		if err != nil {
			return nil, err
		}

		resp.Token = deliveryToken
		resp.OrderToken = orderTokenID
		resp.Status = delivery.Status(statusCode).String()
		deliveries = append(deliveries, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
