package deliveryrepo

import (
	"context"
	"errors"

	"pizzadelivery/internal/core/domain/model/delivery"
	"pizzadelivery/internal/core/domain/model/kernel"
	"pizzadelivery/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// uniqueViolation is the postgres error code for a unique constraint breach.
const uniqueViolation = "23505"

// GormDeliveryRepository implements ports.DeliveryRepository using GORM.
// Every mutation is a single-row write, so the repository runs without a
// unit of work.
type GormDeliveryRepository struct {
	db *gorm.DB
}

// NewGormDeliveryRepository creates a new GORM delivery repository.
func NewGormDeliveryRepository(db *gorm.DB) *GormDeliveryRepository {
	return &GormDeliveryRepository{db: db}
}

// Add saves a new delivery. A second delivery for the same order token trips
// the unique index and comes back as a Conflict.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return errs.NewConflictErrorWithCause(
				"delivery already exists for order "+aggregate.OrderToken().String(), err)
		}
		return err
	}

	aggregate.SetID(dto.ID)
	return nil
}

// Update saves an existing delivery.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DeliveryDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"agent_id":    dto.AgentID,
			"status":      dto.Status,
			"assigned_at": dto.AssignedAt,
			"updated_at":  dto.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("deliveryID", dto.ID)
	}

	return nil
}

// GetByID retrieves a delivery by sequence id.
func (r *GormDeliveryRepository) GetByID(ctx context.Context, id int64) (*delivery.Delivery, error) {
	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("deliveryID", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByToken retrieves a delivery by its public token.
func (r *GormDeliveryRepository) GetByToken(ctx context.Context, token kernel.UUID) (*delivery.Delivery, error) {
	if err := token.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "token = ?", token.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("deliveryToken", token.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrderToken retrieves the delivery created for an order.
func (r *GormDeliveryRepository) GetByOrderToken(
	ctx context.Context, orderToken kernel.UUID,
) (*delivery.Delivery, error) {
	if err := orderToken.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_token = ?", orderToken.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderToken", orderToken.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes the delivery row.
func (r *GormDeliveryRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&DeliveryDTO{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("deliveryID", id)
	}

	return nil
}
