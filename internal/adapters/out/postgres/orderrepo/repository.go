package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"printshop/internal/adapters/out/postgres/productionrepo"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order aggregate to the database: the header row, the line
// item rows, and each item's nested production records. Typesetting records
// carried over from a converted estimate are re-parented to their new order
// items rather than duplicated.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)

	dto := fromDomain(aggregate)
	if err := db.Create(&dto).Error; err != nil {
		return err
	}

	if shipping := aggregate.ShippingInfo(); shipping != nil {
		if err := productionrepo.SaveShippingInfo(db, productionrepo.OwnerOrder, dto.ID, *shipping); err != nil {
			return err
		}
	}

	for _, item := range aggregate.Items() {
		itemDTO := itemFromDomain(item)
		if err := db.Create(&itemDTO).Error; err != nil {
			return err
		}

		if err := productionrepo.SaveItemRecords(db, productionrepo.OwnerOrderItem, itemDTO.ID, item); err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves the mutable header fields of an existing order under an
// optimistic version check. A stale version surfaces as VersionIsInvalidError.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"estimate_id":   dto.EstimateID,
			"po_number":     dto.PONumber,
			"in_hands_date": dto.InHandsDate,
			"status":        dto.Status,
			"version":       gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.staleOrMissing(ctx, "orderId", dto.ID, dto.Version)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateItem saves the mutable fields of a single line item (status, position,
// finished quantity) under an optimistic version check.
func (r *GormOrderRepository) UpdateItem(ctx context.Context, item *order.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := itemFromDomain(item)
	result := r.db.WithContext(ctx).Model(&OrderItemDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"status":       dto.Status,
			"position":     dto.Position,
			"finished_qty": dto.FinishedQty,
			"version":      gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&OrderItemDTO{}).
			Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}

		if count == 0 {
			return errs.NewObjectNotFoundError("orderItemId", item.ID().String())
		}

		return errs.NewVersionIsInvalidError("orderItemId",
			fmt.Errorf("stored version no longer matches %d", dto.Version))
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

// Get retrieves the complete order graph by ID, with line items ordered by
// position so that just-moved items (position 0) surface first.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)

	var dto OrderDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id.String())
		}
		return nil, err
	}

	shipping, err := productionrepo.LoadShippingInfo(db, productionrepo.OwnerOrder, dto.ID)
	if err != nil {
		return nil, err
	}

	var itemDTOs []OrderItemDTO
	if err := db.Order("position ASC, id").
		Find(&itemDTOs, "order_id = ?", dto.ID).Error; err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(itemDTOs))
	for _, itemDTO := range itemDTOs {
		item, itemErr := r.loadItem(db, itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return toDomain(dto, shipping, items)
}

// GetItem retrieves a single line item with its nested production records.
func (r *GormOrderRepository) GetItem(ctx context.Context, id kernel.UUID) (*order.Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)

	var dto OrderItemDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderItemId", id.String())
		}
		return nil, err
	}

	return r.loadItem(db, dto)
}

func (r *GormOrderRepository) loadItem(db *gorm.DB, dto OrderItemDTO) (*order.Item, error) {
	item, err := itemToDomain(dto)
	if err != nil {
		return nil, err
	}

	if err := productionrepo.LoadItemRecords(db, productionrepo.OwnerOrderItem, dto.ID, item); err != nil {
		return nil, err
	}

	return item, nil
}

// staleOrMissing distinguishes a concurrent modification from a missing row
// after a zero-row conditional update.
func (r *GormOrderRepository) staleOrMissing(ctx context.Context, paramName string, id any, version int) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		return errs.NewObjectNotFoundError(paramName, id)
	}

	return errs.NewVersionIsInvalidError(paramName,
		fmt.Errorf("stored version no longer matches %d", version))
}
