package estimaterepo

import (
	"context"
	"errors"
	"fmt"

	"printshop/internal/adapters/out/postgres/productionrepo"
	"printshop/internal/core/domain/model/estimate"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormEstimateRepository implements EstimateRepository using GORM.
type GormEstimateRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormEstimateRepository creates a new GORM estimate repository.
func NewGormEstimateRepository(db *gorm.DB, tracker aggregateTracker) *GormEstimateRepository {
	return &GormEstimateRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new estimate aggregate to the database: the header row, the line
// item rows in their insertion order, and each item's nested production records.
func (r *GormEstimateRepository) Add(ctx context.Context, aggregate *estimate.Estimate) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)

	dto := fromDomain(aggregate)
	if err := db.Create(&dto).Error; err != nil {
		return err
	}

	if shipping := aggregate.ShippingInfo(); shipping != nil {
		if err := productionrepo.SaveShippingInfo(db, productionrepo.OwnerEstimate, dto.ID, *shipping); err != nil {
			return err
		}
	}

	for i, item := range aggregate.Items() {
		itemDTO := itemFromDomain(item, i+1)
		if err := db.Create(&itemDTO).Error; err != nil {
			return err
		}

		if err := productionrepo.SaveItemRecords(db, productionrepo.OwnerEstimateItem, itemDTO.ID, item); err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves the mutable state of an existing estimate under an optimistic
// version check: the header fields, the order link, and each item's current
// status. Line item specs and nested records are immutable after Add; the
// conversion flow re-parents typesetting rows through the order repository.
func (r *GormEstimateRepository) Update(ctx context.Context, aggregate *estimate.Estimate) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)

	dto := fromDomain(aggregate)
	result := db.Model(&EstimateDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"order_id":      dto.OrderID,
			"po_number":     dto.PONumber,
			"in_hands_date": dto.InHandsDate,
			"status":        dto.Status,
			"version":       gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := db.Model(&EstimateDTO{}).
			Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}

		if count == 0 {
			return errs.NewObjectNotFoundError("estimateId", aggregate.ID().String())
		}

		return errs.NewVersionIsInvalidError("estimateId",
			fmt.Errorf("stored version no longer matches %d", dto.Version))
	}

	for _, item := range aggregate.Items() {
		if err := db.Model(&EstimateItemDTO{}).
			Where("id = ?", item.ID().Bytes()).
			Update("status", int(item.Status())).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves the complete estimate graph by ID, with line items in their
// insertion order.
func (r *GormEstimateRepository) Get(ctx context.Context, id kernel.UUID) (*estimate.Estimate, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)

	var dto EstimateDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("estimateId", id.String())
		}
		return nil, err
	}

	return r.load(db, dto)
}

// GetByItem retrieves the complete estimate graph owning the given line item.
func (r *GormEstimateRepository) GetByItem(ctx context.Context, itemID kernel.UUID) (*estimate.Estimate, error) {
	if err := itemID.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)

	var itemDTO EstimateItemDTO
	if err := db.First(&itemDTO, "id = ?", itemID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("estimateItemId", itemID.String())
		}
		return nil, err
	}

	var dto EstimateDTO
	if err := db.First(&dto, "id = ?", itemDTO.EstimateID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("estimateId", itemDTO.EstimateID)
		}
		return nil, err
	}

	return r.load(db, dto)
}

func (r *GormEstimateRepository) load(db *gorm.DB, dto EstimateDTO) (*estimate.Estimate, error) {
	shipping, err := productionrepo.LoadShippingInfo(db, productionrepo.OwnerEstimate, dto.ID)
	if err != nil {
		return nil, err
	}

	var itemDTOs []EstimateItemDTO
	if err := db.Order("ordinal ASC, id").
		Find(&itemDTOs, "estimate_id = ?", dto.ID).Error; err != nil {
		return nil, err
	}

	items := make([]*estimate.Item, 0, len(itemDTOs))
	for _, itemDTO := range itemDTOs {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}

		if itemErr = productionrepo.LoadItemRecords(db, productionrepo.OwnerEstimateItem, itemDTO.ID, item); itemErr != nil {
			return nil, itemErr
		}

		items = append(items, item)
	}

	return toDomain(dto, shipping, items)
}
