// Package estimaterepo provides data transfer objects and mapping functions for estimate persistence.
// This package implements the repository pattern for the estimate domain aggregate, handling
// the conversion between domain entities and database representations.
package estimaterepo

import (
	"time"

	"printshop/internal/core/domain/model/estimate"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/production"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EstimateDTO represents the database structure for persisting estimate aggregates.
// The order_id column holds the one-time link to the order produced by
// conversion; a non-null value freezes the estimate.
type EstimateDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OfficeID    uuid.UUID `gorm:"type:uuid;index"`
	ContactID   uuid.UUID `gorm:"type:uuid"`
	CreatorID   uuid.UUID `gorm:"type:uuid"`
	OrderID     *uuid.UUID `gorm:"type:uuid;index"`
	PONumber    string     `gorm:"column:po_number"`
	DateIn      time.Time
	InHandsDate *time.Time
	Status      int `gorm:"index"`
	Version     int
}

// TableName specifies the database table name for estimate entities.
func (EstimateDTO) TableName() string {
	return "estimates"
}

// EstimateItemDTO represents the database structure for persisting estimate line items.
// The ordinal column preserves the insertion order of items within their estimate.
type EstimateItemDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	EstimateID     uuid.UUID `gorm:"type:uuid;index"`
	Description    string
	Quantity       int
	Cost           decimal.Decimal `gorm:"type:numeric(12,2)"`
	Amount         decimal.Decimal `gorm:"type:numeric(12,2)"`
	ShippingAmount decimal.Decimal `gorm:"type:numeric(12,2)"`
	Ink            string
	Size           string
	Notes          string
	Status         int
	Ordinal        int
}

// TableName specifies the database table name for estimate line items.
func (EstimateItemDTO) TableName() string {
	return "estimate_items"
}

// fromDomain converts an estimate domain aggregate to its header database
// representation. Items and nested records are persisted separately.
func fromDomain(est *estimate.Estimate) EstimateDTO {
	var orderID *uuid.UUID
	if id := est.OrderID(); id != nil {
		raw := id.Bytes()
		orderID = &raw
	}

	return EstimateDTO{
		ID:          est.ID().Bytes(),
		OfficeID:    est.OfficeID().Bytes(),
		ContactID:   est.ContactID().Bytes(),
		CreatorID:   est.CreatorID().Bytes(),
		OrderID:     orderID,
		PONumber:    est.PONumber(),
		DateIn:      est.DateIn(),
		InHandsDate: est.InHandsDate(),
		Status:      int(est.Status()),
		Version:     est.Version(),
	}
}

// itemFromDomain converts an estimate line item to its database representation.
func itemFromDomain(item *estimate.Item, ordinal int) EstimateItemDTO {
	return EstimateItemDTO{
		ID:             item.ID().Bytes(),
		EstimateID:     item.EstimateID().Bytes(),
		Description:    item.Description(),
		Quantity:       item.Quantity(),
		Cost:           item.Cost(),
		Amount:         item.Amount(),
		ShippingAmount: item.ShippingAmount(),
		Ink:            item.Ink(),
		Size:           item.Size(),
		Notes:          item.Notes(),
		Status:         int(item.Status()),
		Ordinal:        ordinal,
	}
}

// toDomain converts database DTOs to an estimate domain aggregate using
// RestoreEstimate. Nested production records must already be attached to the
// supplied items.
func toDomain(dto EstimateDTO, shipping *production.ShippingInfo, items []*estimate.Item) (*estimate.Estimate, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	officeID, err := kernel.UUIDFromBytes(dto.OfficeID[:])
	if err != nil {
		return nil, err
	}

	contactID, err := kernel.UUIDFromBytes(dto.ContactID[:])
	if err != nil {
		return nil, err
	}

	creatorID, err := kernel.UUIDFromBytes(dto.CreatorID[:])
	if err != nil {
		return nil, err
	}

	var orderID *kernel.UUID
	if dto.OrderID != nil {
		oID, orderErr := kernel.UUIDFromBytes((*dto.OrderID)[:])
		if orderErr != nil {
			return nil, orderErr
		}

		orderID = &oID
	}

	return estimate.RestoreEstimate(
		id,
		officeID,
		contactID,
		creatorID,
		dto.PONumber,
		dto.DateIn,
		dto.InHandsDate,
		estimate.Status(dto.Status),
		shipping,
		items,
		orderID,
		dto.Version,
	)
}

// itemToDomain converts a database DTO to an estimate line item without its
// nested production records; the repository attaches those afterwards.
func itemToDomain(dto EstimateItemDTO) (*estimate.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	estimateID, err := kernel.UUIDFromBytes(dto.EstimateID[:])
	if err != nil {
		return nil, err
	}

	return estimate.RestoreItem(
		id,
		estimateID,
		dto.Description,
		dto.Quantity,
		dto.Cost,
		dto.Amount,
		dto.ShippingAmount,
		dto.Ink,
		dto.Size,
		dto.Notes,
		estimate.Status(dto.Status),
		nil,
		nil,
		nil,
		nil,
		nil,
	)
}
