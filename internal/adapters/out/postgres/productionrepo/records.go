package productionrepo

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"printshop/internal/core/domain/model/production"
)

// RecordHolder exposes the nested production records of a line item for
// persistence. Both estimate and order items satisfy it.
type RecordHolder interface {
	Typesetting() *production.Typesetting
	ProcessingOptions() []production.ProcessingOption
	StockReservations() []production.StockReservation
	Artwork() []production.Artwork
	ShippingInfo() *production.ShippingInfo
}

// RecordSink accepts nested production records loaded from storage. Both
// estimate and order items satisfy it.
type RecordSink interface {
	AttachTypesetting(t production.Typesetting) error
	AddProcessingOption(p production.ProcessingOption)
	AddStockReservation(s production.StockReservation)
	AddArtwork(a production.Artwork)
	AttachShippingInfo(s production.ShippingInfo) error
}

// SaveItemRecords writes all nested records of a line item, parenting each row
// to ownerID through ownerColumn. Typesetting rows are re-parented in place
// when a row with the same identity already exists: this is the conversion
// path, where the typesetting record migrates from the estimate item to the
// order item instead of being copied. All other record kinds are inserted.
func SaveItemRecords(db *gorm.DB, ownerColumn string, ownerID uuid.UUID, holder RecordHolder) error {
	if t := holder.Typesetting(); t != nil {
		if err := saveTypesetting(db, ownerColumn, ownerID, *t); err != nil {
			return err
		}
	}

	for _, p := range holder.ProcessingOptions() {
		dto := processingOptionFromDomain(p)
		setItemOwner(&dto.EstimateItemID, &dto.OrderItemID, ownerColumn, ownerID)

		if err := db.Create(&dto).Error; err != nil {
			return err
		}
	}

	for _, s := range holder.StockReservations() {
		dto := stockReservationFromDomain(s)
		setItemOwner(&dto.EstimateItemID, &dto.OrderItemID, ownerColumn, ownerID)

		if err := db.Create(&dto).Error; err != nil {
			return err
		}
	}

	for _, a := range holder.Artwork() {
		dto := artworkFromDomain(a)
		setItemOwner(&dto.EstimateItemID, &dto.OrderItemID, ownerColumn, ownerID)

		if err := db.Create(&dto).Error; err != nil {
			return err
		}
	}

	if s := holder.ShippingInfo(); s != nil {
		if err := SaveShippingInfo(db, ownerColumn, ownerID, *s); err != nil {
			return err
		}
	}

	return nil
}

func saveTypesetting(db *gorm.DB, ownerColumn string, ownerID uuid.UUID, t production.Typesetting) error {
	reparent := db.Model(&TypesettingDTO{}).
		Where("id = ?", t.ID.Bytes()).
		Updates(map[string]any{
			OwnerEstimateItem: nil,
			OwnerOrderItem:    nil,
			ownerColumn:       ownerID,
		})
	if reparent.Error != nil {
		return reparent.Error
	}

	if reparent.RowsAffected > 0 {
		return nil
	}

	dto := typesettingFromDomain(t)
	setItemOwner(&dto.EstimateItemID, &dto.OrderItemID, ownerColumn, ownerID)

	return db.Create(&dto).Error
}

// SaveShippingInfo inserts a shipping configuration and its optional pickup
// record, parented to ownerID through ownerColumn. The owner may be a line
// item or a whole estimate or order.
func SaveShippingInfo(db *gorm.DB, ownerColumn string, ownerID uuid.UUID, s production.ShippingInfo) error {
	dto := shippingInfoFromDomain(s)

	switch ownerColumn {
	case OwnerEstimate:
		dto.EstimateID = &ownerID
	case OwnerOrder:
		dto.OrderID = &ownerID
	case OwnerEstimateItem:
		dto.EstimateItemID = &ownerID
	case OwnerOrderItem:
		dto.OrderItemID = &ownerID
	}

	if err := db.Create(&dto).Error; err != nil {
		return err
	}

	if s.Pickup != nil {
		pickup := pickupFromDomain(*s.Pickup, dto.ID)
		if err := db.Create(&pickup).Error; err != nil {
			return err
		}
	}

	return nil
}

// LoadItemRecords reads all nested records parented to ownerID through
// ownerColumn and attaches them to the sink.
func LoadItemRecords(db *gorm.DB, ownerColumn string, ownerID uuid.UUID, sink RecordSink) error {
	var typesettings []TypesettingDTO
	if err := db.Where(ownerColumn+" = ?", ownerID).Find(&typesettings).Error; err != nil {
		return err
	}

	for _, dto := range typesettings {
		t, err := typesettingToDomain(dto)
		if err != nil {
			return err
		}

		if err := sink.AttachTypesetting(t); err != nil {
			return err
		}
	}

	var options []ProcessingOptionDTO
	if err := db.Where(ownerColumn+" = ?", ownerID).Find(&options).Error; err != nil {
		return err
	}

	for _, dto := range options {
		p, err := processingOptionToDomain(dto)
		if err != nil {
			return err
		}

		sink.AddProcessingOption(p)
	}

	var reservations []StockReservationDTO
	if err := db.Where(ownerColumn+" = ?", ownerID).Find(&reservations).Error; err != nil {
		return err
	}

	for _, dto := range reservations {
		s, err := stockReservationToDomain(dto)
		if err != nil {
			return err
		}

		sink.AddStockReservation(s)
	}

	var artworks []ArtworkDTO
	if err := db.Where(ownerColumn+" = ?", ownerID).Find(&artworks).Error; err != nil {
		return err
	}

	for _, dto := range artworks {
		a, err := artworkToDomain(dto)
		if err != nil {
			return err
		}

		sink.AddArtwork(a)
	}

	shipping, err := LoadShippingInfo(db, ownerColumn, ownerID)
	if err != nil {
		return err
	}

	if shipping != nil {
		if err := sink.AttachShippingInfo(*shipping); err != nil {
			return err
		}
	}

	return nil
}

// LoadShippingInfo reads the shipping configuration parented to ownerID
// through ownerColumn, with its pickup record if present. Returns nil when
// the owner has no shipping configured.
func LoadShippingInfo(db *gorm.DB, ownerColumn string, ownerID uuid.UUID) (*production.ShippingInfo, error) {
	var dtos []ShippingInfoDTO
	if err := db.Where(ownerColumn+" = ?", ownerID).Limit(1).Find(&dtos).Error; err != nil {
		return nil, err
	}

	if len(dtos) == 0 {
		return nil, nil
	}

	var pickup *ShippingPickupDTO

	var pickups []ShippingPickupDTO
	if err := db.Where("shipping_info_id = ?", dtos[0].ID).Limit(1).Find(&pickups).Error; err != nil {
		return nil, err
	}

	if len(pickups) > 0 {
		pickup = &pickups[0]
	}

	info, err := shippingInfoToDomain(dtos[0], pickup)
	if err != nil {
		return nil, err
	}

	return &info, nil
}

func setItemOwner(estimateItemID, orderItemID **uuid.UUID, ownerColumn string, ownerID uuid.UUID) {
	id := ownerID

	switch ownerColumn {
	case OwnerEstimateItem:
		*estimateItemID = &id
	case OwnerOrderItem:
		*orderItemID = &id
	}
}
