// Package production provides the nested production records attached to
// estimate and order line items: typesetting, processing options, paper-stock
// reservations, artwork attachments, and shipping configuration.
//
// These records are plain data entities owned by their parent line item. They
// carry their own identity so that the conversion engine can duplicate or
// migrate them between the estimate and order trees:
//   - Typesetting migrates (keeps its identity, re-parented to the order item)
//   - ProcessingOption, StockReservation, Artwork, ShippingInfo, and
//     ShippingPickup are duplicated with fresh identities
//
// Clone methods never share identity or backing storage with their source;
// slices and nested records are deep-copied.
package production
