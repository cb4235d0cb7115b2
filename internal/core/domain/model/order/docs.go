// Package order provides domain entities and business logic for binding
// production orders in the print-shop system. It implements the Order
// aggregate root with its line items and two independent state machines.
//
// The package includes:
//   - Order: The aggregate root managing identity, items, and the estimate link
//   - Item: A priced production line with nested production records
//   - Status: The order lifecycle (Pending through Completed/Cancelled)
//   - ItemStatus: The per-item production lifecycle (Prepress through
//     Completed/Cancelled, with Hold as an optional detour)
//
// Key business rules:
//   - Orders are created by estimate conversion or directly; never deleted,
//     only cancelled
//   - Both state machines allow free movement among open states (the board UI
//     drags cards in any direction) but reject transitions out of Completed
//     and Cancelled
//   - Item positions order the board columns; position 0 marks a just-moved
//     item surfacing first until the next reorder normalizes positions
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
