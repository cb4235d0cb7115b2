// Package estimate provides domain entities and business logic for
// pre-production quotes in the print-shop system. It implements the Estimate
// aggregate root with its line items and workflow state machine.
//
// The package includes:
//   - Estimate: The aggregate root managing identity, items, and the order link
//   - Item: A priced line with nested production records
//   - Status: A state machine shared by estimates and their items
//
// Key business rules:
//   - Estimates follow the Draft -> Pending -> Approved workflow, with
//     Cancelled reachable from Draft and Pending
//   - Approving an estimate cascades Approved to every line item
//   - An estimate converts to at most one order; once converted it is frozen
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package estimate
