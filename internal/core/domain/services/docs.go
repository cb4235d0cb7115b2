// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the print-shop system. It
// implements workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - GraphCloner: clones an estimate's full entity graph into a new order graph
//   - AggregateTotals: computes exact-decimal financial totals over line items
//
// Domain services coordinate between aggregates, implementing business logic
// that spans bounded contexts following Domain-Driven Design principles.
package services
