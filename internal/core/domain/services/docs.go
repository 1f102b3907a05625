// Package services provides domain services that orchestrate business
// operations across multiple domain entities of the order brokering core.
//
// The package includes:
//   - ExpertMatcher: pure candidate ranking for order assignment
//   - CompensationPolicy: data-driven mapping of dispute outcomes to refund
//     percentages
//
// Domain services hold logic that spans aggregates and does not naturally
// belong to a single aggregate root.
package services
