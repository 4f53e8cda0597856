// Package services provides domain services that orchestrate business rules
// spanning more than one aggregate or an external provider.
//
// The package includes:
//   - DeliveryRangeChecker: validates that a delivery address lies within
//     the shop's delivery radius before an order is accepted
//   - MenuCachePolicy: owns the cache key scheme and the invalidation rules
//     for the cached menu
package services
