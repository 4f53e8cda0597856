package services

import (
	"context"

	"takeout/internal/core/ports"
	"takeout/internal/pkg/errs"
)

// DeliveryRangeChecker validates that a delivery address is reachable from
// the shop. It geocodes both endpoints and compares the driving distance
// against the configured radius.
//
// The check runs before an order is persisted, so a provider failure blocks
// submission rather than producing an undeliverable order.
type DeliveryRangeChecker struct {
	geo          ports.GeoProvider
	shopAddress  string
	radiusMeters int
}

// NewDeliveryRangeChecker creates a checker for the given shop address and
// delivery radius in meters.
func NewDeliveryRangeChecker(geo ports.GeoProvider, shopAddress string, radiusMeters int) (*DeliveryRangeChecker, error) {
	if geo == nil {
		return nil, errs.NewValueIsRequiredError("geo provider")
	}
	if shopAddress == "" {
		return nil, errs.NewValueIsRequiredError("shop address")
	}
	if radiusMeters <= 0 {
		return nil, errs.NewValueIsInvalidError("delivery radius")
	}

	return &DeliveryRangeChecker{
		geo:          geo,
		shopAddress:  shopAddress,
		radiusMeters: radiusMeters,
	}, nil
}

// Check geocodes the delivery address and verifies the driving distance from
// the shop. Returns a ValueIsOutOfRangeError when the address is too far,
// and passes provider errors through unchanged.
func (c *DeliveryRangeChecker) Check(ctx context.Context, deliveryAddress string) error {
	if deliveryAddress == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}

	shop, err := c.geo.Geocode(ctx, c.shopAddress)
	if err != nil {
		return err
	}

	target, err := c.geo.Geocode(ctx, deliveryAddress)
	if err != nil {
		return err
	}

	distance, err := c.geo.RouteDistance(ctx, shop, target)
	if err != nil {
		return err
	}

	if distance > c.radiusMeters {
		return errs.NewValueIsOutOfRangeError("delivery distance", distance, 0, c.radiusMeters)
	}
	return nil
}
