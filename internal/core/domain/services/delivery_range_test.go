package services_test

import (
	"context"
	"errors"
	"testing"

	"takeout/internal/core/domain/services"
	"takeout/internal/core/ports"
	"takeout/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGeo struct {
	locations map[string]ports.Location
	distance  int
	geocodeErr error
	routeErr   error
}

func (f *fakeGeo) Geocode(_ context.Context, address string) (ports.Location, error) {
	if f.geocodeErr != nil {
		return ports.Location{}, f.geocodeErr
	}
	loc, ok := f.locations[address]
	if !ok {
		return ports.Location{}, errs.NewObjectNotFoundError("address", address)
	}
	return loc, nil
}

func (f *fakeGeo) RouteDistance(_ context.Context, _, _ ports.Location) (int, error) {
	if f.routeErr != nil {
		return 0, f.routeErr
	}
	return f.distance, nil
}

func newFakeGeo(distance int) *fakeGeo {
	return &fakeGeo{
		locations: map[string]ports.Location{
			"shop":     {Lat: 31.23, Lng: 121.47},
			"customer": {Lat: 31.25, Lng: 121.49},
		},
		distance: distance,
	}
}

func TestNewDeliveryRangeChecker(t *testing.T) {
	geo := newFakeGeo(100)

	_, err := services.NewDeliveryRangeChecker(nil, "shop", 5000)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = services.NewDeliveryRangeChecker(geo, "", 5000)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = services.NewDeliveryRangeChecker(geo, "shop", 0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	checker, err := services.NewDeliveryRangeChecker(geo, "shop", 5000)
	require.NoError(t, err)
	assert.NotNil(t, checker)
}

func TestDeliveryRangeChecker_Check(t *testing.T) {
	ctx := context.Background()

	t.Run("address within radius passes", func(t *testing.T) {
		checker, err := services.NewDeliveryRangeChecker(newFakeGeo(4999), "shop", 5000)
		require.NoError(t, err)

		assert.NoError(t, checker.Check(ctx, "customer"))
	})

	t.Run("distance equal to the radius passes", func(t *testing.T) {
		checker, err := services.NewDeliveryRangeChecker(newFakeGeo(5000), "shop", 5000)
		require.NoError(t, err)

		assert.NoError(t, checker.Check(ctx, "customer"))
	})

	t.Run("address beyond radius is out of range", func(t *testing.T) {
		checker, err := services.NewDeliveryRangeChecker(newFakeGeo(5001), "shop", 5000)
		require.NoError(t, err)

		err = checker.Check(ctx, "customer")
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("empty address is rejected before any provider call", func(t *testing.T) {
		geo := newFakeGeo(100)
		geo.geocodeErr = errors.New("must not be called")

		checker, err := services.NewDeliveryRangeChecker(geo, "shop", 5000)
		require.NoError(t, err)

		require.ErrorIs(t, checker.Check(ctx, ""), errs.ErrValueIsRequired)
	})

	t.Run("provider failures pass through", func(t *testing.T) {
		geo := newFakeGeo(100)
		geo.routeErr = errs.NewExternalProviderError("baidu", "route", errors.New("status 500"))

		checker, err := services.NewDeliveryRangeChecker(geo, "shop", 5000)
		require.NoError(t, err)

		require.ErrorIs(t, checker.Check(ctx, "customer"), errs.ErrExternalProvider)
	})

	t.Run("unknown address is not found", func(t *testing.T) {
		checker, err := services.NewDeliveryRangeChecker(newFakeGeo(100), "shop", 5000)
		require.NoError(t, err)

		require.ErrorIs(t, checker.Check(ctx, "nowhere"), errs.ErrObjectNotFound)
	})
}
