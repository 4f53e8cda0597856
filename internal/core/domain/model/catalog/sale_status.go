package catalog

import (
	"takeout/internal/pkg/errs"
)

// SaleStatus represents whether a catalog item is visible and orderable.
// The numeric values 0-1 are stable and stored as-is.
type SaleStatus int

const (
	// OffSale hides the item from the menu.
	OffSale SaleStatus = iota

	// OnSale makes the item orderable.
	OnSale
)

// Validate checks that the SaleStatus value is one of the defined states.
func (s SaleStatus) Validate() error {
	if s < OffSale || s > OnSale {
		return errs.NewValueIsOutOfRangeError("sale status", int(s), int(OffSale), int(OnSale))
	}
	return nil
}

// String returns the human-readable name of the sale state.
func (s SaleStatus) String() string {
	switch s {
	case OffSale:
		return "Off sale"
	case OnSale:
		return "On sale"
	default:
		return "Unknown"
	}
}
