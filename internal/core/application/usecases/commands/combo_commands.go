package commands

import (
	"errors"

	"takeout/internal/core/domain/model/catalog"
	"takeout/internal/pkg/errs"
)

var (
	ErrCreateComboCommandIsNotConstructed = errors.New(
		"CreateComboCommand must be created via NewCreateComboCommand constructor",
	)
	ErrUpdateComboCommandIsNotConstructed = errors.New(
		"UpdateComboCommand must be created via NewUpdateComboCommand constructor",
	)
	ErrDeleteCombosCommandIsNotConstructed = errors.New(
		"DeleteCombosCommand must be created via NewDeleteCombosCommand constructor",
	)
	ErrSetComboStatusCommandIsNotConstructed = errors.New(
		"SetComboStatusCommand must be created via NewSetComboStatusCommand constructor",
	)
)

// CreateComboCommand represents adding a new combo to the catalog.
type CreateComboCommand struct {
	categoryID  int64
	name        string
	price       float64
	description string
	dishes      []catalog.ComboDish

	isConstructed bool
}

// NewCreateComboCommand creates a command to add a combo.
func NewCreateComboCommand(categoryID int64, name string, price float64, description string,
	dishes []catalog.ComboDish) (CreateComboCommand, error) {
	if categoryID <= 0 {
		return CreateComboCommand{}, errs.NewValueIsInvalidError("category id")
	}
	if name == "" {
		return CreateComboCommand{}, errs.NewValueIsRequiredError("combo name")
	}
	if price < 0 {
		return CreateComboCommand{}, errs.NewValueIsInvalidError("combo price")
	}
	if len(dishes) == 0 {
		return CreateComboCommand{}, errs.NewValueIsRequiredError("combo dishes")
	}

	return CreateComboCommand{
		categoryID:    categoryID,
		name:          name,
		price:         price,
		description:   description,
		dishes:        append([]catalog.ComboDish(nil), dishes...),
		isConstructed: true,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateComboCommand) Validate() error {
	if !c.isConstructed {
		return ErrCreateComboCommandIsNotConstructed
	}
	return nil
}

func (c CreateComboCommand) CategoryID() int64   { return c.categoryID }
func (c CreateComboCommand) Name() string        { return c.name }
func (c CreateComboCommand) Price() float64      { return c.price }
func (c CreateComboCommand) Description() string { return c.description }

// Dishes returns the bundled dish references.
func (c CreateComboCommand) Dishes() []catalog.ComboDish {
	return append([]catalog.ComboDish(nil), c.dishes...)
}

// UpdateComboCommand represents editing an existing combo.
type UpdateComboCommand struct {
	comboID     int64
	categoryID  int64
	name        string
	price       float64
	description string
	dishes      []catalog.ComboDish

	isConstructed bool
}

// NewUpdateComboCommand creates a command to edit a combo.
func NewUpdateComboCommand(comboID, categoryID int64, name string, price float64, description string,
	dishes []catalog.ComboDish) (UpdateComboCommand, error) {
	if comboID <= 0 {
		return UpdateComboCommand{}, errs.NewValueIsInvalidError("combo id")
	}
	if categoryID <= 0 {
		return UpdateComboCommand{}, errs.NewValueIsInvalidError("category id")
	}
	if name == "" {
		return UpdateComboCommand{}, errs.NewValueIsRequiredError("combo name")
	}
	if price < 0 {
		return UpdateComboCommand{}, errs.NewValueIsInvalidError("combo price")
	}
	if len(dishes) == 0 {
		return UpdateComboCommand{}, errs.NewValueIsRequiredError("combo dishes")
	}

	return UpdateComboCommand{
		comboID:       comboID,
		categoryID:    categoryID,
		name:          name,
		price:         price,
		description:   description,
		dishes:        append([]catalog.ComboDish(nil), dishes...),
		isConstructed: true,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateComboCommand) Validate() error {
	if !c.isConstructed {
		return ErrUpdateComboCommandIsNotConstructed
	}
	return nil
}

func (c UpdateComboCommand) ComboID() int64      { return c.comboID }
func (c UpdateComboCommand) CategoryID() int64   { return c.categoryID }
func (c UpdateComboCommand) Name() string        { return c.name }
func (c UpdateComboCommand) Price() float64      { return c.price }
func (c UpdateComboCommand) Description() string { return c.description }

// Dishes returns the bundled dish references.
func (c UpdateComboCommand) Dishes() []catalog.ComboDish {
	return append([]catalog.ComboDish(nil), c.dishes...)
}

// DeleteCombosCommand represents removing one or more combos. Combos on
// sale cannot be deleted.
type DeleteCombosCommand struct {
	comboIDs []int64

	isConstructed bool
}

// NewDeleteCombosCommand creates a command to delete combos.
func NewDeleteCombosCommand(comboIDs []int64) (DeleteCombosCommand, error) {
	if len(comboIDs) == 0 {
		return DeleteCombosCommand{}, errs.NewValueIsRequiredError("combo ids")
	}
	for _, id := range comboIDs {
		if id <= 0 {
			return DeleteCombosCommand{}, errs.NewValueIsInvalidError("combo id")
		}
	}

	return DeleteCombosCommand{
		comboIDs:      append([]int64(nil), comboIDs...),
		isConstructed: true,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteCombosCommand) Validate() error {
	if !c.isConstructed {
		return ErrDeleteCombosCommandIsNotConstructed
	}
	return nil
}

// ComboIDs returns the combos to delete.
func (c DeleteCombosCommand) ComboIDs() []int64 {
	return append([]int64(nil), c.comboIDs...)
}

// SetComboStatusCommand represents toggling a combo's sale state. Putting a
// combo on sale requires every bundled dish to be on sale.
type SetComboStatusCommand struct {
	comboID int64
	status  catalog.SaleStatus

	isConstructed bool
}

// NewSetComboStatusCommand creates a command to toggle a combo's sale state.
func NewSetComboStatusCommand(comboID int64, status catalog.SaleStatus) (SetComboStatusCommand, error) {
	if comboID <= 0 {
		return SetComboStatusCommand{}, errs.NewValueIsInvalidError("combo id")
	}
	if err := status.Validate(); err != nil {
		return SetComboStatusCommand{}, err
	}

	return SetComboStatusCommand{
		comboID:       comboID,
		status:        status,
		isConstructed: true,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetComboStatusCommand) Validate() error {
	if !c.isConstructed {
		return ErrSetComboStatusCommandIsNotConstructed
	}
	return nil
}

func (c SetComboStatusCommand) ComboID() int64             { return c.comboID }
func (c SetComboStatusCommand) Status() catalog.SaleStatus { return c.status }
