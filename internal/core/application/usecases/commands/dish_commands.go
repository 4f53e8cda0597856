package commands

import (
	"errors"

	"takeout/internal/core/domain/model/catalog"
	"takeout/internal/pkg/errs"
)

var (
	ErrCreateDishCommandIsNotConstructed = errors.New(
		"CreateDishCommand must be created via NewCreateDishCommand constructor",
	)
	ErrUpdateDishCommandIsNotConstructed = errors.New(
		"UpdateDishCommand must be created via NewUpdateDishCommand constructor",
	)
	ErrDeleteDishesCommandIsNotConstructed = errors.New(
		"DeleteDishesCommand must be created via NewDeleteDishesCommand constructor",
	)
	ErrSetDishStatusCommandIsNotConstructed = errors.New(
		"SetDishStatusCommand must be created via NewSetDishStatusCommand constructor",
	)
)

// CreateDishCommand represents adding a new dish to the catalog.
type CreateDishCommand struct {
	categoryID  int64
	name        string
	price       float64
	description string

	isConstructed bool
}

// NewCreateDishCommand creates a command to add a dish.
func NewCreateDishCommand(categoryID int64, name string, price float64, description string) (CreateDishCommand, error) {
	if categoryID <= 0 {
		return CreateDishCommand{}, errs.NewValueIsInvalidError("category id")
	}
	if name == "" {
		return CreateDishCommand{}, errs.NewValueIsRequiredError("dish name")
	}
	if price < 0 {
		return CreateDishCommand{}, errs.NewValueIsInvalidError("dish price")
	}

	return CreateDishCommand{
		categoryID:    categoryID,
		name:          name,
		price:         price,
		description:   description,
		isConstructed: true,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDishCommand) Validate() error {
	if !c.isConstructed {
		return ErrCreateDishCommandIsNotConstructed
	}
	return nil
}

func (c CreateDishCommand) CategoryID() int64   { return c.categoryID }
func (c CreateDishCommand) Name() string        { return c.name }
func (c CreateDishCommand) Price() float64      { return c.price }
func (c CreateDishCommand) Description() string { return c.description }

// UpdateDishCommand represents editing an existing dish.
type UpdateDishCommand struct {
	dishID      int64
	categoryID  int64
	name        string
	price       float64
	description string

	isConstructed bool
}

// NewUpdateDishCommand creates a command to edit a dish.
func NewUpdateDishCommand(dishID, categoryID int64, name string, price float64, description string) (UpdateDishCommand, error) {
	if dishID <= 0 {
		return UpdateDishCommand{}, errs.NewValueIsInvalidError("dish id")
	}
	if categoryID <= 0 {
		return UpdateDishCommand{}, errs.NewValueIsInvalidError("category id")
	}
	if name == "" {
		return UpdateDishCommand{}, errs.NewValueIsRequiredError("dish name")
	}
	if price < 0 {
		return UpdateDishCommand{}, errs.NewValueIsInvalidError("dish price")
	}

	return UpdateDishCommand{
		dishID:        dishID,
		categoryID:    categoryID,
		name:          name,
		price:         price,
		description:   description,
		isConstructed: true,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDishCommand) Validate() error {
	if !c.isConstructed {
		return ErrUpdateDishCommandIsNotConstructed
	}
	return nil
}

func (c UpdateDishCommand) DishID() int64       { return c.dishID }
func (c UpdateDishCommand) CategoryID() int64   { return c.categoryID }
func (c UpdateDishCommand) Name() string        { return c.name }
func (c UpdateDishCommand) Price() float64      { return c.price }
func (c UpdateDishCommand) Description() string { return c.description }

// DeleteDishesCommand represents removing one or more dishes from the
// catalog. Dishes that are on sale or bundled into a combo cannot be
// deleted.
type DeleteDishesCommand struct {
	dishIDs []int64

	isConstructed bool
}

// NewDeleteDishesCommand creates a command to delete dishes.
func NewDeleteDishesCommand(dishIDs []int64) (DeleteDishesCommand, error) {
	if len(dishIDs) == 0 {
		return DeleteDishesCommand{}, errs.NewValueIsRequiredError("dish ids")
	}
	for _, id := range dishIDs {
		if id <= 0 {
			return DeleteDishesCommand{}, errs.NewValueIsInvalidError("dish id")
		}
	}

	return DeleteDishesCommand{
		dishIDs:       append([]int64(nil), dishIDs...),
		isConstructed: true,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteDishesCommand) Validate() error {
	if !c.isConstructed {
		return ErrDeleteDishesCommandIsNotConstructed
	}
	return nil
}

// DishIDs returns the dishes to delete.
func (c DeleteDishesCommand) DishIDs() []int64 {
	return append([]int64(nil), c.dishIDs...)
}

// SetDishStatusCommand represents toggling a dish's sale state.
type SetDishStatusCommand struct {
	dishID int64
	status catalog.SaleStatus

	isConstructed bool
}

// NewSetDishStatusCommand creates a command to toggle a dish's sale state.
func NewSetDishStatusCommand(dishID int64, status catalog.SaleStatus) (SetDishStatusCommand, error) {
	if dishID <= 0 {
		return SetDishStatusCommand{}, errs.NewValueIsInvalidError("dish id")
	}
	if err := status.Validate(); err != nil {
		return SetDishStatusCommand{}, err
	}

	return SetDishStatusCommand{
		dishID:        dishID,
		status:        status,
		isConstructed: true,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetDishStatusCommand) Validate() error {
	if !c.isConstructed {
		return ErrSetDishStatusCommandIsNotConstructed
	}
	return nil
}

func (c SetDishStatusCommand) DishID() int64              { return c.dishID }
func (c SetDishStatusCommand) Status() catalog.SaleStatus { return c.status }
