package commands

import (
	"errors"

	"takeout/internal/core/domain/model/catalog"
	"takeout/internal/pkg/errs"
)

var (
	ErrCreateCategoryCommandIsNotConstructed = errors.New(
		"CreateCategoryCommand must be created via NewCreateCategoryCommand constructor",
	)
	ErrUpdateCategoryCommandIsNotConstructed = errors.New(
		"UpdateCategoryCommand must be created via NewUpdateCategoryCommand constructor",
	)
	ErrDeleteCategoryCommandIsNotConstructed = errors.New(
		"DeleteCategoryCommand must be created via NewDeleteCategoryCommand constructor",
	)
	ErrSetCategoryStatusCommandIsNotConstructed = errors.New(
		"SetCategoryStatusCommand must be created via NewSetCategoryStatusCommand constructor",
	)
)

// CreateCategoryCommand represents adding a new menu category.
type CreateCategoryCommand struct {
	name string
	sort int

	isConstructed bool
}

// NewCreateCategoryCommand creates a command to add a category.
func NewCreateCategoryCommand(name string, sort int) (CreateCategoryCommand, error) {
	if name == "" {
		return CreateCategoryCommand{}, errs.NewValueIsRequiredError("category name")
	}

	return CreateCategoryCommand{
		name:          name,
		sort:          sort,
		isConstructed: true,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCategoryCommand) Validate() error {
	if !c.isConstructed {
		return ErrCreateCategoryCommandIsNotConstructed
	}
	return nil
}

func (c CreateCategoryCommand) Name() string { return c.name }
func (c CreateCategoryCommand) Sort() int    { return c.sort }

// UpdateCategoryCommand represents renaming or reordering a category.
type UpdateCategoryCommand struct {
	categoryID int64
	name       string
	sort       int

	isConstructed bool
}

// NewUpdateCategoryCommand creates a command to edit a category.
func NewUpdateCategoryCommand(categoryID int64, name string, sort int) (UpdateCategoryCommand, error) {
	if categoryID <= 0 {
		return UpdateCategoryCommand{}, errs.NewValueIsInvalidError("category id")
	}
	if name == "" {
		return UpdateCategoryCommand{}, errs.NewValueIsRequiredError("category name")
	}

	return UpdateCategoryCommand{
		categoryID:    categoryID,
		name:          name,
		sort:          sort,
		isConstructed: true,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCategoryCommand) Validate() error {
	if !c.isConstructed {
		return ErrUpdateCategoryCommandIsNotConstructed
	}
	return nil
}

func (c UpdateCategoryCommand) CategoryID() int64 { return c.categoryID }
func (c UpdateCategoryCommand) Name() string      { return c.name }
func (c UpdateCategoryCommand) Sort() int         { return c.sort }

// DeleteCategoryCommand represents removing a category. A category still
// holding dishes or combos cannot be deleted.
type DeleteCategoryCommand struct {
	categoryID int64

	isConstructed bool
}

// NewDeleteCategoryCommand creates a command to delete a category.
func NewDeleteCategoryCommand(categoryID int64) (DeleteCategoryCommand, error) {
	if categoryID <= 0 {
		return DeleteCategoryCommand{}, errs.NewValueIsInvalidError("category id")
	}

	return DeleteCategoryCommand{
		categoryID:    categoryID,
		isConstructed: true,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteCategoryCommand) Validate() error {
	if !c.isConstructed {
		return ErrDeleteCategoryCommandIsNotConstructed
	}
	return nil
}

func (c DeleteCategoryCommand) CategoryID() int64 { return c.categoryID }

// SetCategoryStatusCommand represents toggling a category's visibility.
type SetCategoryStatusCommand struct {
	categoryID int64
	status     catalog.SaleStatus

	isConstructed bool
}

// NewSetCategoryStatusCommand creates a command to toggle a category.
func NewSetCategoryStatusCommand(categoryID int64, status catalog.SaleStatus) (SetCategoryStatusCommand, error) {
	if categoryID <= 0 {
		return SetCategoryStatusCommand{}, errs.NewValueIsInvalidError("category id")
	}
	if err := status.Validate(); err != nil {
		return SetCategoryStatusCommand{}, err
	}

	return SetCategoryStatusCommand{
		categoryID:    categoryID,
		status:        status,
		isConstructed: true,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetCategoryStatusCommand) Validate() error {
	if !c.isConstructed {
		return ErrSetCategoryStatusCommandIsNotConstructed
	}
	return nil
}

func (c SetCategoryStatusCommand) CategoryID() int64          { return c.categoryID }
func (c SetCategoryStatusCommand) Status() catalog.SaleStatus { return c.status }
