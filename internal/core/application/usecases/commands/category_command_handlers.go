package commands

import (
	"context"

	"takeout/internal/core/domain/model/catalog"
	"takeout/internal/core/domain/services"
	"takeout/internal/pkg/errs"
)

// CreateCategoryCommandHandler adds a new menu category.
type CreateCategoryCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateCategoryCommandHandler creates a handler for category creation.
func NewCreateCategoryCommandHandler(uowFactory CatalogUoWFactory) CreateCategoryCommandHandler {
	return CreateCategoryCommandHandler{uowFactory: uowFactory}
}

// Handle processes the category creation command.
func (h *CreateCategoryCommandHandler) Handle(ctx context.Context, cmd CreateCategoryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	category, err := catalog.NewCategory(cmd.Name(), cmd.Sort())
	if err != nil {
		return err
	}

	if err = uow.CatalogRepository().AddCategory(ctx, category); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// UpdateCategoryCommandHandler renames or reorders a category and evicts
// the menu cache namespace.
type UpdateCategoryCommandHandler struct {
	uowFactory  CatalogUoWFactory
	cachePolicy services.MenuCachePolicy
}

// NewUpdateCategoryCommandHandler creates a handler for category edits.
func NewUpdateCategoryCommandHandler(uowFactory CatalogUoWFactory, cachePolicy services.MenuCachePolicy) UpdateCategoryCommandHandler {
	return UpdateCategoryCommandHandler{
		uowFactory:  uowFactory,
		cachePolicy: cachePolicy,
	}
}

// Handle processes the category edit command.
func (h *UpdateCategoryCommandHandler) Handle(ctx context.Context, cmd UpdateCategoryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	category, err := uow.CatalogRepository().GetCategory(ctx, cmd.CategoryID())
	if err != nil {
		return err
	}

	if err = category.Rename(cmd.Name(), cmd.Sort()); err != nil {
		return err
	}

	if err = uow.CatalogRepository().UpdateCategory(ctx, category); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.cachePolicy.OnItemChanged(ctx)
	return nil
}

// DeleteCategoryCommandHandler removes an empty category.
type DeleteCategoryCommandHandler struct {
	uowFactory  CatalogUoWFactory
	cachePolicy services.MenuCachePolicy
}

// NewDeleteCategoryCommandHandler creates a handler for category deletion.
func NewDeleteCategoryCommandHandler(uowFactory CatalogUoWFactory, cachePolicy services.MenuCachePolicy) DeleteCategoryCommandHandler {
	return DeleteCategoryCommandHandler{
		uowFactory:  uowFactory,
		cachePolicy: cachePolicy,
	}
}

// Handle processes the category deletion command.
func (h *DeleteCategoryCommandHandler) Handle(ctx context.Context, cmd DeleteCategoryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	count, err := uow.CatalogRepository().CountItemsInCategory(ctx, cmd.CategoryID())
	if err != nil {
		return err
	}
	if count > 0 {
		return errs.NewStateConflictError("delete category",
			"an empty category", "category still holds menu items")
	}

	if err = uow.CatalogRepository().DeleteCategory(ctx, cmd.CategoryID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.cachePolicy.OnItemChanged(ctx)
	return nil
}

// SetCategoryStatusCommandHandler toggles a category's visibility and
// evicts the menu cache namespace.
type SetCategoryStatusCommandHandler struct {
	uowFactory  CatalogUoWFactory
	cachePolicy services.MenuCachePolicy
}

// NewSetCategoryStatusCommandHandler creates a handler for category toggles.
func NewSetCategoryStatusCommandHandler(uowFactory CatalogUoWFactory, cachePolicy services.MenuCachePolicy) SetCategoryStatusCommandHandler {
	return SetCategoryStatusCommandHandler{
		uowFactory:  uowFactory,
		cachePolicy: cachePolicy,
	}
}

// Handle processes the category toggle command.
func (h *SetCategoryStatusCommandHandler) Handle(ctx context.Context, cmd SetCategoryStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	category, err := uow.CatalogRepository().GetCategory(ctx, cmd.CategoryID())
	if err != nil {
		return err
	}

	if err = category.SetStatus(cmd.Status()); err != nil {
		return err
	}

	if err = uow.CatalogRepository().UpdateCategory(ctx, category); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.cachePolicy.OnItemChanged(ctx)
	return nil
}
