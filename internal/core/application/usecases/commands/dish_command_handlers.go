package commands

import (
	"context"

	"takeout/internal/core/domain/model/catalog"
	"takeout/internal/core/domain/services"
	"takeout/internal/pkg/errs"
)

// CreateDishCommandHandler adds a new dish to the catalog. Only the created
// dish's category is evicted from the menu cache, since a new item cannot
// affect any other category's view.
type CreateDishCommandHandler struct {
	uowFactory  CatalogUoWFactory
	cachePolicy services.MenuCachePolicy
}

// NewCreateDishCommandHandler creates a handler for dish creation.
func NewCreateDishCommandHandler(uowFactory CatalogUoWFactory, cachePolicy services.MenuCachePolicy) CreateDishCommandHandler {
	return CreateDishCommandHandler{
		uowFactory:  uowFactory,
		cachePolicy: cachePolicy,
	}
}

// Handle processes the dish creation command.
func (h *CreateDishCommandHandler) Handle(ctx context.Context, cmd CreateDishCommand) error {
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

	dish, err := catalog.NewDish(cmd.CategoryID(), cmd.Name(), cmd.Price(), cmd.Description())
	if err != nil {
		return err
	}

	if err = uow.CatalogRepository().AddDish(ctx, dish); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.cachePolicy.OnItemCreated(ctx, cmd.CategoryID())
	return nil
}

// UpdateDishCommandHandler edits an existing dish. The whole menu cache
// namespace is evicted because the dish may have moved between categories.
type UpdateDishCommandHandler struct {
	uowFactory  CatalogUoWFactory
	cachePolicy services.MenuCachePolicy
}

// NewUpdateDishCommandHandler creates a handler for dish edits.
func NewUpdateDishCommandHandler(uowFactory CatalogUoWFactory, cachePolicy services.MenuCachePolicy) UpdateDishCommandHandler {
	return UpdateDishCommandHandler{
		uowFactory:  uowFactory,
		cachePolicy: cachePolicy,
	}
}

// Handle processes the dish edit command.
func (h *UpdateDishCommandHandler) Handle(ctx context.Context, cmd UpdateDishCommand) error {
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

	dish, err := uow.CatalogRepository().GetDish(ctx, cmd.DishID())
	if err != nil {
		return err
	}

	if err = dish.Update(cmd.CategoryID(), cmd.Name(), cmd.Price(), cmd.Description()); err != nil {
		return err
	}

	if err = uow.CatalogRepository().UpdateDish(ctx, dish); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.cachePolicy.OnItemChanged(ctx)
	return nil
}

// DeleteDishesCommandHandler removes dishes from the catalog after checking
// the deletion guards: a dish on sale cannot be deleted, and neither can a
// dish bundled into any combo.
type DeleteDishesCommandHandler struct {
	uowFactory  CatalogUoWFactory
	cachePolicy services.MenuCachePolicy
}

// NewDeleteDishesCommandHandler creates a handler for dish deletion.
func NewDeleteDishesCommandHandler(uowFactory CatalogUoWFactory, cachePolicy services.MenuCachePolicy) DeleteDishesCommandHandler {
	return DeleteDishesCommandHandler{
		uowFactory:  uowFactory,
		cachePolicy: cachePolicy,
	}
}

// Handle processes the dish deletion command.
func (h *DeleteDishesCommandHandler) Handle(ctx context.Context, cmd DeleteDishesCommand) error {
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

	dishes, err := uow.CatalogRepository().GetDishes(ctx, cmd.DishIDs())
	if err != nil {
		return err
	}
	for _, dish := range dishes {
		if dish.IsOnSale() {
			return errs.NewStateConflictError("delete dish",
				catalog.OffSale.String(), dish.Status().String())
		}
	}

	comboIDs, err := uow.CatalogRepository().ComboIDsReferencingDishes(ctx, cmd.DishIDs())
	if err != nil {
		return err
	}
	if len(comboIDs) > 0 {
		return errs.NewStateConflictError("delete dish",
			"not bundled into any combo", "referenced by combos")
	}

	if err = uow.CatalogRepository().DeleteDishes(ctx, cmd.DishIDs()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.cachePolicy.OnItemChanged(ctx)
	return nil
}

// SetDishStatusCommandHandler toggles a dish's sale state and evicts the
// whole menu cache namespace, since combos bundling the dish may change
// visibility too.
type SetDishStatusCommandHandler struct {
	uowFactory  CatalogUoWFactory
	cachePolicy services.MenuCachePolicy
}

// NewSetDishStatusCommandHandler creates a handler for dish status toggles.
func NewSetDishStatusCommandHandler(uowFactory CatalogUoWFactory, cachePolicy services.MenuCachePolicy) SetDishStatusCommandHandler {
	return SetDishStatusCommandHandler{
		uowFactory:  uowFactory,
		cachePolicy: cachePolicy,
	}
}

// Handle processes the status toggle command.
func (h *SetDishStatusCommandHandler) Handle(ctx context.Context, cmd SetDishStatusCommand) error {
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

	dish, err := uow.CatalogRepository().GetDish(ctx, cmd.DishID())
	if err != nil {
		return err
	}

	if err = dish.SetStatus(cmd.Status()); err != nil {
		return err
	}

	if err = uow.CatalogRepository().UpdateDish(ctx, dish); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.cachePolicy.OnItemChanged(ctx)
	return nil
}
