package commands

import (
	"context"

	"takeout/internal/core/domain/model/catalog"
	"takeout/internal/core/domain/services"
	"takeout/internal/pkg/errs"
)

// CreateComboCommandHandler adds a new combo to the catalog. Every bundled
// dish must exist. Only the combo's category is evicted from the menu cache.
type CreateComboCommandHandler struct {
	uowFactory  CatalogUoWFactory
	cachePolicy services.MenuCachePolicy
}

// NewCreateComboCommandHandler creates a handler for combo creation.
func NewCreateComboCommandHandler(uowFactory CatalogUoWFactory, cachePolicy services.MenuCachePolicy) CreateComboCommandHandler {
	return CreateComboCommandHandler{
		uowFactory:  uowFactory,
		cachePolicy: cachePolicy,
	}
}

// Handle processes the combo creation command.
func (h *CreateComboCommandHandler) Handle(ctx context.Context, cmd CreateComboCommand) error {
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

	// Verifies that every bundled dish exists.
	if _, err := uow.CatalogRepository().GetDishes(ctx, dishIDsOf(cmd.Dishes())); err != nil {
		return err
	}

	combo, err := catalog.NewCombo(cmd.CategoryID(), cmd.Name(), cmd.Price(),
		cmd.Description(), cmd.Dishes())
	if err != nil {
		return err
	}

	if err = uow.CatalogRepository().AddCombo(ctx, combo); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.cachePolicy.OnItemCreated(ctx, cmd.CategoryID())
	return nil
}

// UpdateComboCommandHandler edits an existing combo, replacing its dish
// references, and evicts the whole menu cache namespace.
type UpdateComboCommandHandler struct {
	uowFactory  CatalogUoWFactory
	cachePolicy services.MenuCachePolicy
}

// NewUpdateComboCommandHandler creates a handler for combo edits.
func NewUpdateComboCommandHandler(uowFactory CatalogUoWFactory, cachePolicy services.MenuCachePolicy) UpdateComboCommandHandler {
	return UpdateComboCommandHandler{
		uowFactory:  uowFactory,
		cachePolicy: cachePolicy,
	}
}

// Handle processes the combo edit command.
func (h *UpdateComboCommandHandler) Handle(ctx context.Context, cmd UpdateComboCommand) error {
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

	combo, err := uow.CatalogRepository().GetCombo(ctx, cmd.ComboID())
	if err != nil {
		return err
	}

	if _, err = uow.CatalogRepository().GetDishes(ctx, dishIDsOf(cmd.Dishes())); err != nil {
		return err
	}

	if err = combo.Update(cmd.CategoryID(), cmd.Name(), cmd.Price(),
		cmd.Description(), cmd.Dishes()); err != nil {
		return err
	}

	if err = uow.CatalogRepository().UpdateCombo(ctx, combo); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.cachePolicy.OnItemChanged(ctx)
	return nil
}

// DeleteCombosCommandHandler removes combos after checking that none of
// them is still on sale.
type DeleteCombosCommandHandler struct {
	uowFactory  CatalogUoWFactory
	cachePolicy services.MenuCachePolicy
}

// NewDeleteCombosCommandHandler creates a handler for combo deletion.
func NewDeleteCombosCommandHandler(uowFactory CatalogUoWFactory, cachePolicy services.MenuCachePolicy) DeleteCombosCommandHandler {
	return DeleteCombosCommandHandler{
		uowFactory:  uowFactory,
		cachePolicy: cachePolicy,
	}
}

// Handle processes the combo deletion command.
func (h *DeleteCombosCommandHandler) Handle(ctx context.Context, cmd DeleteCombosCommand) error {
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

	for _, id := range cmd.ComboIDs() {
		combo, err := uow.CatalogRepository().GetCombo(ctx, id)
		if err != nil {
			return err
		}
		if combo.IsOnSale() {
			return errs.NewStateConflictError("delete combo",
				catalog.OffSale.String(), combo.Status().String())
		}
	}

	if err := uow.CatalogRepository().DeleteCombos(ctx, cmd.ComboIDs()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.cachePolicy.OnItemChanged(ctx)
	return nil
}

// SetComboStatusCommandHandler toggles a combo's sale state. Enabling
// checks that every bundled dish is on sale first.
type SetComboStatusCommandHandler struct {
	uowFactory  CatalogUoWFactory
	cachePolicy services.MenuCachePolicy
}

// NewSetComboStatusCommandHandler creates a handler for combo status toggles.
func NewSetComboStatusCommandHandler(uowFactory CatalogUoWFactory, cachePolicy services.MenuCachePolicy) SetComboStatusCommandHandler {
	return SetComboStatusCommandHandler{
		uowFactory:  uowFactory,
		cachePolicy: cachePolicy,
	}
}

// Handle processes the status toggle command.
func (h *SetComboStatusCommandHandler) Handle(ctx context.Context, cmd SetComboStatusCommand) error {
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

	combo, err := uow.CatalogRepository().GetCombo(ctx, cmd.ComboID())
	if err != nil {
		return err
	}

	if cmd.Status() == catalog.OnSale {
		dishes, dishErr := uow.CatalogRepository().GetDishes(ctx, dishIDsOf(combo.Dishes()))
		if dishErr != nil {
			return dishErr
		}
		allOnSale := true
		for _, dish := range dishes {
			if !dish.IsOnSale() {
				allOnSale = false
				break
			}
		}
		if err = combo.Enable(allOnSale); err != nil {
			return err
		}
	} else {
		combo.Disable()
	}

	if err = uow.CatalogRepository().UpdateCombo(ctx, combo); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.cachePolicy.OnItemChanged(ctx)
	return nil
}

// dishIDsOf extracts the dish ids from combo dish references.
func dishIDsOf(dishes []catalog.ComboDish) []int64 {
	ids := make([]int64, 0, len(dishes))
	for _, d := range dishes {
		ids = append(ids, d.DishID)
	}
	return ids
}
