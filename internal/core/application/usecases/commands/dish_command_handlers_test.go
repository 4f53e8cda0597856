package commands_test

import (
	"context"
	"testing"
	"time"

	"takeout/internal/core/application/usecases/commands"
	"takeout/internal/core/domain/model/catalog"
	"takeout/internal/core/domain/services"
	"takeout/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// recordingCache captures evictions so cache policy behavior is observable.
type recordingCache struct {
	evicted []string
}

func (c *recordingCache) Get(context.Context, string) ([]byte, bool)          { return nil, false }
func (c *recordingCache) Set(context.Context, string, []byte, time.Duration) {}
func (c *recordingCache) EvictMatching(_ context.Context, pattern string) {
	c.evicted = append(c.evicted, pattern)
}

func restoredDish(t *testing.T, id int64, status catalog.SaleStatus) *catalog.Dish {
	t.Helper()
	d, err := catalog.RestoreDish(catalog.DishSnapshot{
		ID: id, CategoryID: 2, Name: "Mapo tofu", Price: 14.00, Status: status,
	})
	require.NoError(t, err)
	return d
}

func TestCreateDishCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateDishCommand(2, "Mapo tofu", 14.00, "spicy")
	require.NoError(t, err)

	cache := &recordingCache{}
	repo := new(MockCatalogRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CatalogRepository").Return(repo).Once(),
		repo.On("AddDish", mock.Anything, mock.AnythingOfType("*catalog.Dish")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateDishCommandHandler(
		catalogUoWFactoryFunc(func() commands.CatalogUoW { return uow }),
		services.NewMenuCachePolicy(cache))

	require.NoError(t, h.Handle(ctx, cmd))
	// Creation evicts only the new dish's category.
	assert.Equal(t, []string{"menu:category:2"}, cache.evicted)
	repo.AssertExpectations(t)
}

func TestUpdateDishCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateDishCommand(5, 3, "Mapo tofu deluxe", 16.00, "")
	require.NoError(t, err)

	dish := restoredDish(t, 5, catalog.OffSale)
	cache := &recordingCache{}
	repo := new(MockCatalogRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CatalogRepository").Return(repo).Once(),
		repo.On("GetDish", mock.Anything, int64(5)).Return(dish, nil).Once(),
		uow.On("CatalogRepository").Return(repo).Once(),
		repo.On("UpdateDish", mock.Anything, dish).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewUpdateDishCommandHandler(
		catalogUoWFactoryFunc(func() commands.CatalogUoW { return uow }),
		services.NewMenuCachePolicy(cache))

	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, "Mapo tofu deluxe", dish.Name())
	assert.Equal(t, int64(3), dish.CategoryID())
	// Updates may move the dish between categories: the namespace goes.
	assert.Equal(t, []string{"menu:*"}, cache.evicted)
}

func TestDeleteDishesCommandHandler_Handle_Guards(t *testing.T) {
	t.Run("a dish on sale cannot be deleted", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewDeleteDishesCommand([]int64{5})
		require.NoError(t, err)

		cache := &recordingCache{}
		repo := new(MockCatalogRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("CatalogRepository").Return(repo).Once(),
			repo.On("GetDishes", mock.Anything, []int64{5}).
				Return([]*catalog.Dish{restoredDish(t, 5, catalog.OnSale)}, nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewDeleteDishesCommandHandler(
			catalogUoWFactoryFunc(func() commands.CatalogUoW { return uow }),
			services.NewMenuCachePolicy(cache))

		require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrStateConflict)
		assert.Empty(t, cache.evicted)
	})

	t.Run("a dish bundled into a combo cannot be deleted", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewDeleteDishesCommand([]int64{5})
		require.NoError(t, err)

		cache := &recordingCache{}
		repo := new(MockCatalogRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("CatalogRepository").Return(repo).Once(),
			repo.On("GetDishes", mock.Anything, []int64{5}).
				Return([]*catalog.Dish{restoredDish(t, 5, catalog.OffSale)}, nil).Once(),
			uow.On("CatalogRepository").Return(repo).Once(),
			repo.On("ComboIDsReferencingDishes", mock.Anything, []int64{5}).
				Return([]int64{9}, nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewDeleteDishesCommandHandler(
			catalogUoWFactoryFunc(func() commands.CatalogUoW { return uow }),
			services.NewMenuCachePolicy(cache))

		require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrStateConflict)
		assert.Empty(t, cache.evicted)
	})

	t.Run("deletable dishes are removed and the namespace evicted", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewDeleteDishesCommand([]int64{5, 6})
		require.NoError(t, err)

		cache := &recordingCache{}
		repo := new(MockCatalogRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("CatalogRepository").Return(repo).Once(),
			repo.On("GetDishes", mock.Anything, []int64{5, 6}).
				Return([]*catalog.Dish{
					restoredDish(t, 5, catalog.OffSale),
					restoredDish(t, 6, catalog.OffSale),
				}, nil).Once(),
			uow.On("CatalogRepository").Return(repo).Once(),
			repo.On("ComboIDsReferencingDishes", mock.Anything, []int64{5, 6}).
				Return([]int64{}, nil).Once(),
			uow.On("CatalogRepository").Return(repo).Once(),
			repo.On("DeleteDishes", mock.Anything, []int64{5, 6}).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewDeleteDishesCommandHandler(
			catalogUoWFactoryFunc(func() commands.CatalogUoW { return uow }),
			services.NewMenuCachePolicy(cache))

		require.NoError(t, h.Handle(ctx, cmd))
		assert.Equal(t, []string{"menu:*"}, cache.evicted)
		repo.AssertExpectations(t)
	})
}

func TestSetComboStatusCommandHandler_Handle_EnableRequiresDishesOnSale(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSetComboStatusCommand(9, catalog.OnSale)
	require.NoError(t, err)

	combo, err := catalog.RestoreCombo(catalog.ComboSnapshot{
		ID: 9, CategoryID: 4, Name: "Family dinner", Price: 48.00,
		Status: catalog.OffSale,
		Dishes: []catalog.ComboDish{{DishID: 5, Quantity: 1}},
	})
	require.NoError(t, err)

	cache := &recordingCache{}
	repo := new(MockCatalogRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CatalogRepository").Return(repo).Once(),
		repo.On("GetCombo", mock.Anything, int64(9)).Return(combo, nil).Once(),
		uow.On("CatalogRepository").Return(repo).Once(),
		repo.On("GetDishes", mock.Anything, []int64{5}).
			Return([]*catalog.Dish{restoredDish(t, 5, catalog.OffSale)}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewSetComboStatusCommandHandler(
		catalogUoWFactoryFunc(func() commands.CatalogUoW { return uow }),
		services.NewMenuCachePolicy(cache))

	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrStateConflict)
	assert.False(t, combo.IsOnSale())
	assert.Empty(t, cache.evicted)
}
