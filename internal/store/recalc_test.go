package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecalculateAllAppliesNewSettings(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	settings := testSettings()

	st, err := repo.CreateStore(ctx, "store")
	require.NoError(t, err)
	item, err := repo.CreateInventoryItem(ctx, st.ID, CreateInventoryInput{
		ProductName: "ワンピース", Color: "白", Quantity: 2, CostPriceCNY: 100,
	}, settings)
	require.NoError(t, err)
	order, err := repo.CreateOrder(ctx, st.ID, CreateOrderInput{
		ProductName: "スニーカー", CostPriceCNY: 50, ActualPayment: 3000,
	}, settings)
	require.NoError(t, err)
	require.Equal(t, 13206, item.SellingPriceJPY)
	require.Equal(t, 2150, order.ConvertedWithShipping)

	settings.ExchangeRate = 25
	stats, err := repo.RecalculateAll(ctx, settings)
	require.NoError(t, err)
	require.Equal(t, 1, stats.InventoryUpdated)
	require.Equal(t, 1, stats.OrdersUpdated)

	items, err := repo.ListInventory(ctx, st.ID)
	require.NoError(t, err)
	// (100*25 + 8000) / 0.78 = 13461.53... rounded up.
	require.Equal(t, 13462, items[0].SellingPriceJPY)
	// Source and cosmetic fields stay put.
	require.Equal(t, "ワンピース", items[0].ProductName)
	require.Equal(t, "白", items[0].Color)
	require.Equal(t, 100.0, items[0].CostPriceCNY)

	orders, err := repo.ListOrders(ctx, st.ID)
	require.NoError(t, err)
	// ceil(50*25 + 1000) = 2250, profit 3000 - 2250.
	require.Equal(t, 2250, orders[0].ConvertedWithShipping)
	require.Equal(t, 750, orders[0].Profit)
	require.Equal(t, order.CreatedAt, orders[0].CreatedAt)
}

func TestRecalculateAllIsIdempotent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	settings := testSettings()

	st, err := repo.CreateStore(ctx, "store")
	require.NoError(t, err)
	for _, cost := range []float64{10, 55.5, 321} {
		_, err := repo.CreateInventoryItem(ctx, st.ID, CreateInventoryInput{
			ProductName: "item", Quantity: 1, CostPriceCNY: cost,
		}, settings)
		require.NoError(t, err)
		_, err = repo.CreateOrder(ctx, st.ID, CreateOrderInput{
			ProductName: "item", CostPriceCNY: cost, ActualPayment: 4000,
		}, settings)
		require.NoError(t, err)
	}

	settings.ExchangeRate = 21
	_, err = repo.RecalculateAll(ctx, settings)
	require.NoError(t, err)
	firstItems, err := repo.ListInventory(ctx, st.ID)
	require.NoError(t, err)
	firstOrders, err := repo.ListOrders(ctx, st.ID)
	require.NoError(t, err)

	_, err = repo.RecalculateAll(ctx, settings)
	require.NoError(t, err)
	secondItems, err := repo.ListInventory(ctx, st.ID)
	require.NoError(t, err)
	secondOrders, err := repo.ListOrders(ctx, st.ID)
	require.NoError(t, err)

	require.Equal(t, firstItems, secondItems)
	require.Equal(t, firstOrders, secondOrders)
}
