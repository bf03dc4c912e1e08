package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zaikoban/zaikoban/internal/store"
)

func TestHandleUpdateSettingsRejectsFullFeeRate(t *testing.T) {
	srv := newTestServer(t)
	seedTestSettings(t, srv)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/settings", strings.NewReader(
		`{"exchangeRate":23,"internationalShipping":1000,"domesticShipping":1000,"targetProfit":6000,"platformFeeRate":1.0}`,
	))
	srv.handleUpdateSettings(rr, req)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	// The stored singleton is untouched.
	settings, err := srv.repo.GetSettings(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0.22, settings.PlatformFeeRate)
}

func TestHandleUpdateSettingsSweepsStoredItems(t *testing.T) {
	srv := newTestServer(t)
	settings := seedTestSettings(t, srv)
	ctx := context.Background()

	st, err := srv.repo.CreateStore(ctx, "store")
	require.NoError(t, err)
	item, err := srv.repo.CreateInventoryItem(ctx, st.ID, store.CreateInventoryInput{
		ProductName: "ワンピース", Quantity: 1, CostPriceCNY: 100,
	}, settings)
	require.NoError(t, err)
	require.Equal(t, 13206, item.SellingPriceJPY)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/settings", strings.NewReader(
		`{"exchangeRate":25,"internationalShipping":1000,"domesticShipping":1000,"targetProfit":6000,"platformFeeRate":0.22}`,
	))
	srv.handleUpdateSettings(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp settingsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Equal(t, 25.0, resp.Settings.ExchangeRate)
	require.Equal(t, 1, resp.Recalc.InventoryUpdated)

	items, err := srv.repo.ListInventory(ctx, st.ID)
	require.NoError(t, err)
	require.Equal(t, 13462, items[0].SellingPriceJPY)
}

func TestHandleRecalculateUsesStoredSettings(t *testing.T) {
	srv := newTestServer(t)
	settings := seedTestSettings(t, srv)
	ctx := context.Background()

	st, err := srv.repo.CreateStore(ctx, "store")
	require.NoError(t, err)
	_, err = srv.repo.CreateOrder(ctx, st.ID, store.CreateOrderInput{
		ProductName: "hat", CostPriceCNY: 50, ActualPayment: 3000,
	}, settings)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	srv.handleRecalculate(rr, httptest.NewRequest(http.MethodPost, "/api/recalculate", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var stats store.RecalcStats
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &stats))
	require.Equal(t, 1, stats.OrdersUpdated)
}
