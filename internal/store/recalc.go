package store

import (
	"context"
	"fmt"

	"github.com/zaikoban/zaikoban/internal/pricing"
)

// RecalcStats counts the rows rewritten by a recalculation sweep.
type RecalcStats struct {
	InventoryUpdated int `json:"inventoryUpdated"`
	OrdersUpdated    int `json:"ordersUpdated"`
}

// RecalculateAll re-derives every stored derived field from the given
// settings: each inventory item's selling price, and each order's cost
// basis and profit. Items are independent, so iteration order is
// irrelevant and a second sweep with unchanged inputs rewrites identical
// values. The sweep runs in one transaction: a persistence failure rolls
// the whole thing back, and concurrent edits resolve last-write-wins.
func (r *Repository) RecalculateAll(ctx context.Context, s pricing.Settings) (RecalcStats, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return RecalcStats{}, fmt.Errorf("begin recalculation: %w", err)
	}
	defer tx.Rollback()

	var stats RecalcStats

	type invRow struct {
		ID   string  `db:"id"`
		Cost float64 `db:"cost_price_cny"`
	}
	var invRows []invRow
	if err := tx.SelectContext(ctx, &invRows, `SELECT id, cost_price_cny FROM inventory_items`); err != nil {
		return RecalcStats{}, fmt.Errorf("load inventory for recalculation: %w", err)
	}
	for _, row := range invRows {
		if _, err := tx.ExecContext(ctx, `
			UPDATE inventory_items SET selling_price_jpy = ? WHERE id = ?
		`, pricing.SellingPrice(row.Cost, s), row.ID); err != nil {
			return RecalcStats{}, fmt.Errorf("rewrite selling price for item %s: %w", row.ID, err)
		}
		stats.InventoryUpdated++
	}

	type orderRow struct {
		ID      string  `db:"id"`
		Cost    float64 `db:"cost_price_cny"`
		Payment int     `db:"actual_payment"`
	}
	var orderRows []orderRow
	if err := tx.SelectContext(ctx, &orderRows, `SELECT id, cost_price_cny, actual_payment FROM order_items`); err != nil {
		return RecalcStats{}, fmt.Errorf("load orders for recalculation: %w", err)
	}
	for _, row := range orderRows {
		converted := pricing.ConvertedWithShipping(row.Cost, s.ExchangeRate, pricing.DefaultOrderShipping)
		if _, err := tx.ExecContext(ctx, `
			UPDATE order_items SET converted_with_shipping = ?, profit = ? WHERE id = ?
		`, converted, pricing.Profit(row.Payment, converted), row.ID); err != nil {
			return RecalcStats{}, fmt.Errorf("rewrite derived fields for order %s: %w", row.ID, err)
		}
		stats.OrdersUpdated++
	}

	if err := tx.Commit(); err != nil {
		return RecalcStats{}, fmt.Errorf("commit recalculation: %w", err)
	}
	return stats, nil
}
