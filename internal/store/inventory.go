package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/zaikoban/zaikoban/internal/httpx"
	"github.com/zaikoban/zaikoban/internal/pricing"
)

// CreateInventoryInput carries the caller-settable fields of a new
// inventory item. The derived selling price is never accepted from callers.
type CreateInventoryInput struct {
	Photo        string  `json:"photo"`
	ProductName  string  `json:"productName" validate:"required"`
	Color        string  `json:"color"`
	Size         string  `json:"size"`
	Quantity     int     `json:"quantity" validate:"gt=0"`
	CostPriceCNY float64 `json:"costPriceCNY" validate:"gt=0"`
}

// InventoryPatch is a partial update. Nil fields are left untouched.
type InventoryPatch struct {
	Photo        *string  `json:"photo"`
	ProductName  *string  `json:"productName" validate:"omitempty,min=1"`
	Color        *string  `json:"color"`
	Size         *string  `json:"size"`
	Quantity     *int     `json:"quantity" validate:"omitempty,gte=0"`
	CostPriceCNY *float64 `json:"costPriceCNY" validate:"omitempty,gte=0"`
}

// CreateInventoryItem inserts a new item with its selling price derived
// from the current settings.
func (r *Repository) CreateInventoryItem(ctx context.Context, storeID string, in CreateInventoryInput, s pricing.Settings) (InventoryItem, error) {
	if _, err := r.GetStore(ctx, storeID); err != nil {
		return InventoryItem{}, err
	}

	now := nowStamp()
	item := InventoryItem{
		ID:              NewID(),
		StoreID:         storeID,
		Photo:           in.Photo,
		ProductName:     in.ProductName,
		Color:           in.Color,
		Size:            in.Size,
		Quantity:        in.Quantity,
		CostPriceCNY:    in.CostPriceCNY,
		SellingPriceJPY: pricing.SellingPrice(in.CostPriceCNY, s),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO inventory_items (
			id, store_id, photo, product_name, color, size,
			quantity, cost_price_cny, selling_price_jpy, created_at, updated_at
		) VALUES (
			:id, :store_id, :photo, :product_name, :color, :size,
			:quantity, :cost_price_cny, :selling_price_jpy, :created_at, :updated_at
		)
	`, item)
	if err != nil {
		return InventoryItem{}, fmt.Errorf("insert inventory item: %w", err)
	}
	return item, nil
}

func (r *Repository) ListInventory(ctx context.Context, storeID string) ([]InventoryItem, error) {
	if _, err := r.GetStore(ctx, storeID); err != nil {
		return nil, err
	}

	items := make([]InventoryItem, 0)
	if err := r.db.SelectContext(ctx, &items, `
		SELECT id, store_id, photo, product_name, color, size,
		       quantity, cost_price_cny, selling_price_jpy, created_at, updated_at
		FROM inventory_items
		WHERE store_id = ?
		ORDER BY created_at DESC, id
	`, storeID); err != nil {
		return nil, fmt.Errorf("query inventory items: %w", err)
	}
	return items, nil
}

func (r *Repository) getInventoryItem(ctx context.Context, storeID, id string) (InventoryItem, error) {
	var item InventoryItem
	err := r.db.GetContext(ctx, &item, `
		SELECT id, store_id, photo, product_name, color, size,
		       quantity, cost_price_cny, selling_price_jpy, created_at, updated_at
		FROM inventory_items
		WHERE id = ? AND store_id = ?
	`, id, storeID)
	if errors.Is(err, sql.ErrNoRows) {
		return InventoryItem{}, fmt.Errorf("inventory item %q: %w", id, httpx.ErrNotFound)
	}
	if err != nil {
		return InventoryItem{}, fmt.Errorf("query inventory item: %w", err)
	}
	return item, nil
}

// UpdateInventoryItem applies a partial update. A cost change re-derives
// the selling price synchronously; cosmetic fields never do. Source and
// derived fields land in one UPDATE so a failed write changes neither.
func (r *Repository) UpdateInventoryItem(ctx context.Context, storeID, id string, patch InventoryPatch, s pricing.Settings) (InventoryItem, error) {
	item, err := r.getInventoryItem(ctx, storeID, id)
	if err != nil {
		return InventoryItem{}, err
	}

	if patch.Photo != nil {
		item.Photo = *patch.Photo
	}
	if patch.ProductName != nil {
		item.ProductName = *patch.ProductName
	}
	if patch.Color != nil {
		item.Color = *patch.Color
	}
	if patch.Size != nil {
		item.Size = *patch.Size
	}
	if patch.Quantity != nil {
		item.Quantity = *patch.Quantity
	}
	if patch.CostPriceCNY != nil {
		item.CostPriceCNY = *patch.CostPriceCNY
		item.SellingPriceJPY = pricing.SellingPrice(item.CostPriceCNY, s)
	}
	item.UpdatedAt = nowStamp()

	_, err = r.db.NamedExecContext(ctx, `
		UPDATE inventory_items SET
			photo = :photo,
			product_name = :product_name,
			color = :color,
			size = :size,
			quantity = :quantity,
			cost_price_cny = :cost_price_cny,
			selling_price_jpy = :selling_price_jpy,
			updated_at = :updated_at
		WHERE id = :id AND store_id = :store_id
	`, item)
	if err != nil {
		return InventoryItem{}, fmt.Errorf("update inventory item: %w", err)
	}
	return item, nil
}

func (r *Repository) DeleteInventoryItem(ctx context.Context, storeID, id string) error {
	result, err := r.db.ExecContext(ctx, `
		DELETE FROM inventory_items WHERE id = ? AND store_id = ?
	`, id, storeID)
	if err != nil {
		return fmt.Errorf("delete inventory item: %w", err)
	}
	if affected, err := result.RowsAffected(); err != nil {
		return fmt.Errorf("delete inventory item: %w", err)
	} else if affected == 0 {
		return fmt.Errorf("inventory item %q: %w", id, httpx.ErrNotFound)
	}
	return nil
}
