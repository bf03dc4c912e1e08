package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/zaikoban/zaikoban/internal/httpx"
	"github.com/zaikoban/zaikoban/internal/pricing"
)

const rfc3339Layout = "2006-01-02T15:04:05Z07:00"

// CreateOrderInput carries the caller-settable fields of a new order.
// CreatedAt may be given explicitly; otherwise ReportYear/ReportMonth pick
// the 15th of that month, and with neither the order is dated now.
type CreateOrderInput struct {
	Photo         string  `json:"photo"`
	ProductName   string  `json:"productName" validate:"required"`
	Color         string  `json:"color"`
	Size          string  `json:"size"`
	CostPriceCNY  float64 `json:"costPriceCNY" validate:"gte=0"`
	ActualPayment int     `json:"actualPayment"`
	CreatedAt     string  `json:"createdAt" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	CompletedAt   string  `json:"completedAt" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	ReportYear    int     `json:"reportYear" validate:"omitempty,gte=2000"`
	ReportMonth   int     `json:"reportMonth" validate:"omitempty,gte=1,lte=12"`
}

// OrderPatch is a partial update. Date edits never trigger recalculation;
// cost or payment edits re-derive both derived fields together.
type OrderPatch struct {
	Photo         *string  `json:"photo"`
	ProductName   *string  `json:"productName" validate:"omitempty,min=1"`
	Color         *string  `json:"color"`
	Size          *string  `json:"size"`
	CostPriceCNY  *float64 `json:"costPriceCNY" validate:"omitempty,gte=0"`
	ActualPayment *int     `json:"actualPayment"`
	CreatedAt     *string  `json:"createdAt" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	CompletedAt   *string  `json:"completedAt" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

func resolveOrderDate(in CreateOrderInput, now time.Time) string {
	if in.CreatedAt != "" {
		return in.CreatedAt
	}
	if in.ReportYear > 0 && in.ReportMonth >= 1 && in.ReportMonth <= 12 {
		// Mid-month stand-in date for orders recorded against a reporting
		// month without a known order date.
		return time.Date(in.ReportYear, time.Month(in.ReportMonth), 15, 0, 0, 0, 0, time.UTC).Format(rfc3339Layout)
	}
	return now.UTC().Format(rfc3339Layout)
}

// CreateOrder inserts a recorded sale with its cost basis and profit
// derived from the current settings and the flat order shipping surcharge.
func (r *Repository) CreateOrder(ctx context.Context, storeID string, in CreateOrderInput, s pricing.Settings) (OrderItem, error) {
	if _, err := r.GetStore(ctx, storeID); err != nil {
		return OrderItem{}, err
	}

	createdAt := resolveOrderDate(in, time.Now())
	completedAt := in.CompletedAt
	if completedAt == "" {
		completedAt = createdAt
	}

	converted := pricing.ConvertedWithShipping(in.CostPriceCNY, s.ExchangeRate, pricing.DefaultOrderShipping)
	order := OrderItem{
		ID:                    NewID(),
		StoreID:               storeID,
		Photo:                 in.Photo,
		ProductName:           in.ProductName,
		Color:                 in.Color,
		Size:                  in.Size,
		CostPriceCNY:          in.CostPriceCNY,
		ActualPayment:         in.ActualPayment,
		ConvertedWithShipping: converted,
		Profit:                pricing.Profit(in.ActualPayment, converted),
		CreatedAt:             createdAt,
		CompletedAt:           completedAt,
	}

	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO order_items (
			id, store_id, photo, product_name, color, size,
			cost_price_cny, actual_payment, converted_with_shipping, profit,
			created_at, completed_at
		) VALUES (
			:id, :store_id, :photo, :product_name, :color, :size,
			:cost_price_cny, :actual_payment, :converted_with_shipping, :profit,
			:created_at, :completed_at
		)
	`, order)
	if err != nil {
		return OrderItem{}, fmt.Errorf("insert order: %w", err)
	}
	return order, nil
}

func (r *Repository) ListOrders(ctx context.Context, storeID string) ([]OrderItem, error) {
	if _, err := r.GetStore(ctx, storeID); err != nil {
		return nil, err
	}

	orders := make([]OrderItem, 0)
	if err := r.db.SelectContext(ctx, &orders, `
		SELECT id, store_id, photo, product_name, color, size,
		       cost_price_cny, actual_payment, converted_with_shipping, profit,
		       created_at, completed_at
		FROM order_items
		WHERE store_id = ?
		ORDER BY created_at DESC, id
	`, storeID); err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	return orders, nil
}

func (r *Repository) getOrder(ctx context.Context, storeID, id string) (OrderItem, error) {
	var order OrderItem
	err := r.db.GetContext(ctx, &order, `
		SELECT id, store_id, photo, product_name, color, size,
		       cost_price_cny, actual_payment, converted_with_shipping, profit,
		       created_at, completed_at
		FROM order_items
		WHERE id = ? AND store_id = ?
	`, id, storeID)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderItem{}, fmt.Errorf("order %q: %w", id, httpx.ErrNotFound)
	}
	if err != nil {
		return OrderItem{}, fmt.Errorf("query order: %w", err)
	}
	return order, nil
}

// UpdateOrder applies a partial update. If the cost or the payment changed,
// both derived fields are re-derived together from the current settings.
func (r *Repository) UpdateOrder(ctx context.Context, storeID, id string, patch OrderPatch, s pricing.Settings) (OrderItem, error) {
	order, err := r.getOrder(ctx, storeID, id)
	if err != nil {
		return OrderItem{}, err
	}

	if patch.Photo != nil {
		order.Photo = *patch.Photo
	}
	if patch.ProductName != nil {
		order.ProductName = *patch.ProductName
	}
	if patch.Color != nil {
		order.Color = *patch.Color
	}
	if patch.Size != nil {
		order.Size = *patch.Size
	}
	if patch.CreatedAt != nil {
		order.CreatedAt = *patch.CreatedAt
	}
	if patch.CompletedAt != nil {
		order.CompletedAt = *patch.CompletedAt
	}

	if patch.CostPriceCNY != nil || patch.ActualPayment != nil {
		if patch.CostPriceCNY != nil {
			order.CostPriceCNY = *patch.CostPriceCNY
		}
		if patch.ActualPayment != nil {
			order.ActualPayment = *patch.ActualPayment
		}
		order.ConvertedWithShipping = pricing.ConvertedWithShipping(order.CostPriceCNY, s.ExchangeRate, pricing.DefaultOrderShipping)
		order.Profit = pricing.Profit(order.ActualPayment, order.ConvertedWithShipping)
	}

	_, err = r.db.NamedExecContext(ctx, `
		UPDATE order_items SET
			photo = :photo,
			product_name = :product_name,
			color = :color,
			size = :size,
			cost_price_cny = :cost_price_cny,
			actual_payment = :actual_payment,
			converted_with_shipping = :converted_with_shipping,
			profit = :profit,
			created_at = :created_at,
			completed_at = :completed_at
		WHERE id = :id AND store_id = :store_id
	`, order)
	if err != nil {
		return OrderItem{}, fmt.Errorf("update order: %w", err)
	}
	return order, nil
}

func (r *Repository) DeleteOrder(ctx context.Context, storeID, id string) error {
	result, err := r.db.ExecContext(ctx, `
		DELETE FROM order_items WHERE id = ? AND store_id = ?
	`, id, storeID)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	if affected, err := result.RowsAffected(); err != nil {
		return fmt.Errorf("delete order: %w", err)
	} else if affected == 0 {
		return fmt.Errorf("order %q: %w", id, httpx.ErrNotFound)
	}
	return nil
}
