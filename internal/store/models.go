// Package store persists stores, their inventory and order items, and the
// pricing settings singleton, and keeps every derived price field consistent
// with its sources.
package store

import (
	"time"

	"github.com/google/uuid"
)

// Store is an identity container owning its inventory and order items.
// Deleting a store cascades to its items.
type Store struct {
	ID        string `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	CreatedAt string `db:"created_at" json:"createdAt"`
}

// InventoryItem is one stocked product variant. SellingPriceJPY is derived:
// it always equals pricing.SellingPrice(CostPriceCNY, settings) as of the
// last time the cost or the settings changed.
type InventoryItem struct {
	ID              string  `db:"id" json:"id"`
	StoreID         string  `db:"store_id" json:"storeId"`
	Photo           string  `db:"photo" json:"photo"`
	ProductName     string  `db:"product_name" json:"productName"`
	Color           string  `db:"color" json:"color"`
	Size            string  `db:"size" json:"size"`
	Quantity        int     `db:"quantity" json:"quantity"`
	CostPriceCNY    float64 `db:"cost_price_cny" json:"costPriceCNY"`
	SellingPriceJPY int     `db:"selling_price_jpy" json:"sellingPriceJPY"`
	CreatedAt       string  `db:"created_at" json:"createdAt"`
	UpdatedAt       string  `db:"updated_at" json:"updatedAt"`
}

// OrderItem is one recorded sale. ConvertedWithShipping and Profit are
// derived together and never settable independently.
type OrderItem struct {
	ID                    string  `db:"id" json:"id"`
	StoreID               string  `db:"store_id" json:"storeId"`
	Photo                 string  `db:"photo" json:"photo"`
	ProductName           string  `db:"product_name" json:"productName"`
	Color                 string  `db:"color" json:"color"`
	Size                  string  `db:"size" json:"size"`
	CostPriceCNY          float64 `db:"cost_price_cny" json:"costPriceCNY"`
	ActualPayment         int     `db:"actual_payment" json:"actualPayment"`
	ConvertedWithShipping int     `db:"converted_with_shipping" json:"convertedWithShipping"`
	Profit                int     `db:"profit" json:"profit"`
	CreatedAt             string  `db:"created_at" json:"createdAt"`
	CompletedAt           string  `db:"completed_at" json:"completedAt"`
}

// NewID returns an opaque unique identifier for a new record. Random
// 128-bit UUIDs make collisions under concurrent creation a non-issue.
func NewID() string {
	return uuid.NewString()
}

func nowStamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
