// Package export serialises recorded data to downloadable formats.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/zaikoban/zaikoban/internal/store"
)

// WriteOrdersCSV serialises a store's recorded orders to CSV, one row per
// order with the stored derived values as-is.
func WriteOrdersCSV(w io.Writer, orders []store.OrderItem) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	header := []string{
		"ID", "Product", "Color", "Size",
		"Cost (CNY)", "Actual Payment (JPY)", "Converted With Shipping (JPY)", "Profit (JPY)",
		"Ordered At", "Completed At",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, o := range orders {
		record := []string{
			o.ID,
			o.ProductName,
			o.Color,
			o.Size,
			strconv.FormatFloat(o.CostPriceCNY, 'f', -1, 64),
			strconv.Itoa(o.ActualPayment),
			strconv.Itoa(o.ConvertedWithShipping),
			strconv.Itoa(o.Profit),
			o.CreatedAt,
			o.CompletedAt,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
