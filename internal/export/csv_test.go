package export

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zaikoban/zaikoban/internal/store"
)

func TestWriteOrdersCSV(t *testing.T) {
	orders := []store.OrderItem{
		{
			ID:                    "ord-1",
			ProductName:           "スニーカー",
			Color:                 "黒",
			Size:                  "26.5",
			CostPriceCNY:          50,
			ActualPayment:         3000,
			ConvertedWithShipping: 2150,
			Profit:                850,
			CreatedAt:             "2026-03-15T00:00:00Z",
			CompletedAt:           "2026-03-20T00:00:00Z",
		},
	}

	var sb strings.Builder
	require.NoError(t, WriteOrdersCSV(&sb, orders))

	records, err := csv.NewReader(strings.NewReader(sb.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "Profit (JPY)", records[0][7])
	require.Equal(t, []string{
		"ord-1", "スニーカー", "黒", "26.5",
		"50", "3000", "2150", "850",
		"2026-03-15T00:00:00Z", "2026-03-20T00:00:00Z",
	}, records[1])
}

func TestWriteOrdersCSVEmpty(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, WriteOrdersCSV(&sb, nil))
	require.Equal(t, 1, strings.Count(sb.String(), "\n"))
}
