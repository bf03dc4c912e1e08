package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func standardSettings() Settings {
	return Settings{
		ExchangeRate:          23,
		InternationalShipping: 1000,
		DomesticShipping:      1000,
		TargetProfit:          6000,
		PlatformFeeRate:       0.22,
	}
}

func TestSellingPrice_GrossesUpCostAndProfit(t *testing.T) {
	// 100 CNY at rate 23 -> 2300, plus 1000+1000+6000 -> 10300,
	// divided by 0.78 -> 13205.128..., rounded up.
	require.Equal(t, 13206, SellingPrice(100, standardSettings()))
}

func TestSellingPrice_ZeroCostStillCoversOverheads(t *testing.T) {
	s := standardSettings()
	want := int(math.Ceil(float64(s.InternationalShipping+s.DomesticShipping+s.TargetProfit) / (1 - s.PlatformFeeRate)))
	require.Equal(t, want, SellingPrice(0, s))
}

func TestSellingPrice_ZeroFeeRateIsPlainTotal(t *testing.T) {
	s := standardSettings()
	s.PlatformFeeRate = 0
	require.Equal(t, 2300+1000+1000+6000, SellingPrice(100, s))
}

func TestSellingPrice_MonotonicInCostAndRate(t *testing.T) {
	s := standardSettings()
	prev := SellingPrice(0, s)
	for cost := 10.0; cost <= 500; cost += 10 {
		price := SellingPrice(cost, s)
		require.Greater(t, price, prev, "cost %.0f", cost)
		prev = price
	}

	low := SellingPrice(100, s)
	s.ExchangeRate = 25
	require.Greater(t, SellingPrice(100, s), low)
}

func TestSellingPrice_NeverBelowConvertedCost(t *testing.T) {
	s := standardSettings()
	for _, cost := range []float64{0, 0.5, 1, 9.99, 42, 100, 777.77, 5000} {
		require.GreaterOrEqual(t, float64(SellingPrice(cost, s)), cost*s.ExchangeRate, "cost %v", cost)
	}
}

func TestConvertedWithShipping(t *testing.T) {
	require.Equal(t, 1200, ConvertedWithShipping(10, 20, DefaultOrderShipping))
	// 50 CNY at rate 23 -> 1150, plus the flat 1000 JPY order shipping.
	require.Equal(t, 2150, ConvertedWithShipping(50, 23, DefaultOrderShipping))
	require.Equal(t, 1650, ConvertedWithShipping(50, 23, 500))
	// Fractional conversion rounds up.
	require.Equal(t, 1024, ConvertedWithShipping(1.01, 23, 1000))
}

func TestProfit(t *testing.T) {
	require.Equal(t, 850, Profit(3000, 2150))
	require.Equal(t, -150, Profit(2000, 2150))
	require.Equal(t, 0, Profit(2150, 2150))
}
