package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/zaikoban/zaikoban/internal/pricing"
)

// DefaultSettings seeds the singleton on first boot.
var DefaultSettings = pricing.Settings{
	ExchangeRate:          20,
	InternationalShipping: 1000,
	DomesticShipping:      1000,
	TargetProfit:          0,
	PlatformFeeRate:       0.10,
}

// EnsureSettings inserts the default settings row if none exists yet.
func (r *Repository) EnsureSettings(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO settings (
			id,
			exchange_rate,
			international_shipping,
			domestic_shipping,
			target_profit,
			platform_fee_rate
		) VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		DefaultSettings.ExchangeRate,
		DefaultSettings.InternationalShipping,
		DefaultSettings.DomesticShipping,
		DefaultSettings.TargetProfit,
		DefaultSettings.PlatformFeeRate,
	)
	if err != nil {
		return fmt.Errorf("insert default settings: %w", err)
	}
	return nil
}

// GetSettings reads the settings singleton.
func (r *Repository) GetSettings(ctx context.Context) (pricing.Settings, error) {
	var s pricing.Settings
	err := r.db.GetContext(ctx, &s, `
		SELECT exchange_rate, international_shipping, domestic_shipping, target_profit, platform_fee_rate
		FROM settings
		WHERE id = 1
	`)
	if errors.Is(err, sql.ErrNoRows) {
		return pricing.Settings{}, fmt.Errorf("settings singleton not found")
	}
	if err != nil {
		return pricing.Settings{}, fmt.Errorf("query settings: %w", err)
	}
	return s, nil
}

// SaveSettings upserts the settings singleton. Validation happens at the
// handler boundary before this is called.
func (r *Repository) SaveSettings(ctx context.Context, s pricing.Settings) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO settings (
			id,
			exchange_rate,
			international_shipping,
			domestic_shipping,
			target_profit,
			platform_fee_rate,
			updated_at
		) VALUES (1, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			exchange_rate = excluded.exchange_rate,
			international_shipping = excluded.international_shipping,
			domestic_shipping = excluded.domestic_shipping,
			target_profit = excluded.target_profit,
			platform_fee_rate = excluded.platform_fee_rate,
			updated_at = CURRENT_TIMESTAMP
	`,
		s.ExchangeRate,
		s.InternationalShipping,
		s.DomesticShipping,
		s.TargetProfit,
		s.PlatformFeeRate,
	)
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
