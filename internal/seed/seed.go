package seed

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/zaikoban/zaikoban/internal/store"
)

const defaultStoreName = "メイン店舗"

// Config contains the values required by startup seed.
type Config struct {
	AdminEmail    string
	AdminPassword string
}

// Stats contains seed operation counters.
type Stats struct {
	Inserts int
}

// Run executes the startup seed in an idempotent way: the admin user, the
// pricing settings singleton, and a default store to put items in.
func Run(database *sqlx.DB, cfg Config) (Stats, error) {
	tx, err := database.Beginx()
	if err != nil {
		return Stats{}, fmt.Errorf("begin seed transaction: %w", err)
	}

	stats := Stats{}

	if err := seedAdmin(tx, cfg.AdminEmail, cfg.AdminPassword, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}
	if err := ensureSettings(tx, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}
	if err := ensureDefaultStore(tx, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}

	if err := tx.Commit(); err != nil {
		return Stats{}, fmt.Errorf("commit seed transaction: %w", err)
	}

	return stats, nil
}

func seedAdmin(tx *sqlx.Tx, email, password string, stats *Stats) error {
	if email == "" || password == "" {
		return nil
	}

	var exists bool
	if err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM users WHERE email = ? LIMIT 1)`, email).Scan(&exists); err != nil {
		return fmt.Errorf("check admin user existence: %w", err)
	}
	if exists {
		return nil
	}

	sum := sha256.Sum256([]byte(password))
	if _, err := tx.Exec(`INSERT INTO users (email, password_hash) VALUES (?, ?)`, email, hex.EncodeToString(sum[:])); err != nil {
		return fmt.Errorf("insert admin user: %w", err)
	}
	stats.Inserts++
	return nil
}

func ensureSettings(tx *sqlx.Tx, stats *Stats) error {
	var exists bool
	if err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM settings WHERE id = 1)`).Scan(&exists); err != nil {
		return fmt.Errorf("check settings existence: %w", err)
	}
	if exists {
		return nil
	}

	s := store.DefaultSettings
	if _, err := tx.Exec(`
		INSERT INTO settings (
			id,
			exchange_rate,
			international_shipping,
			domestic_shipping,
			target_profit,
			platform_fee_rate
		) VALUES (1, ?, ?, ?, ?, ?)
	`, s.ExchangeRate, s.InternationalShipping, s.DomesticShipping, s.TargetProfit, s.PlatformFeeRate); err != nil {
		return fmt.Errorf("insert settings singleton: %w", err)
	}
	stats.Inserts++
	return nil
}

func ensureDefaultStore(tx *sqlx.Tx, stats *Stats) error {
	var count int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM stores`).Scan(&count); err != nil {
		return fmt.Errorf("count stores: %w", err)
	}
	if count > 0 {
		return nil
	}

	if _, err := tx.Exec(`
		INSERT INTO stores (id, name, created_at)
		VALUES (?, ?, datetime('now'))
	`, store.NewID(), defaultStoreName); err != nil {
		return fmt.Errorf("insert default store: %w", err)
	}
	stats.Inserts++
	return nil
}
