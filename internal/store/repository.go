package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/zaikoban/zaikoban/internal/httpx"
)

// Repository persists stores, their items, and the settings singleton.
type Repository struct {
	db *sqlx.DB
}

func NewRepository(database *sqlx.DB) *Repository {
	return &Repository{db: database}
}

func (r *Repository) CreateStore(ctx context.Context, name string) (Store, error) {
	st := Store{ID: NewID(), Name: name, CreatedAt: nowStamp()}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO stores (id, name, created_at)
		VALUES (?, ?, ?)
	`, st.ID, st.Name, st.CreatedAt)
	if err != nil {
		return Store{}, fmt.Errorf("insert store: %w", err)
	}
	return st, nil
}

func (r *Repository) ListStores(ctx context.Context) ([]Store, error) {
	stores := make([]Store, 0)
	if err := r.db.SelectContext(ctx, &stores, `
		SELECT id, name, created_at
		FROM stores
		ORDER BY created_at, id
	`); err != nil {
		return nil, fmt.Errorf("query stores: %w", err)
	}
	return stores, nil
}

func (r *Repository) GetStore(ctx context.Context, id string) (Store, error) {
	var st Store
	err := r.db.GetContext(ctx, &st, `SELECT id, name, created_at FROM stores WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Store{}, fmt.Errorf("store %q: %w", id, httpx.ErrNotFound)
	}
	if err != nil {
		return Store{}, fmt.Errorf("query store: %w", err)
	}
	return st, nil
}

func (r *Repository) RenameStore(ctx context.Context, id, name string) (Store, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE stores SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		return Store{}, fmt.Errorf("update store: %w", err)
	}
	if affected, err := result.RowsAffected(); err != nil {
		return Store{}, fmt.Errorf("update store: %w", err)
	} else if affected == 0 {
		return Store{}, fmt.Errorf("store %q: %w", id, httpx.ErrNotFound)
	}
	return r.GetStore(ctx, id)
}

// DeleteStore removes a store. Its inventory and order items go with it via
// the cascading foreign keys.
func (r *Repository) DeleteStore(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM stores WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete store: %w", err)
	}
	if affected, err := result.RowsAffected(); err != nil {
		return fmt.Errorf("delete store: %w", err)
	} else if affected == 0 {
		return fmt.Errorf("store %q: %w", id, httpx.ErrNotFound)
	}
	return nil
}
