package mysql

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"hotel_console/internal/adapters/observability"
)

// KV stores console session state in a MySQL table, for operators who
// already run the platform database next to the console.
type KV struct{ db *sql.DB }

func New(db *sql.DB) *KV { return &KV{db: db} }

// EnsureSchema creates the console_state table when missing.
func (r *KV) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, createStateTableSQL)
	return err
}

func (r *KV) Get(ctx context.Context, name string) (string, bool, error) {
	var v string
	if err := r.db.QueryRowContext(ctx, getStateSQL, name).Scan(&v); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			observability.ObserveKV("mysql", "miss")
			return "", false, nil
		}
		return "", false, err
	}
	observability.ObserveKV("mysql", "hit")
	return v, true, nil
}

func (r *KV) Set(ctx context.Context, name, value string) error {
	observability.ObserveKV("mysql", "set")
	_, err := r.db.ExecContext(ctx, upsertStateSQL, name, value)
	return err
}

func (r *KV) Del(ctx context.Context, names ...string) error {
	if len(names) == 0 {
		return nil
	}
	args := make([]any, len(names))
	for i, n := range names {
		args[i] = n
	}
	q := deleteStatePrefix + strings.TrimSuffix(strings.Repeat("?,", len(names)), ",") + ")"
	observability.ObserveKV("mysql", "del")
	_, err := r.db.ExecContext(ctx, q, args...)
	return err
}
