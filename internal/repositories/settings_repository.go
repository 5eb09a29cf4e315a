package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	intconfig "pizzahouse/internal/config"
	"pizzahouse/internal/domain/models"
)

const settingsTable = "configuracoes"

// SettingsRepository reads/writes the chave/valor configuration table.
type SettingsRepository struct {
	DB *sql.DB
}

func (r SettingsRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Active returns key -> value for every active setting.
func (r SettingsRepository) Active(ctx context.Context) (map[string]string, error) {
	rows, err := r.db().QueryContext(ctx, `SELECT chave, COALESCE(valor, '') FROM `+settingsTable+` WHERE ativo = 1`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]string{}
	for rows.Next() {
		var s models.Setting
		if err := rows.Scan(&s.Key, &s.Value); err != nil {
			return nil, err
		}
		out[s.Key] = s.Value
	}
	return out, rows.Err()
}

// UpsertMany writes all pairs in one transaction and marks them active.
func (r SettingsRepository) UpsertMany(ctx context.Context, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tx, err := r.db().BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, k := range keys {
		if strings.TrimSpace(k) == "" {
			return fmt.Errorf("chave vazia")
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO `+settingsTable+` (chave, valor, ativo) VALUES (?, ?, 1)
			ON DUPLICATE KEY UPDATE valor=VALUES(valor), ativo=1`,
			k, values[k],
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r SettingsRepository) Upsert(ctx context.Context, key, value string) error {
	return r.UpsertMany(ctx, map[string]string{key: value})
}
