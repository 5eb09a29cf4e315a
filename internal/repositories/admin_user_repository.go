package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	intconfig "pizzahouse/internal/config"
	"pizzahouse/internal/domain"
	"pizzahouse/internal/domain/models"
)

// AdminUserRepository reads admin_users for login.
type AdminUserRepository struct {
	DB *sql.DB
}

func (r AdminUserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r AdminUserRepository) GetByEmail(ctx context.Context, email string) (models.AdminUser, error) {
	var u models.AdminUser
	err := r.db().QueryRowContext(ctx,
		`SELECT id, COALESCE(nome, ''), email, password_hash FROM admin_users WHERE LOWER(email)=? LIMIT 1`,
		strings.ToLower(strings.TrimSpace(email)),
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.AdminUser{}, domain.NotFoundError{Resource: "usuário", Err: err}
		}
		return models.AdminUser{}, err
	}
	return u, nil
}

func (r AdminUserRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db().QueryRowContext(ctx, `SELECT COUNT(*) FROM admin_users`).Scan(&n)
	return n, err
}

func (r AdminUserRepository) Create(ctx context.Context, u models.AdminUser) error {
	_, err := r.db().ExecContext(ctx,
		`INSERT INTO admin_users (id, nome, email, password_hash) VALUES (?,?,?,?)`,
		u.ID, u.Name, strings.ToLower(strings.TrimSpace(u.Email)), u.PasswordHash,
	)
	return err
}
