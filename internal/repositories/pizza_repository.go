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

const pizzaColumns = `id, nome, COALESCE(ingredientes, ''), COALESCE(imagem_url, ''), ativo, COALESCE(ordem, 0), COALESCE(tipo, 'salgada')`

// PizzaRepository stores the rodízio menu.
type PizzaRepository struct {
	DB *sql.DB
}

func (r PizzaRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func scanPizza(row rowScanner) (models.Pizza, error) {
	var p models.Pizza
	var kind string
	err := row.Scan(&p.ID, &p.Name, &p.Ingredients, &p.ImageURL, &p.Active, &p.Order, &kind)
	p.Kind = models.PizzaKind(kind)
	return p, err
}

// List returns the menu ordered by kind then position. onlyActive hides disabled flavours.
func (r PizzaRepository) List(ctx context.Context, onlyActive bool) ([]models.Pizza, error) {
	q := `SELECT ` + pizzaColumns + ` FROM pizzas`
	if onlyActive {
		q += ` WHERE ativo = 1`
	}
	q += ` ORDER BY tipo DESC, ordem ASC, nome ASC`

	rows, err := r.db().QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Pizza{}
	for rows.Next() {
		p, err := scanPizza(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r PizzaRepository) GetByID(ctx context.Context, id string) (models.Pizza, error) {
	p, err := scanPizza(r.db().QueryRowContext(ctx, `SELECT `+pizzaColumns+` FROM pizzas WHERE id=? LIMIT 1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Pizza{}, domain.NotFoundError{Resource: "pizza", Err: err}
		}
		return models.Pizza{}, err
	}
	return p, nil
}

func (r PizzaRepository) Create(ctx context.Context, p models.Pizza) error {
	_, err := r.db().ExecContext(ctx, `
		INSERT INTO pizzas (id, nome, ingredientes, imagem_url, ativo, ordem, tipo)
		VALUES (?,?,?,?,?,?,?)`,
		p.ID, p.Name, p.Ingredients, nullIfEmpty(p.ImageURL), p.Active, p.Order, string(p.Kind),
	)
	return err
}

// Update performs PATCH-style updates based on key presence.
func (r PizzaRepository) Update(ctx context.Context, id string, upd models.PizzaUpdate) error {
	sets := []string{}
	args := []any{}
	if upd.Name != nil {
		sets = append(sets, "nome=?")
		args = append(args, strings.TrimSpace(*upd.Name))
	}
	if upd.Ingredients != nil {
		sets = append(sets, "ingredientes=?")
		args = append(args, strings.TrimSpace(*upd.Ingredients))
	}
	if upd.ImageURL != nil {
		sets = append(sets, "imagem_url=?")
		args = append(args, nullIfEmpty(*upd.ImageURL))
	}
	if upd.Active != nil {
		sets = append(sets, "ativo=?")
		args = append(args, *upd.Active)
	}
	if upd.Order != nil {
		sets = append(sets, "ordem=?")
		args = append(args, *upd.Order)
	}
	if upd.Kind != nil {
		sets = append(sets, "tipo=?")
		args = append(args, *upd.Kind)
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)
	_, err := r.db().ExecContext(ctx, `UPDATE pizzas SET `+strings.Join(sets, ", ")+` WHERE id=?`, args...)
	return err
}

func (r PizzaRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db().ExecContext(ctx, `DELETE FROM pizzas WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.NotFoundError{Resource: "pizza"}
	}
	return nil
}
