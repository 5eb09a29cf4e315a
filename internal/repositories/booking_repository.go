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

const bookingTable = "formularios_contato"

const bookingColumns = `id,
	COALESCE(nome_completo, ''), COALESCE(cpf, ''), COALESCE(telefone, ''),
	COALESCE(endereco, ''), COALESCE(endereco_evento, ''),
	COALESCE(DATE_FORMAT(data_evento, '%Y-%m-%d'), ''), COALESCE(TIME_FORMAT(horario, '%H:%i'), ''),
	COALESCE(quantidade_adultos, 0), COALESCE(quantidade_criancas, 0),
	COALESCE(observacoes, ''), COALESCE(status, ''), created_at`

// BookingRepository stores quote requests in formularios_contato.
type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (models.Booking, error) {
	var b models.Booking
	var status string
	err := row.Scan(
		&b.ID,
		&b.FullName,
		&b.CPF,
		&b.Phone,
		&b.Address,
		&b.EventAddress,
		&b.EventDate,
		&b.EventTime,
		&b.Adults,
		&b.Children,
		&b.Notes,
		&status,
		&b.CreatedAt,
	)
	b.Status = models.BookingStatus(status)
	return b, err
}

// Create inserts a booking; ID, Status and CreatedAt must already be set.
func (r BookingRepository) Create(ctx context.Context, b models.Booking) error {
	_, err := r.db().ExecContext(ctx, `
		INSERT INTO `+bookingTable+` (
			id, nome_completo, cpf, telefone, endereco, endereco_evento,
			data_evento, horario, quantidade_adultos, quantidade_criancas,
			observacoes, status, created_at
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		b.ID, b.FullName, b.CPF, b.Phone, b.Address, b.EventAddress,
		b.EventDate, b.EventTime, b.Adults, b.Children,
		nullIfEmpty(b.Notes), string(b.Status), b.CreatedAt,
	)
	return err
}

func (r BookingRepository) GetByID(ctx context.Context, id string) (models.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return models.Booking{}, domain.ValidationError{Field: "id", Msg: "id inválido"}
	}
	row := r.db().QueryRowContext(ctx, `SELECT `+bookingColumns+` FROM `+bookingTable+` WHERE id=? LIMIT 1`, id)
	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Booking{}, domain.NotFoundError{Resource: "orçamento", Err: err}
		}
		return models.Booking{}, err
	}
	return b, nil
}

// List returns bookings matching the filter ordered by event date.
func (r BookingRepository) List(ctx context.Context, f models.BookingFilter) ([]models.Booking, error) {
	where, args := bookingWhere(f)
	rows, err := r.db().QueryContext(ctx,
		`SELECT `+bookingColumns+` FROM `+bookingTable+where+` ORDER BY data_evento ASC, horario ASC`,
		args...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// Update performs PATCH-style updates based on key presence.
func (r BookingRepository) Update(ctx context.Context, id string, upd models.BookingUpdate) error {
	sets := []string{}
	args := []any{}
	setStr := func(col string, v *string) {
		if v != nil {
			sets = append(sets, col+"=?")
			args = append(args, strings.TrimSpace(*v))
		}
	}
	setInt := func(col string, v *int) {
		if v != nil {
			sets = append(sets, col+"=?")
			args = append(args, *v)
		}
	}

	setStr("nome_completo", upd.FullName)
	setStr("cpf", upd.CPF)
	setStr("telefone", upd.Phone)
	setStr("endereco", upd.Address)
	setStr("endereco_evento", upd.EventAddress)
	setStr("data_evento", upd.EventDate)
	setStr("horario", upd.EventTime)
	setInt("quantidade_adultos", upd.Adults)
	setInt("quantidade_criancas", upd.Children)
	setStr("observacoes", upd.Notes)

	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)
	_, err := r.db().ExecContext(ctx, `UPDATE `+bookingTable+` SET `+strings.Join(sets, ", ")+` WHERE id=?`, args...)
	return err
}

func (r BookingRepository) UpdateStatus(ctx context.Context, id string, status models.BookingStatus) error {
	_, err := r.db().ExecContext(ctx, `UPDATE `+bookingTable+` SET status=? WHERE id=?`, string(status), id)
	return err
}

func (r BookingRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db().ExecContext(ctx, `DELETE FROM `+bookingTable+` WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.NotFoundError{Resource: "orçamento"}
	}
	return nil
}

// CountByStatus aggregates bookings per status, optionally for one event month.
func (r BookingRepository) CountByStatus(ctx context.Context, month string) (models.BookingStats, error) {
	stats := models.BookingStats{Month: month}
	where, args := bookingWhere(models.BookingFilter{Month: month})
	rows, err := r.db().QueryContext(ctx,
		`SELECT COALESCE(status, ''), COUNT(*) FROM `+bookingTable+where+` GROUP BY status`,
		args...,
	)
	if err != nil {
		return stats, err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return stats, err
		}
		stats.Add(models.BookingStatus(status), n)
	}
	return stats, rows.Err()
}

func bookingWhere(f models.BookingFilter) (string, []any) {
	conds := []string{}
	args := []any{}
	if f.Status != "" {
		conds = append(conds, "status=?")
		args = append(args, string(f.Status))
	}
	if m := strings.TrimSpace(f.Month); m != "" {
		conds = append(conds, "DATE_FORMAT(data_evento, '%Y-%m')=?")
		args = append(args, m)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// nullIfEmpty helps store optional strings as NULL.
func nullIfEmpty(s string) any {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}
