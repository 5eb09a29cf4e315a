package repositories

import (
	"context"
	"database/sql"

	intconfig "pizzahouse/internal/config"
	"pizzahouse/internal/domain/models"
)

const documentColumns = `id, tipo, COALESCE(formulario_id, ''), nome_cliente,
	COALESCE(DATE_FORMAT(data_evento, '%Y-%m-%d'), ''), COALESCE(TIME_FORMAT(horario, '%H:%i'), ''),
	COALESCE(endereco_evento, ''), quantidade_adultos, COALESCE(quantidade_criancas, 0),
	valor_total, COALESCE(observacoes, ''), created_at`

// DocumentRepository keeps the history of issued contracts and receipts.
type DocumentRepository struct {
	DB *sql.DB
}

func (r DocumentRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r DocumentRepository) Create(ctx context.Context, d models.DocumentRecord) error {
	_, err := r.db().ExecContext(ctx, `
		INSERT INTO contratos (
			id, tipo, formulario_id, nome_cliente, data_evento, horario, endereco_evento,
			quantidade_adultos, quantidade_criancas, valor_total, observacoes, created_at
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`,
		d.ID, string(d.Kind), nullIfEmpty(d.BookingID), d.ClientName, d.EventDate, d.EventTime, d.EventAddress,
		d.Adults, d.Children, d.Total, nullIfEmpty(d.Notes), d.CreatedAt,
	)
	return err
}

// List returns the newest records first, optionally for one booking.
func (r DocumentRepository) List(ctx context.Context, bookingID string, limit int) ([]models.DocumentRecord, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	q := `SELECT ` + documentColumns + ` FROM contratos`
	args := []any{}
	if bookingID != "" {
		q += ` WHERE formulario_id=?`
		args = append(args, bookingID)
	}
	q += ` ORDER BY created_at DESC LIMIT ?`
	args = append(args, limit)

	rows, err := r.db().QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.DocumentRecord{}
	for rows.Next() {
		var d models.DocumentRecord
		var kind string
		if err := rows.Scan(
			&d.ID, &kind, &d.BookingID, &d.ClientName,
			&d.EventDate, &d.EventTime, &d.EventAddress,
			&d.Adults, &d.Children, &d.Total, &d.Notes, &d.CreatedAt,
		); err != nil {
			return nil, err
		}
		d.Kind = models.DocumentKind(kind)
		out = append(out, d)
	}
	return out, rows.Err()
}
