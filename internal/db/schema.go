package db

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"
)

var tableDDL = []struct {
	name string
	ddl  string
}{
	{"formularios_contato", `
		CREATE TABLE IF NOT EXISTS formularios_contato (
			id CHAR(36) NOT NULL PRIMARY KEY,
			nome_completo VARCHAR(255) NOT NULL,
			cpf VARCHAR(20) NOT NULL,
			telefone VARCHAR(30) NOT NULL,
			endereco VARCHAR(255) NOT NULL,
			endereco_evento VARCHAR(255) NOT NULL,
			data_evento DATE NOT NULL,
			horario TIME NOT NULL,
			quantidade_adultos INT NOT NULL DEFAULT 0,
			quantidade_criancas INT NULL DEFAULT 0,
			observacoes TEXT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'pendente',
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			KEY idx_formularios_status (status),
			KEY idx_formularios_data (data_evento)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
	{"configuracoes", `
		CREATE TABLE IF NOT EXISTS configuracoes (
			chave VARCHAR(100) NOT NULL PRIMARY KEY,
			valor VARCHAR(255) NULL,
			ativo TINYINT(1) NOT NULL DEFAULT 1,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
	{"pizzas", `
		CREATE TABLE IF NOT EXISTS pizzas (
			id CHAR(36) NOT NULL PRIMARY KEY,
			nome VARCHAR(120) NOT NULL,
			ingredientes TEXT NULL,
			imagem_url VARCHAR(500) NULL,
			ativo TINYINT(1) NOT NULL DEFAULT 1,
			ordem INT NOT NULL DEFAULT 0,
			tipo VARCHAR(20) NOT NULL DEFAULT 'salgada'
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
	{"contratos", `
		CREATE TABLE IF NOT EXISTS contratos (
			id CHAR(36) NOT NULL PRIMARY KEY,
			tipo VARCHAR(20) NOT NULL DEFAULT 'contrato',
			formulario_id CHAR(36) NULL,
			nome_cliente VARCHAR(255) NOT NULL,
			data_evento DATE NOT NULL,
			horario TIME NOT NULL,
			endereco_evento VARCHAR(255) NOT NULL,
			quantidade_adultos INT NOT NULL,
			quantidade_criancas INT NULL DEFAULT 0,
			valor_total DECIMAL(10,2) NOT NULL,
			observacoes TEXT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			KEY idx_contratos_formulario (formulario_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
	{"admin_users", `
		CREATE TABLE IF NOT EXISTS admin_users (
			id CHAR(36) NOT NULL PRIMARY KEY,
			nome VARCHAR(120) NULL,
			email VARCHAR(190) NOT NULL UNIQUE,
			password_hash VARCHAR(255) NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
}

// Columns added after the first deployments; older databases get them on boot.
var lateColumns = []struct {
	table, column, ddl string
}{
	{"formularios_contato", "status", `ALTER TABLE formularios_contato ADD COLUMN status VARCHAR(20) NOT NULL DEFAULT 'pendente'`},
	{"pizzas", "tipo", `ALTER TABLE pizzas ADD COLUMN tipo VARCHAR(20) NOT NULL DEFAULT 'salgada'`},
	{"contratos", "tipo", `ALTER TABLE contratos ADD COLUMN tipo VARCHAR(20) NOT NULL DEFAULT 'contrato'`},
}

// EnsureSchema creates missing tables and columns. Safe to run on every boot.
func EnsureSchema(ctx context.Context, conn *sql.DB, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	for _, t := range tableDDL {
		existed := HasTable(ctx, conn, t.name)
		if _, err := conn.ExecContext(ctx, t.ddl); err != nil {
			return fmt.Errorf("ensure table %s: %w", t.name, err)
		}
		if !existed {
			log.Info("table created", zap.String("table", t.name))
		}
	}
	for _, c := range lateColumns {
		if HasColumn(ctx, conn, c.table, c.column) {
			continue
		}
		if _, err := conn.ExecContext(ctx, c.ddl); err != nil {
			return fmt.Errorf("add column %s.%s: %w", c.table, c.column, err)
		}
		log.Info("column added", zap.String("table", c.table), zap.String("column", c.column))
	}
	return nil
}
