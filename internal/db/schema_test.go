package db

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestEnsureSchemaCreatesTablesAndMissingColumns(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer conn.Close()

	for _, tbl := range tableDDL {
		mock.ExpectQuery("information_schema\\.tables").WithArgs(tbl.name).
			WillReturnRows(sqlmock.NewRows([]string{"table_name"}))
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS " + tbl.name).
			WillReturnResult(sqlmock.NewResult(0, 0))
	}
	// first late column already present, the others missing
	for i, c := range lateColumns {
		rows := sqlmock.NewRows([]string{"column_name"})
		if i == 0 {
			rows.AddRow(c.column)
		}
		mock.ExpectQuery("information_schema\\.columns").WithArgs(c.table, c.column).WillReturnRows(rows)
		if i > 0 {
			mock.ExpectExec("ALTER TABLE " + c.table + " ADD COLUMN " + c.column).
				WillReturnResult(sqlmock.NewResult(0, 0))
		}
	}

	if err := EnsureSchema(context.Background(), conn, nil); err != nil {
		t.Fatalf("EnsureSchema error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestHasTable(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer conn.Close()

	mock.ExpectQuery("information_schema\\.tables").WithArgs("pizzas").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("pizzas"))
	if !HasTable(context.Background(), conn, "pizzas") {
		t.Fatalf("expected table to exist")
	}
}
