package repositories

import (
	"context"
	"testing"

	"pizzahouse/internal/domain"
	"pizzahouse/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

var pizzaRowColumns = []string{"id", "nome", "ingredientes", "imagem_url", "ativo", "ordem", "tipo"}

func TestPizzaListOnlyActive(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectQuery("FROM pizzas WHERE ativo = 1 ORDER BY tipo DESC, ordem ASC").
		WillReturnRows(sqlmock.NewRows(pizzaRowColumns).
			AddRow("p1", "Calabresa", "calabresa, cebola", "", true, 1, "salgada").
			AddRow("p2", "Brigadeiro", "chocolate", "https://img.test/b.jpg", true, 1, "doce"))

	list, err := PizzaRepository{DB: db}.List(context.Background(), true)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(list) != 2 || list[1].Kind != models.PizzaDoce || !list[0].Active {
		t.Fatalf("unexpected menu %+v", list)
	}
}

func TestPizzaUpdateAndDelete(t *testing.T) {
	db, mock := newMock(t)

	active := false
	img := " "
	mock.ExpectExec("UPDATE pizzas SET imagem_url=\\?, ativo=\\? WHERE id=\\?").
		WithArgs(nil, false, "p1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM pizzas WHERE id=\\?").WithArgs("p9").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := PizzaRepository{DB: db}
	if err := repo.Update(context.Background(), "p1", models.PizzaUpdate{ImageURL: &img, Active: &active}); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if err := repo.Delete(context.Background(), "p9"); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAdminUserGetByEmailLowercases(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectQuery("FROM admin_users WHERE LOWER\\(email\\)=\\?").
		WithArgs("julio@pizzahouse.test").
		WillReturnRows(sqlmock.NewRows([]string{"id", "nome", "email", "password_hash"}).
			AddRow("u1", "Júlio", "julio@pizzahouse.test", "$2a$10$hash"))

	u, err := AdminUserRepository{DB: db}.GetByEmail(context.Background(), " Julio@PizzaHouse.test ")
	if err != nil {
		t.Fatalf("GetByEmail error: %v", err)
	}
	if u.ID != "u1" || u.PasswordHash == "" {
		t.Fatalf("unexpected user %+v", u)
	}
}
