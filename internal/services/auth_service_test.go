package services

import (
	"context"
	"testing"
	"time"

	"pizzahouse/internal/domain"
	"pizzahouse/internal/domain/models"
)

type memUsers struct {
	users []models.AdminUser
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (models.AdminUser, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.AdminUser{}, domain.NotFoundError{Resource: "usuário"}
}

func (m *memUsers) Count(context.Context) (int, error) { return len(m.users), nil }

func (m *memUsers) Create(_ context.Context, u models.AdminUser) error {
	m.users = append(m.users, u)
	return nil
}

func TestAuthServiceSeedLoginAndParse(t *testing.T) {
	users := &memUsers{}
	svc := AuthService{Users: users, Secret: []byte("test-secret"), Expiry: time.Hour}
	ctx := context.Background()

	created, err := svc.SeedAdmin(ctx, "julio@pizzahouse.test", "pizza123", "Júlio")
	if err != nil || !created {
		t.Fatalf("SeedAdmin = %v, %v", created, err)
	}
	again, err := svc.SeedAdmin(ctx, "other@pizzahouse.test", "x", "Other")
	if err != nil || again {
		t.Fatalf("second seed should be skipped, got %v %v", again, err)
	}

	if _, err := svc.Login(ctx, "julio@pizzahouse.test", "wrong"); !domain.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if _, err := svc.Login(ctx, "nobody@pizzahouse.test", "pizza123"); !domain.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized for unknown user, got %v", err)
	}

	res, err := svc.Login(ctx, "julio@pizzahouse.test", "pizza123")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	auth, err := svc.ParseToken(res.Token)
	if err != nil {
		t.Fatalf("ParseToken error: %v", err)
	}
	if !auth.IsAdmin() || auth.Email != "julio@pizzahouse.test" || auth.Name != "Júlio" {
		t.Fatalf("unexpected auth context %+v", auth)
	}
}

func TestAuthServiceRejectsExpiredAndForeignTokens(t *testing.T) {
	issuedAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	svc := AuthService{Secret: []byte("a"), Expiry: time.Hour, Now: func() time.Time { return issuedAt }}
	tok, _, err := svc.issue(domain.AuthContext{UserID: "u1", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	later := svc
	later.Now = func() time.Time { return issuedAt.Add(2 * time.Hour) }
	if _, err := later.ParseToken(tok); !domain.IsUnauthorized(err) {
		t.Fatalf("expected expired token to fail, got %v", err)
	}

	other := AuthService{Secret: []byte("b"), Now: svc.Now}
	if _, err := other.ParseToken(tok); !domain.IsUnauthorized(err) {
		t.Fatalf("expected foreign signature to fail, got %v", err)
	}
}

func TestBearerToken(t *testing.T) {
	if tok, err := BearerToken("Bearer abc.def"); err != nil || tok != "abc.def" {
		t.Fatalf("got %q %v", tok, err)
	}
	for _, h := range []string{"", "Bearer ", "Basic abc"} {
		if _, err := BearerToken(h); err == nil {
			t.Fatalf("expected error for %q", h)
		}
	}
}
