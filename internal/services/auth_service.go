package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pizzahouse/internal/domain"
	"pizzahouse/internal/domain/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var errBadCredentials = domain.UnauthorizedError{Msg: "e-mail ou senha incorretos"}

// AuthService signs in admins and verifies their bearer tokens.
type AuthService struct {
	Users  AdminUserStore
	Secret []byte
	Expiry time.Duration
	Log    *zap.Logger
	Now    func() time.Time
}

type LoginResult struct {
	Token     string             `json:"token"`
	ExpiresAt time.Time          `json:"expires_at"`
	User      domain.AuthContext `json:"user"`
}

func (s AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s AuthService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return LoginResult{}, domain.ValidationError{Msg: "e-mail e senha são obrigatórios"}
	}
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if domain.IsNotFound(err) {
			return LoginResult{}, errBadCredentials
		}
		return LoginResult{}, domain.InternalError{Msg: "falha ao consultar usuário", Err: err}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return LoginResult{}, errBadCredentials
	}

	auth := domain.AuthContext{UserID: u.ID, Email: u.Email, Name: u.Name, Role: domain.RoleAdmin}
	token, exp, err := s.issue(auth)
	if err != nil {
		return LoginResult{}, domain.InternalError{Msg: "falha ao gerar token", Err: err}
	}
	return LoginResult{Token: token, ExpiresAt: exp, User: auth}, nil
}

func (s AuthService) issue(a domain.AuthContext) (string, time.Time, error) {
	expiry := s.Expiry
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}
	exp := s.now().Add(expiry)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": a.UserID,
		"email":   a.Email,
		"name":    a.Name,
		"role":    string(a.Role),
		"exp":     exp.Unix(),
	})
	signed, err := token.SignedString(s.Secret)
	return signed, exp, err
}

// ParseToken validates an HS256 token and returns the admin it was issued to.
func (s AuthService) ParseToken(raw string) (domain.AuthContext, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return s.Secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return domain.AuthContext{}, domain.UnauthorizedError{Msg: "token inválido", Err: err}
	}

	str := func(k string) string {
		v, _ := claims[k].(string)
		return v
	}
	auth := domain.AuthContext{
		UserID: str("user_id"),
		Email:  str("email"),
		Name:   str("name"),
		Role:   domain.Role(str("role")),
	}
	if !auth.IsAdmin() {
		return domain.AuthContext{}, domain.UnauthorizedError{Msg: "acesso restrito"}
	}
	return auth, nil
}

// SeedAdmin creates the first admin when the table is empty. Returns true when a user was created.
func (s AuthService) SeedAdmin(ctx context.Context, email, password, name string) (bool, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return false, nil
	}
	n, err := s.Users.Count(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("hash admin password: %w", err)
	}
	u := models.AdminUser{ID: uuid.NewString(), Name: name, Email: email, PasswordHash: string(hash)}
	if err := s.Users.Create(ctx, u); err != nil {
		return false, err
	}
	if s.Log != nil {
		s.Log.Info("admin user seeded", zap.String("email", u.Email))
	}
	return true, nil
}

// ErrMissingToken is returned by BearerToken for requests without credentials.
var ErrMissingToken = errors.New("missing bearer token")

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) (string, error) {
	header = strings.TrimSpace(header)
	if len(header) < 7 || !strings.EqualFold(header[:7], "bearer ") {
		return "", ErrMissingToken
	}
	tok := strings.TrimSpace(header[7:])
	if tok == "" {
		return "", ErrMissingToken
	}
	return tok, nil
}
