package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

type Env struct {
	AppAddr string
	GinMode string
	Debug   bool
	LogPath string

	DBHost string
	DBPort string
	DBUser string
	DBPass string
	DBName string

	JWTSecret      string
	JWTExpiryHours int

	CORSAllowedOrigins []string

	AdminEmail    string
	AdminPassword string
	AdminName     string
}

// LoadEnv reads an optional .env file and then the process environment,
// which always wins.
func LoadEnv() (Env, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")

	v.SetDefault("APP_ADDR", ":8080")
	v.SetDefault("GIN_MODE", "")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("DB_HOST", "127.0.0.1")
	v.SetDefault("DB_PORT", "3306")
	v.SetDefault("DB_USER", "root")
	v.SetDefault("DB_PASS", "")
	v.SetDefault("DB_NAME", "pizzahouse")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_EXPIRY_HOURS", 24)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("ADMIN_EMAIL", "")
	v.SetDefault("ADMIN_PASSWORD", "")
	v.SetDefault("ADMIN_NAME", "Administrador")

	// SetConfigFile skips viper's search path, so a missing .env surfaces as fs.ErrNotExist.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Env{}, err
		}
	}
	v.AutomaticEnv()

	env := Env{
		AppAddr: strings.TrimSpace(v.GetString("APP_ADDR")),
		GinMode: strings.TrimSpace(v.GetString("GIN_MODE")),
		Debug:   v.GetBool("DEBUG"),
		LogPath: v.GetString("LOG_PATH"),

		DBHost: v.GetString("DB_HOST"),
		DBPort: v.GetString("DB_PORT"),
		DBUser: v.GetString("DB_USER"),
		DBPass: v.GetString("DB_PASS"),
		DBName: v.GetString("DB_NAME"),

		JWTSecret:      v.GetString("JWT_SECRET"),
		JWTExpiryHours: v.GetInt("JWT_EXPIRY_HOURS"),

		CORSAllowedOrigins: splitOrigins(v.GetString("CORS_ALLOWED_ORIGINS")),

		AdminEmail:    strings.TrimSpace(v.GetString("ADMIN_EMAIL")),
		AdminPassword: v.GetString("ADMIN_PASSWORD"),
		AdminName:     strings.TrimSpace(v.GetString("ADMIN_NAME")),
	}
	if env.AppAddr == "" {
		env.AppAddr = ":8080"
	}
	if env.JWTExpiryHours <= 0 {
		env.JWTExpiryHours = 24
	}
	if strings.TrimSpace(env.JWTSecret) == "" {
		return env, errors.New("JWT_SECRET is required")
	}
	return env, nil
}

func splitOrigins(raw string) []string {
	out := []string{}
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		out = append(out, "*")
	}
	return out
}
