package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	JWT       JWTConfig
	Store     StoreConfig
	Database  DatabaseConfig
	Bootstrap BootstrapConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	FrontendURL string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	AccessExpiration  string
	RefreshExpiration string
}

// StoreConfig selects the record-store backend.
type StoreConfig struct {
	Type         string // excel | postgres
	WorkbookPath string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// BootstrapConfig is the admin account ensured at startup.
type BootstrapConfig struct {
	AdminEmail    string
	AdminName     string
	AdminPassword string
}

func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	config := &Config{}

	port, err := strconv.Atoi(getEnv("APP_PORT", "5000"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        port,
		Env:         getEnv("APP_ENV", "development"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET", ""),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION", "1h"),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION", "168h"),
	}
	if config.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	config.Store = StoreConfig{
		Type:         getEnv("STORE_TYPE", "excel"),
		WorkbookPath: getEnv("STORE_WORKBOOK_PATH", "./data/attendance-data.xlsx"),
	}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "workholic"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	config.Bootstrap = BootstrapConfig{
		AdminEmail:    getEnv("BOOTSTRAP_ADMIN_EMAIL", "admin@workholic.in"),
		AdminName:     getEnv("BOOTSTRAP_ADMIN_NAME", "Admin"),
		AdminPassword: getEnv("BOOTSTRAP_ADMIN_PASSWORD", ""),
	}

	return config, nil
}

func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
