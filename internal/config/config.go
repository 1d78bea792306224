// Package config содержит логику чтения конфигурации админ-панели SaveBite.
package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/mmeshcher/savebite-admin/internal/session"
)

// DefaultAdminPassword — пароль оператора по умолчанию для демо-стенда.
const DefaultAdminPassword = "admin123"

// Config содержит параметры конфигурации админ-панели SaveBite.
type Config struct {
	RunAddress            string `env:"RUN_ADDRESS"`
	SessionStoragePath    string `env:"SESSION_STORAGE_PATH"`
	IdentitySystemAddress string `env:"IDENTITY_SYSTEM_ADDRESS"`
	AdminPassword         string `env:"ADMIN_PASSWORD"`
}

// Parse считывает конфигурацию из флагов командной строки и переменных окружения.
func Parse() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	envRunAddress := cfg.RunAddress
	envStoragePath := cfg.SessionStoragePath
	envIdentityAddress := cfg.IdentitySystemAddress
	envAdminPassword := cfg.AdminPassword

	flag.StringVar(&cfg.RunAddress, "a", "localhost:8080", "address and port for HTTP server")
	flag.StringVar(&cfg.SessionStoragePath, "s", session.DefaultStoragePath, "path to session storage file")
	flag.StringVar(&cfg.IdentitySystemAddress, "i", "", "identity system address")
	flag.StringVar(&cfg.AdminPassword, "p", DefaultAdminPassword, "admin password for local verification")

	flag.Parse()

	if envRunAddress != "" {
		cfg.RunAddress = envRunAddress
	}
	if envStoragePath != "" {
		cfg.SessionStoragePath = envStoragePath
	}
	if envIdentityAddress != "" {
		cfg.IdentitySystemAddress = envIdentityAddress
	}
	if envAdminPassword != "" {
		cfg.AdminPassword = envAdminPassword
	}

	if cfg.RunAddress == "" {
		cfg.RunAddress = "localhost:8080"
	}

	return cfg, nil
}
