package config

import (
	"errors"
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TELEGRAM_API_TOKEN", "token")
	t.Setenv("DATABASE_URL", "postgres://localhost/vocab")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Env != "local" {
		t.Errorf("expected env local, got %q", cfg.Env)
	}
	if cfg.TelegramAPIToken != "token" {
		t.Errorf("unexpected token %q", cfg.TelegramAPIToken)
	}
	if dsn, err := cfg.DB.DSN(); err != nil || dsn != "postgres://localhost/vocab" {
		t.Errorf("unexpected dsn %q, %v", dsn, err)
	}
	if cfg.DB.MaxConnections != 20 {
		t.Errorf("expected 20 connections, got %d", cfg.DB.MaxConnections)
	}
	if cfg.DB.MaxConnLifetime != 30*time.Second {
		t.Errorf("expected 30s lifetime, got %v", cfg.DB.MaxConnLifetime)
	}
	if cfg.Matching.Choices != 4 {
		t.Errorf("expected 4 choices, got %d", cfg.Matching.Choices)
	}
	if cfg.Matching.Language != "en" {
		t.Errorf("expected language en, got %q", cfg.Matching.Language)
	}
	if cfg.Matching.QuestionTTL != time.Hour {
		t.Errorf("expected 1h question ttl, got %v", cfg.Matching.QuestionTTL)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("MATCHING_CHOICES", "6")
	t.Setenv("MATCHING_LANGUAGE", "es")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Env != "production" {
		t.Errorf("expected env production, got %q", cfg.Env)
	}
	if cfg.Matching.Choices != 6 {
		t.Errorf("expected 6 choices, got %d", cfg.Matching.Choices)
	}
	if cfg.Matching.Language != "es" {
		t.Errorf("expected language es, got %q", cfg.Matching.Language)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr error
	}{
		{
			name:    "missing token",
			env:     map[string]string{"TELEGRAM_API_TOKEN": "", "DATABASE_URL": "postgres://localhost/vocab"},
			wantErr: ErrMissingEnvironmentVariables,
		},
		{
			name:    "missing database url",
			env:     map[string]string{"TELEGRAM_API_TOKEN": "token", "DATABASE_URL": ""},
			wantErr: ErrMissingEnvironmentVariables,
		},
		{
			name: "too few choices",
			env: map[string]string{
				"TELEGRAM_API_TOKEN": "token",
				"DATABASE_URL":       "postgres://localhost/vocab",
				"MATCHING_CHOICES":   "1",
			},
			wantErr: ErrInvalidMatchingChoices,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestDB_DSN(t *testing.T) {
	if _, err := (DB{}).DSN(); !errors.Is(err, ErrMissingEnvironmentVariables) {
		t.Errorf("expected ErrMissingEnvironmentVariables, got %v", err)
	}
}
