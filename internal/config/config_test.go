package config

import (
	"errors"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.PoolSize != 200 {
		t.Errorf("PoolSize = %d, want 200", cfg.PoolSize)
	}
	if cfg.DisplayCount != 5 {
		t.Errorf("DisplayCount = %d, want 5", cfg.DisplayCount)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
	if cfg.MaxScore() != 15 {
		t.Errorf("MaxScore = %d, want 15", cfg.MaxScore())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		pool    int
		display int
		wantErr bool
	}{
		{"equal sizes", 5, 5, false},
		{"display below pool", 200, 10, false},
		{"display exceeds pool", 4, 5, true},
		{"zero pool", 0, 0, true},
		{"negative display", 10, -1, true},
		{"zero display", 10, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Config{PoolSize: tt.pool, DisplayCount: tt.display}.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var cfgErr *ConfigurationError
				if !errors.As(err, &cfgErr) {
					t.Fatalf("expected *ConfigurationError, got %T", err)
				}
			}
		})
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("PSYQUIZ_POOL_SIZE", "50")
	t.Setenv("PSYQUIZ_DISPLAY_COUNT", "10")
	t.Setenv("PSYQUIZ_BANK", "/tmp/bank.yaml")
	t.Setenv("PSYQUIZ_LOG_FILE", "/tmp/psyquiz.log")
	t.Setenv("PSYQUIZ_SEED", "1234")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.PoolSize != 50 || cfg.DisplayCount != 10 {
		t.Errorf("sizes = %d/%d, want 50/10", cfg.PoolSize, cfg.DisplayCount)
	}
	if cfg.BankPath != "/tmp/bank.yaml" {
		t.Errorf("BankPath = %q", cfg.BankPath)
	}
	if cfg.LogFile != "/tmp/psyquiz.log" {
		t.Errorf("LogFile = %q", cfg.LogFile)
	}
	if cfg.Seed != 1234 {
		t.Errorf("Seed = %d, want 1234", cfg.Seed)
	}
}

func TestFromEnv_BadSeed(t *testing.T) {
	t.Setenv("PSYQUIZ_SEED", "-1")

	_, err := FromEnv()
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) || cfgErr.Field != "PSYQUIZ_SEED" {
		t.Fatalf("expected PSYQUIZ_SEED ConfigurationError, got %v", err)
	}
}

func TestFromEnv_BadInteger(t *testing.T) {
	t.Setenv("PSYQUIZ_DISPLAY_COUNT", "five")

	_, err := FromEnv()
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigurationError, got %v", err)
	}
	if cfgErr.Field != "PSYQUIZ_DISPLAY_COUNT" {
		t.Errorf("Field = %q", cfgErr.Field)
	}
	if cfgErr.Unwrap() == nil {
		t.Error("expected wrapped strconv error")
	}
}
