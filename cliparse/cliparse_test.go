package cliparse

import (
	"testing"
)

func TestParseFlagsDefaults(t *testing.T) {
	// Shield the test from the ambient environment
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_TYPE", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SESSION_TTL_HOURS", "")

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if cfg.Port != 8470 {
		t.Errorf("Expected default port 8470, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("Expected default type sqlite, got %q", cfg.DatabaseType)
	}
	if cfg.DatabaseURL != "file:pollbox.db" {
		t.Errorf("Expected default sqlite URL, got %q", cfg.DatabaseURL)
	}
	if cfg.SessionTTLHours != 168 {
		t.Errorf("Expected default session TTL 168, got %d", cfg.SessionTTLHours)
	}
}

func TestParseFlagsOverrides(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-p", "9000",
		"-t", "postgres",
		"-d", "postgres://localhost/polls",
		"-session-ttl", "24",
	})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if cfg.Port != 9000 || cfg.DatabaseType != "postgres" ||
		cfg.DatabaseURL != "postgres://localhost/polls" || cfg.SessionTTLHours != 24 {
		t.Errorf("Flags not applied: %+v", cfg)
	}
}

func TestParseFlagsEnvFallback(t *testing.T) {
	t.Setenv("PORT", "9100")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("DATABASE_URL", "postgres://env/polls")
	t.Setenv("SESSION_TTL_HOURS", "12")

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if cfg.Port != 9100 || cfg.DatabaseType != "postgres" ||
		cfg.DatabaseURL != "postgres://env/polls" || cfg.SessionTTLHours != 12 {
		t.Errorf("Env not applied: %+v", cfg)
	}
}

func TestParseFlagsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{"postgres without URL", []string{"-t", "postgres"}, map[string]string{"DATABASE_URL": ""}},
		{"unknown database type", []string{"-t", "mysql"}, nil},
		{"invalid PORT env", nil, map[string]string{"PORT": "not-a-number"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}
