package config

import (
	"os"
	"path/filepath"
	"testing"
)

// unsetEnv clears key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("unset %s: %v", key, err)
	}
}

func TestLoadDotEnv_ExistingEnvWins(t *testing.T) {
	t.Setenv("MASSCALC_LOG_LEVEL", "warn")
	unsetEnv(t, "MASSCALC_ROUND_COSTS")

	path := filepath.Join(t.TempDir(), ".env")
	content := []byte("MASSCALC_LOG_LEVEL=debug\nMASSCALC_ROUND_COSTS=false\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write dotenv: %v", err)
	}

	if err := loadDotEnv(path); err != nil {
		t.Fatalf("loadDotEnv: %v", err)
	}

	if got := os.Getenv("MASSCALC_LOG_LEVEL"); got != "warn" {
		t.Fatalf("MASSCALC_LOG_LEVEL=%q, want %q", got, "warn")
	}
	if got := os.Getenv("MASSCALC_ROUND_COSTS"); got != "false" {
		t.Fatalf("MASSCALC_ROUND_COSTS=%q, want %q", got, "false")
	}
}

func TestLoadDotEnv_MissingFileIsIgnored(t *testing.T) {
	if err := loadDotEnv(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Fatalf("loadDotEnv: %v", err)
	}
}
