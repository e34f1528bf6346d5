package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
		t.Fatalf("write test config: %v", err)
	}
	return cfgPath
}

func TestLoad_Valid(t *testing.T) {
	cfgPath := writeTestConfig(t, `
[server]
port = 8080

[auth]
api_key = "secret"
`)

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Auth.APIKey != "secret" {
		t.Errorf("expected api key secret, got %q", cfg.Auth.APIKey)
	}
}

func TestLoad_AppliesDefaults(t *testing.T) {
	cfgPath := writeTestConfig(t, `
[auth]
api_key = "secret"
`)

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("expected default host 0.0.0.0, got %s", cfg.Server.Host)
	}
	if cfg.Server.Port != 4000 {
		t.Errorf("expected default port 4000, got %d", cfg.Server.Port)
	}
	if cfg.Server.LogLevel != "info" {
		t.Errorf("expected default log level info, got %s", cfg.Server.LogLevel)
	}
	if cfg.Database.Path != "./data/odelu.db" {
		t.Errorf("expected default database path, got %s", cfg.Database.Path)
	}
}

func TestLoad_EnvVarSubstitution(t *testing.T) {
	t.Setenv("ODELU_TEST_KEY", "from-env")
	cfgPath := writeTestConfig(t, `
[auth]
api_key = "${ODELU_TEST_KEY}"
`)

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Auth.APIKey != "from-env" {
		t.Errorf("expected api key from-env, got %q", cfg.Auth.APIKey)
	}
}

func TestLoad_MissingEnvVar(t *testing.T) {
	os.Unsetenv("ODELU_MISSING_KEY")
	cfgPath := writeTestConfig(t, `
[auth]
api_key = "${ODELU_MISSING_KEY}"
`)

	_, err := Load(cfgPath)
	if err == nil {
		t.Fatal("expected error for missing env var")
	}
	if !strings.Contains(err.Error(), "ODELU_MISSING_KEY") {
		t.Errorf("expected ODELU_MISSING_KEY in error, got %v", err)
	}
}

func TestLoad_EnvVarDefault(t *testing.T) {
	os.Unsetenv("ODELU_OPTIONAL_VAR")
	cfgPath := writeTestConfig(t, `
[server]
host = "${ODELU_OPTIONAL_VAR:-localhost}"

[auth]
api_key = "secret"
`)

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Host != "localhost" {
		t.Errorf("expected host localhost, got %s", cfg.Server.Host)
	}
}

func TestLoad_ValidationError(t *testing.T) {
	cfgPath := writeTestConfig(t, `
[server]
port = 99999

[auth]
api_key = "secret"
`)

	_, err := Load(cfgPath)
	if err == nil {
		t.Fatal("expected error for invalid port")
	}
	if !strings.Contains(err.Error(), "server.port") {
		t.Errorf("expected server.port in error, got %v", err)
	}
}

func TestLoad_MissingAPIKey(t *testing.T) {
	cfgPath := writeTestConfig(t, `
[server]
port = 8080
`)

	_, err := Load(cfgPath)
	if err == nil {
		t.Fatal("expected error for missing api key")
	}
	if !strings.Contains(err.Error(), "auth.api_key") {
		t.Errorf("expected auth.api_key in error, got %v", err)
	}
}

func TestLoadWithoutValidation(t *testing.T) {
	cfgPath := writeTestConfig(t, `
[server]
port = 99999
`)

	cfg, err := LoadWithoutValidation(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 99999 {
		t.Errorf("expected port 99999, got %d", cfg.Server.Port)
	}
}
