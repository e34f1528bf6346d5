package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDiscover_EnvVar(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "custom.toml")
	if err := os.WriteFile(cfgPath, []byte("[server]\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ODELU_CONFIG", cfgPath)

	found, err := Discover()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found != cfgPath {
		t.Errorf("expected %s, got %s", cfgPath, found)
	}
}

func TestDiscover_EnvVarMissingFile(t *testing.T) {
	t.Setenv("ODELU_CONFIG", filepath.Join(t.TempDir(), "nope.toml"))

	if _, err := Discover(); err == nil {
		t.Fatal("expected error when ODELU_CONFIG points at a missing file")
	}
}

func TestDiscover_CurrentDirectory(t *testing.T) {
	t.Setenv("ODELU_CONFIG", "")
	tmp := t.TempDir()
	t.Chdir(tmp)
	if err := os.WriteFile("config.toml", []byte("[server]\n"), 0644); err != nil {
		t.Fatal(err)
	}

	found, err := Discover()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found != "./config.toml" {
		t.Errorf("expected ./config.toml, got %s", found)
	}
}
