package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidate(t *testing.T) {
	cfg := Config{Port: "8090"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	cfg.Port = "not-a-port"
	if err := cfg.Validate(); err == nil {
		t.Error("expected an error for a non-numeric port")
	}
}

func TestExpenseMapping_DefaultWhenUnconfigured(t *testing.T) {
	m, err := Config{}.ExpenseMapping()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.Buckets) != 4 {
		t.Errorf("expected the 4 built-in buckets, got %d", len(m.Buckets))
	}
}

func TestLoadExpenseMapping(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.yaml")
	data := "buckets:\n  - name: 饮品\n    categories: [乳制品, 饮料]\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	m, err := LoadExpenseMapping(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.Buckets) != 1 || m.Buckets[0].Name != "饮品" {
		t.Errorf("got %+v", m.Buckets)
	}
	if len(m.Buckets[0].Categories) != 2 {
		t.Errorf("categories: got %v", m.Buckets[0].Categories)
	}
}

func TestLoadExpenseMapping_Rejections(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty.yaml")
	if err := os.WriteFile(empty, []byte("buckets: []\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadExpenseMapping(empty); err == nil {
		t.Error("expected an error for an empty bucket list")
	}

	unnamed := filepath.Join(dir, "unnamed.yaml")
	if err := os.WriteFile(unnamed, []byte("buckets:\n  - categories: [a]\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadExpenseMapping(unnamed); err == nil {
		t.Error("expected an error for a nameless bucket")
	}

	if _, err := LoadExpenseMapping(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
