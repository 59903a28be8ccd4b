package config

import (
	"path/filepath"
	"testing"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATA_DIR", "")
	t.Setenv("CATALOG_BACKEND", "")

	cfg := FromEnv()
	if cfg.Port != "3000" || cfg.Backend != BackendCSV {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if cfg.CSVFile != filepath.Join("seni_kraf_data", "products.csv") {
		t.Errorf("CSVFile = %s", cfg.CSVFile)
	}
	if cfg.ImageDir != filepath.Join("seni_kraf_data", "images") {
		t.Errorf("ImageDir = %s", cfg.ImageDir)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DATA_DIR", "/srv/kraf")
	t.Setenv("CATALOG_BACKEND", BackendPostgres)

	cfg := FromEnv()
	if cfg.Port != "8080" || cfg.Backend != BackendPostgres || cfg.ImageDir != "/srv/kraf/images" {
		t.Errorf("unexpected config %+v", cfg)
	}
}
