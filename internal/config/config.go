package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	BackendCSV      = "csv"
	BackendPostgres = "postgres"
)

type Config struct {
	Port     string
	DataDir  string
	Backend  string
	ImageDir string
	CSVFile  string
}

// Load reads .env (if present) and the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}
	return FromEnv()
}

func FromEnv() Config {
	cfg := Config{
		Port:    getenv("PORT", "3000"),
		DataDir: getenv("DATA_DIR", "./seni_kraf_data"),
		Backend: getenv("CATALOG_BACKEND", BackendCSV),
	}
	cfg.ImageDir = filepath.Join(cfg.DataDir, "images")
	cfg.CSVFile = filepath.Join(cfg.DataDir, "products.csv")
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
