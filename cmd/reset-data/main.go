package main

import (
	"errors"
	"flag"
	"log"

	"seni-kraf-manik/internal/config"
	"seni-kraf-manik/internal/service"
)

const confirmText = "DELETE"

var errNotConfirmed = errors.New("pass -confirm " + confirmText)

func main() {
	confirm := flag.String("confirm", "", "type DELETE to remove every product and image")
	flag.Parse()

	// 1. Load Env
	cfg := config.Load()

	if err := run(cfg, *confirm); err != nil {
		log.Fatalf("❌ Reset of %s refused or failed: %v", cfg.DataDir, err)
	}

	log.Printf("✅ All products and images under %s have been deleted", cfg.DataDir)
}

// run checks the confirmation before opening anything, so a refused run
// leaves the data directory and database untouched.
func run(cfg config.Config, confirm string) error {
	// 2. Confirmation gate
	if confirm != confirmText {
		return errNotConfirmed
	}

	// 3. Open catalog
	catalog, err := service.NewFromConfig(cfg, nil)
	if err != nil {
		return err
	}

	// 4. Reset
	return catalog.ResetAll(true)
}
