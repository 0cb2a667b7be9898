// Command migrate copies legacy record keys to their stable keys in the
// configured store backend and prints what it did.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/isebirbax/portfolio/internal/config"
	"github.com/isebirbax/portfolio/internal/kv"
	"github.com/isebirbax/portfolio/internal/store"
	"github.com/isebirbax/portfolio/pkg/logger"
)

func main() {
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	backend, err := kv.Open(ctx, cfg)
	if err != nil {
		logger.Fatalf("failed to open %s store: %v", cfg.Store.Backend, err)
	}

	report := store.New(backend).Migrate(ctx)
	for _, o := range report {
		line := fmt.Sprintf("%-12s %-22s %s", o.Collection, o.StableKey, o.Action)
		if o.SourceKey != "" {
			line += " from " + o.SourceKey
		}
		if o.Err != nil {
			line += fmt.Sprintf(" (%v)", o.Err)
		}
		fmt.Println(line)
	}

	if err := backend.Close(); err != nil {
		logger.Warnf("closing store backend: %v", err)
	}
	if report.Failed() {
		os.Exit(1)
	}
}
