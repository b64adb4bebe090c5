package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/hetulpatel/marketdb/internal/logging"
	"github.com/hetulpatel/marketdb/internal/schema"
	"github.com/hetulpatel/marketdb/internal/storage/sqlite"
)

func main() {
	godotenv.Load()
	logging.InitFromEnv()

	dir := os.Getenv("MARKET_DATA_DIR")
	if dir == "" {
		dir = "."
	}

	ctx := context.Background()
	for _, sp := range schema.All() {
		path := filepath.Join(dir, sp.FileName())
		if _, err := os.Stat(path); os.IsNotExist(err) {
			logging.Debugf("%s does not exist, skipping", path)
			continue
		}
		store, err := sqlite.Open(path)
		if err != nil {
			logging.Fatalf("open %s: %v", path, err)
		}
		if err := store.ClearTable(ctx, sp.Table); err != nil {
			store.Close()
			logging.Fatalf("clear table %s in %s: %v", sp.Table, path, err)
		}
		store.Close()
		logging.Infof("table %s cleared in %s", sp.Table, path)
	}
}
