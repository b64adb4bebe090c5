package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/hetulpatel/marketdb/internal/initializer"
	"github.com/hetulpatel/marketdb/internal/logging"
	"github.com/hetulpatel/marketdb/internal/schema"
)

func main() {
	godotenv.Load()
	logging.InitFromEnv()

	dir := os.Getenv("MARKET_DATA_DIR")
	if dir == "" {
		dir = "."
	}

	ctx := context.Background()
	specs := schema.All()
	for _, sp := range specs {
		logging.Infof("initializing %s...", sp.FileName())
		res, err := initializer.One(ctx, dir, sp)
		if err != nil {
			logging.Fatalf("initialize %s: %v", sp.Resource, err)
		}
		if res.Created {
			logging.Infof("%s initialized successfully (table %s created)", sp.FileName(), res.Table)
		} else {
			logging.Infof("%s initialized successfully (table %s already present)", sp.FileName(), res.Table)
		}
	}
	logging.Infof("database initialization complete (%d databases in %s)", len(specs), dir)
}
