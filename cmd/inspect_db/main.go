package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/hetulpatel/marketdb/internal/logging"
	"github.com/hetulpatel/marketdb/internal/schema"
	"github.com/hetulpatel/marketdb/internal/storage/sqlite"
)

type dbInfo struct {
	Resource        string   `json:"resource"`
	Path            string   `json:"path"`
	Exists          bool     `json:"exists"`
	Table           string   `json:"table"`
	TablePresent    bool     `json:"table_present"`
	DeclaredColumns []string `json:"declared_columns"`
	ActualColumns   []string `json:"actual_columns,omitempty"`
	Rows            int64    `json:"rows"`
}

func main() {
	godotenv.Load()
	logging.InitFromEnv()

	dir := os.Getenv("MARKET_DATA_DIR")
	if dir == "" {
		dir = "."
	}

	ctx := context.Background()
	infos := make([]dbInfo, 0, len(schema.All()))
	for _, sp := range schema.All() {
		info, err := inspect(ctx, dir, sp)
		if err != nil {
			logging.Fatalf("inspect %s: %v", sp.Resource, err)
		}
		infos = append(infos, info)
	}

	b, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		logging.Fatalf("marshal: %v", err)
	}
	fmt.Println(string(b))
}

func inspect(ctx context.Context, dir string, sp schema.Spec) (dbInfo, error) {
	info := dbInfo{
		Resource:        sp.Resource,
		Path:            filepath.Join(dir, sp.FileName()),
		Table:           sp.Table,
		DeclaredColumns: sp.Columns,
	}
	if _, err := os.Stat(info.Path); os.IsNotExist(err) {
		return info, nil
	}
	info.Exists = true

	store, err := sqlite.Open(info.Path)
	if err != nil {
		return info, err
	}
	defer store.Close()

	info.TablePresent, err = store.TableExists(ctx, sp.Table)
	if err != nil || !info.TablePresent {
		return info, err
	}
	if info.ActualColumns, err = store.TableColumns(ctx, sp.Table); err != nil {
		return info, err
	}
	info.Rows, err = store.RowCount(ctx, sp.Table)
	return info, err
}
