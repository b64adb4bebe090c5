package initializer

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/hetulpatel/marketdb/internal/schema"
	"github.com/hetulpatel/marketdb/internal/storage/sqlite"
)

var (
	// ErrStorageUnavailable marks failures to open, create, or write the
	// underlying database file (permissions, missing directory, disk full).
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrSchemaConflict marks an existing table whose shape does not cover
	// the declared columns. CREATE TABLE IF NOT EXISTS silently no-ops
	// against such a table, so the mismatch is detected explicitly.
	ErrSchemaConflict = errors.New("schema conflict")
)

// Result records the outcome of initializing one resource.
type Result struct {
	Resource string
	Path     string
	Table    string
	// Created is true when the table was created on this run, false when it
	// already existed and the run was a no-op.
	Created  bool
	Duration time.Duration
}

// All initializes every spec in order under dir, stopping at the first
// failure. Results for resources initialized before the failure are returned
// alongside the error; they need no rollback since re-running is a no-op.
func All(ctx context.Context, dir string, specs []schema.Spec) ([]Result, error) {
	results := make([]Result, 0, len(specs))
	for _, sp := range specs {
		res, err := One(ctx, dir, sp)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// One ensures the database file for a single spec exists under dir and
// contains the declared table, creating it if absent.
func One(ctx context.Context, dir string, sp schema.Spec) (Result, error) {
	start := time.Now()
	if err := sp.Validate(); err != nil {
		return Result{}, err
	}
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, sp.FileName())

	store, err := sqlite.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s: %v", ErrStorageUnavailable, sp.Resource, err)
	}
	defer store.Close()

	existed, err := store.TableExists(ctx, sp.Table)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s: check table %s: %v", ErrStorageUnavailable, sp.Resource, sp.Table, err)
	}
	if err := store.EnsureTable(ctx, sp.DDL); err != nil {
		return Result{}, fmt.Errorf("%w: %s: create table %s: %v", ErrStorageUnavailable, sp.Resource, sp.Table, err)
	}
	if err := verifyColumns(ctx, store, sp); err != nil {
		return Result{}, err
	}

	return Result{
		Resource: sp.Resource,
		Path:     path,
		Table:    sp.Table,
		Created:  !existed,
		Duration: time.Since(start),
	}, nil
}

// verifyColumns checks that the live table covers every declared column.
// Extra columns are tolerated; a missing one means a same-name table with an
// incompatible shape predates this run.
func verifyColumns(ctx context.Context, store *sqlite.Store, sp schema.Spec) error {
	cols, err := store.TableColumns(ctx, sp.Table)
	if err != nil {
		return fmt.Errorf("%w: %s: inspect table %s: %v", ErrStorageUnavailable, sp.Resource, sp.Table, err)
	}
	have := make(map[string]bool, len(cols))
	for _, c := range cols {
		have[c] = true
	}
	for _, want := range sp.Columns {
		if !have[want] {
			return fmt.Errorf("%w: %s: table %s is missing column %s", ErrSchemaConflict, sp.Resource, sp.Table, want)
		}
	}
	return nil
}
