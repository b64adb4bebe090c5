package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const quotesDDL = `
CREATE TABLE IF NOT EXISTS quotes (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	symbol TEXT UNIQUE NOT NULL,
	price REAL
);
`

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "quotes.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpen_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quotes.db")
	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, path, s.Path())
	assert.FileExists(t, path)
}

func TestOpen_CreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "nested", "quotes.db")
	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	assert.FileExists(t, path)
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := Open("")
	assert.Error(t, err)
}

func TestOpen_ParentIsFile(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("not a directory"), 0o644))

	_, err := Open(filepath.Join(blocker, "quotes.db"))
	assert.Error(t, err)
}

func TestEnsureTable_Idempotent(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.EnsureTable(ctx, quotesDDL))

	exists, err := s.TableExists(ctx, "quotes")
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = s.db.ExecContext(ctx, `INSERT INTO quotes (symbol, price) VALUES ('AAPL', 178.5)`)
	require.NoError(t, err)

	// Second run is a no-op and must not touch existing rows.
	require.NoError(t, s.EnsureTable(ctx, quotesDDL))

	n, err := s.RowCount(ctx, "quotes")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestTableExists_AbsentTable(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	exists, err := s.TableExists(ctx, "quotes")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestTableColumns(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	require.NoError(t, s.EnsureTable(ctx, quotesDDL))

	cols, err := s.TableColumns(ctx, "quotes")
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "symbol", "price"}, cols)

	cols, err = s.TableColumns(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, cols)
}

func TestClearAndDropTable(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	require.NoError(t, s.EnsureTable(ctx, quotesDDL))

	_, err := s.db.ExecContext(ctx, `INSERT INTO quotes (symbol, price) VALUES ('AAPL', 178.5), ('MSFT', 410.2)`)
	require.NoError(t, err)

	require.NoError(t, s.ClearTable(ctx, "quotes"))
	n, err := s.RowCount(ctx, "quotes")
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, s.DropTable(ctx, "quotes"))
	exists, err := s.TableExists(ctx, "quotes")
	require.NoError(t, err)
	assert.False(t, exists)

	// Dropping an absent table is fine.
	require.NoError(t, s.DropTable(ctx, "quotes"))
}
