package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll_OrderAndFileNames(t *testing.T) {
	specs := All()
	require.Len(t, specs, 5)

	wantResources := []string{"stocks", "etf", "index", "institute", "crypto"}
	wantTables := []string{"stocks", "etfs", "indices", "institutes", "cryptos"}
	for i, sp := range specs {
		assert.Equal(t, wantResources[i], sp.Resource)
		assert.Equal(t, wantTables[i], sp.Table)
		assert.Equal(t, wantResources[i]+".db", sp.FileName())
		require.NoError(t, sp.Validate())
	}
}

func TestAll_DDLDeclaresEveryColumn(t *testing.T) {
	for _, sp := range All() {
		assert.Contains(t, sp.DDL, "CREATE TABLE IF NOT EXISTS "+sp.Table)
		for _, col := range sp.Columns {
			assert.Contains(t, sp.DDL, col, "spec %s missing column %s in DDL", sp.Resource, col)
		}
	}
}

func TestValidate_RejectsBadSpecs(t *testing.T) {
	good := Spec{Resource: "stocks", Table: "stocks", Columns: []string{"id"}}

	tests := []struct {
		name   string
		mutate func(*Spec)
	}{
		{"empty resource", func(s *Spec) { s.Resource = "" }},
		{"path separator", func(s *Spec) { s.Resource = "a/b" }},
		{"parent dir", func(s *Spec) { s.Resource = ".." }},
		{"empty table", func(s *Spec) { s.Table = "" }},
		{"no columns", func(s *Spec) { s.Columns = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sp := good
			sp.Columns = append([]string(nil), good.Columns...)
			tt.mutate(&sp)
			assert.Error(t, sp.Validate())
		})
	}
}
