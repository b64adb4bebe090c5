package schema

import (
	"fmt"
	"strings"
)

// Spec pairs a resource name with the single table its database must contain.
type Spec struct {
	// Resource is the base name of the database file; the store lives at
	// "<Resource>.db" under the configured data directory.
	Resource string
	// Table is the name of the one table the DDL declares.
	Table string
	// Columns lists the declared column names in DDL order.
	Columns []string
	// DDL is the CREATE TABLE IF NOT EXISTS statement for the table.
	DDL string
}

// FileName returns the database file name for the resource.
func (s Spec) FileName() string {
	return s.Resource + ".db"
}

// Validate checks that the spec is usable: a non-empty resource name that is
// safe as a single path component, a table name, and at least one column.
func (s Spec) Validate() error {
	if s.Resource == "" {
		return fmt.Errorf("schema spec: empty resource name")
	}
	if strings.ContainsAny(s.Resource, `/\`) || s.Resource == "." || s.Resource == ".." {
		return fmt.Errorf("schema spec %q: resource name must be a plain path component", s.Resource)
	}
	if s.Table == "" {
		return fmt.Errorf("schema spec %q: empty table name", s.Resource)
	}
	if len(s.Columns) == 0 {
		return fmt.Errorf("schema spec %q: no columns declared", s.Resource)
	}
	return nil
}

const stocksDDL = `
CREATE TABLE IF NOT EXISTS stocks (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	symbol TEXT UNIQUE NOT NULL,
	name TEXT,
	type TEXT,
	marketCap REAL,
	exchange TEXT,
	exchangeShortName TEXT,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`

const etfsDDL = `
CREATE TABLE IF NOT EXISTS etfs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	symbol TEXT UNIQUE NOT NULL,
	name TEXT,
	type TEXT,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`

const indicesDDL = `
CREATE TABLE IF NOT EXISTS indices (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	symbol TEXT UNIQUE NOT NULL,
	name TEXT,
	type TEXT,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`

const institutesDDL = `
CREATE TABLE IF NOT EXISTS institutes (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT UNIQUE NOT NULL,
	cik TEXT,
	type TEXT,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`

const cryptosDDL = `
CREATE TABLE IF NOT EXISTS cryptos (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	symbol TEXT UNIQUE NOT NULL,
	name TEXT,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`

// All returns the five market database specs in initialization order.
func All() []Spec {
	return []Spec{
		{
			Resource: "stocks",
			Table:    "stocks",
			Columns:  []string{"id", "symbol", "name", "type", "marketCap", "exchange", "exchangeShortName", "created_at"},
			DDL:      stocksDDL,
		},
		{
			Resource: "etf",
			Table:    "etfs",
			Columns:  []string{"id", "symbol", "name", "type", "created_at"},
			DDL:      etfsDDL,
		},
		{
			Resource: "index",
			Table:    "indices",
			Columns:  []string{"id", "symbol", "name", "type", "created_at"},
			DDL:      indicesDDL,
		},
		{
			Resource: "institute",
			Table:    "institutes",
			Columns:  []string{"id", "name", "cik", "type", "created_at"},
			DDL:      institutesDDL,
		},
		{
			Resource: "crypto",
			Table:    "cryptos",
			Columns:  []string{"id", "symbol", "name", "created_at"},
			DDL:      cryptosDDL,
		},
	}
}
