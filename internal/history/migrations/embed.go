package migrations

import "embed"

// FS contains embedded SQLite migrations for round history.
//
//go:embed *.sql
var FS embed.FS
