// Package migrations embeds the versioned goose SQL migrations.
package migrations

import "embed"

// FS holds every migration file. Apply with cmd/migrate.
//
//go:embed *.sql
var FS embed.FS
