// Package migrations embeds the SQL schema so the binary can migrate without
// the source tree next to it.
package migrations

import "embed"

//go:embed postgres/*.sql
var Postgres embed.FS
