// Package db embeds the SQL migrations so the server can migrate on start.
package db

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS
