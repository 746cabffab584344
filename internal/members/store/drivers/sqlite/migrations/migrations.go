// Package migrations embeds the SQL migration files so the binary can
// bring any database up to date at startup.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
