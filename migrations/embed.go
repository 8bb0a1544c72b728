// Package migrations embeds the goose SQL migrations so the server,
// habitctl and the test harness apply the same schema.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
