// Package atsconnect is the root of the integration and webhook delivery
// engine. It only embeds the SQL migrations applied by the migrate command.
package atsconnect

import "embed"

// Migrations holds the goose migrations of the service database.
//
//go:embed migrations/*.sql
var Migrations embed.FS
