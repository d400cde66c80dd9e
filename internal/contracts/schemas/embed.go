package schemas

import "embed"

// SchemasFS - JSON-схемы входных данных API
//
//go:embed payloads
var SchemasFS embed.FS
