// Package schemas содержит встроенные JSON-схемы записей для проверки
// импортируемых данных.
package schemas

import "embed"

//go:embed records
var SchemasFS embed.FS
