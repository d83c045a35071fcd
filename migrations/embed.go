// Package migrations: SQL-миграции goose, встроенные в бинарник.
package migrations

import (
	"embed"
	"io/fs"
)

//go:embed *.sql
var embedded embed.FS

// FS — корень с файлами NNNNN_*.sql.
var FS fs.FS = embedded
