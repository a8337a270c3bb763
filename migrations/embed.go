// Package migrations embeds the project-store SQL migration files into
// the binary, so exports can run without the SQL files present on the
// filesystem.
package migrations

import (
	"embed"

	"github.com/nerrad567/buildsim/internal/infrastructure/database"
)

//go:embed *.sql
var migrationsFS embed.FS

func init() {
	// Register embedded migrations with the database package.
	database.MigrationsFS = migrationsFS
	database.MigrationsDir = "."
}
