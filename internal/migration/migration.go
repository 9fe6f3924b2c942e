package migration

import (
	"database/sql"
	"embed"

	migrate "github.com/rubenv/sql-migrate"
)

//go:embed sql/*.sql
var migrationFiles embed.FS

const dialect = "postgres"

func source() migrate.MigrationSource {
	return &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrationFiles,
		Root:       "sql",
	}
}

// Up applies every pending migration and returns how many ran.
func Up(db *sql.DB) (int, error) {
	return migrate.Exec(db, dialect, source(), migrate.Up)
}

// Down rolls back at most steps migrations.
func Down(db *sql.DB, steps int) (int, error) {
	return migrate.ExecMax(db, dialect, source(), migrate.Down, steps)
}

type Status struct {
	ID      string
	Applied bool
}

func Statuses(db *sql.DB) ([]Status, error) {
	migrations, err := source().FindMigrations()
	if err != nil {
		return nil, err
	}
	records, err := migrate.GetMigrationRecords(db, dialect)
	if err != nil {
		return nil, err
	}

	applied := make(map[string]bool, len(records))
	for _, record := range records {
		applied[record.Id] = true
	}

	statuses := make([]Status, 0, len(migrations))
	for _, m := range migrations {
		statuses = append(statuses, Status{ID: m.Id, Applied: applied[m.Id]})
	}
	return statuses, nil
}
