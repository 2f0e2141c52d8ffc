package database

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"psychotest/internal/logger"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

//go:embed migrations
var migrationsFS embed.FS

const createVersionTable = `CREATE TABLE schema_migrations (version VARCHAR(255) PRIMARY KEY)`

// RunMigrations applies every *.up.sql file of the driver's dialect that is
// not yet recorded in schema_migrations, in file name order.
func RunMigrations(db *sqlx.DB, driver string) error {
	return runMigrations(db, migrationsFS, path.Join("migrations", Dialect(driver)))
}

func runMigrations(db *sqlx.DB, fsys fs.FS, dir string) error {
	applied, err := appliedVersions(db)
	if err != nil {
		return err
	}

	files, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("could not read migrations directory: %w", err)
	}
	names := make([]string, 0, len(files))
	for _, file := range files {
		if strings.HasSuffix(file.Name(), ".up.sql") {
			names = append(names, file.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		version := strings.TrimSuffix(name, ".up.sql")
		if applied[version] {
			continue
		}

		content, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return fmt.Errorf("could not read migration file %s: %w", name, err)
		}
		for _, stmt := range splitStatements(string(content)) {
			if _, err := db.Exec(stmt); err != nil {
				return fmt.Errorf("could not execute migration %s: %w", name, err)
			}
		}
		if _, err := db.Exec(db.Rebind("INSERT INTO schema_migrations (version) VALUES (?)"), version); err != nil {
			return fmt.Errorf("could not record migration %s: %w", name, err)
		}

		logger.Get().Info("Executed migration", zap.String("file", name))
	}

	logger.Get().Info("Migrations completed successfully")
	return nil
}

func appliedVersions(db *sqlx.DB) (map[string]bool, error) {
	var versions []string
	if err := db.Select(&versions, `SELECT version FROM schema_migrations`); err != nil {
		// The table is missing on a fresh database.
		if _, createErr := db.Exec(createVersionTable); createErr != nil {
			return nil, fmt.Errorf("could not create schema_migrations: %w (select failed: %v)", createErr, err)
		}
	}

	applied := make(map[string]bool, len(versions))
	for _, v := range versions {
		applied[v] = true
	}
	return applied, nil
}

// splitStatements splits a script on semicolons that end a line. Oracle
// rejects multiple statements in one Exec.
func splitStatements(script string) []string {
	var stmts []string
	for _, part := range strings.Split(script, ";\n") {
		stmt := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(part), ";"))
		if stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}
