package runstore

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/repolens/repolens/schema"
)

// ClearRuns removes all run tracking data for the given backend.
// For SQLite it deletes the database file; for MySQL/PostgreSQL it drops
// the run tracking tables.
func ClearRuns(backend schema.DatabaseBackend, dbFilePath, connStr string) error {
	switch backend {
	case schema.SQLiteBackend:
		if dbFilePath == "" {
			return fmt.Errorf("dbFilePath cannot be empty for SQLite backend")
		}
		// Remove the file; ignore if it doesn't exist
		if err := os.Remove(dbFilePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove SQLite database file %s: %w", dbFilePath, err)
		}
		return nil

	case schema.MySQLBackend:
		for _, table := range []string{workflowMetricsTable, runsTable} {
			if err := dropSQLTable("mysql", connStr, table); err != nil {
				return err
			}
		}
		return nil

	case schema.PostgreSQLBackend:
		for _, table := range []string{workflowMetricsTable, runsTable} {
			if err := dropSQLTable("pgx", connStr, table); err != nil {
				return err
			}
		}
		return nil

	case schema.NoneBackend:
		return nil

	default:
		return fmt.Errorf("unsupported runs backend for clearing: %s", backend)
	}
}

// dropSQLTable connects to the SQL database and drops the table if it exists.
func dropSQLTable(driverName, connStr, tableName string) error {
	db, err := sql.Open(driverName, connStr)
	if err != nil {
		return fmt.Errorf("failed to connect to %s database: %w", driverName, err)
	}
	defer func() { _ = db.Close() }()

	var quoted string
	if driverName == "mysql" {
		quoted = fmt.Sprintf("`%s`", tableName)
	} else {
		quoted = fmt.Sprintf("%q", tableName)
	}

	if _, err := db.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s", quoted)); err != nil {
		return fmt.Errorf("failed to drop table %s: %w", tableName, err)
	}
	return nil
}
