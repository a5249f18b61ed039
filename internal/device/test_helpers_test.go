package device

import (
	"database/sql"
	"os"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

// testDB creates a temporary SQLite database with the devices schema applied.
// The database file is cleaned up when the test completes.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	// Use a temp file so WAL mode works (in-memory doesn't support it)
	f, err := os.CreateTemp("", "device-test-*.db")
	if err != nil {
		t.Fatalf("creating temp db: %v", err)
	}
	dbPath := f.Name()
	f.Close()
	t.Cleanup(func() { os.Remove(dbPath) })

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=ON")
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	schemaSQL := `
		CREATE TABLE devices (
			id         TEXT PRIMARY KEY,
			user_id    TEXT NOT NULL,
			name       TEXT NOT NULL,
			imei       TEXT NOT NULL,
			status     TEXT NOT NULL,
			last_seen  TEXT,
			latitude   REAL,
			longitude  REAL,
			notes      TEXT,
			created_at TEXT NOT NULL
		);

		CREATE INDEX idx_devices_user_id ON devices (user_id);
	`
	if _, err := db.Exec(schemaSQL); err != nil {
		t.Fatalf("creating devices schema: %v", err)
	}

	return db
}

// testRegistry creates a registry backed by a temporary database.
func testRegistry(t *testing.T) *Registry {
	t.Helper()
	return NewRegistry(NewSQLiteRepository(testDB(t)))
}
