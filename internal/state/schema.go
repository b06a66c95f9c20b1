package state

import (
	"database/sql"
)

const currentSchemaVersion = 1

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS carousel_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			focused_template TEXT,
			scroll_count INTEGER NOT NULL DEFAULT 0,
			updated_at INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS focus_history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			template TEXT,
			scroll_count INTEGER,
			at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_focus_history_at ON focus_history(at DESC);
	`)
	if err != nil {
		return err
	}

	// Set initial version if not exists
	_, err = db.Exec(`
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	return err
}
