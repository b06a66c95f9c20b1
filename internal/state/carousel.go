package state

import (
	"database/sql"
	"errors"
	"time"
)

// historyLimit bounds the focus_history table.
const historyLimit = 50

// CarouselState is the persisted carousel position.
type CarouselState struct {
	FocusedTemplate string // template name in the center slot
	ScrollCount     int64  // user-triggered scrolls since first run
	UpdatedAt       time.Time
}

// FocusEntry is one saved resting point of the carousel.
type FocusEntry struct {
	Template    string
	ScrollCount int64
	At          time.Time
}

func getCarousel(db *sql.DB) (*CarouselState, error) {
	row := db.QueryRow(`
		SELECT focused_template, scroll_count, updated_at FROM carousel_state WHERE id = 1
	`)

	var focused sql.NullString
	var count int64
	var updatedAt int64
	err := row.Scan(&focused, &count, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}

	return &CarouselState{
		FocusedTemplate: nullStringValue(focused),
		ScrollCount:     count,
		UpdatedAt:       time.Unix(updatedAt, 0),
	}, nil
}

// saveCarousel stores the state and appends it to the focus history,
// keeping only the most recent historyLimit entries.
func saveCarousel(db *sql.DB, state CarouselState) error {
	at := state.UpdatedAt
	if at.IsZero() {
		at = time.Now()
	}

	return withTx(db, func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO carousel_state (id, focused_template, scroll_count, updated_at)
			VALUES (1, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				focused_template = excluded.focused_template,
				scroll_count = excluded.scroll_count,
				updated_at = excluded.updated_at
		`, nullString(state.FocusedTemplate), state.ScrollCount, at.Unix())
		if err != nil {
			return err
		}

		_, err = tx.Exec(`
			INSERT INTO focus_history (template, scroll_count, at) VALUES (?, ?, ?)
		`, nullString(state.FocusedTemplate), state.ScrollCount, at.Unix())
		if err != nil {
			return err
		}

		_, err = tx.Exec(`
			DELETE FROM focus_history WHERE id NOT IN (
				SELECT id FROM focus_history ORDER BY id DESC LIMIT ?
			)
		`, historyLimit)
		return err
	})
}

func recentFocus(db *sql.DB, limit int) ([]FocusEntry, error) {
	if limit <= 0 || limit > historyLimit {
		limit = historyLimit
	}

	rows, err := db.Query(`
		SELECT template, scroll_count, at FROM focus_history
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []FocusEntry
	for rows.Next() {
		var template sql.NullString
		var count sql.NullInt64
		var at int64
		if err := rows.Scan(&template, &count, &at); err != nil {
			return nil, err
		}
		entries = append(entries, FocusEntry{
			Template:    nullStringValue(template),
			ScrollCount: nullInt64Value(count),
			At:          time.Unix(at, 0),
		})
	}

	return entries, rows.Err()
}
