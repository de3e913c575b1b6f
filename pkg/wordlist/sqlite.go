package wordlist

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"crosswarped.com/xwlayout"
)

const sqliteQuery = `SELECT word, COALESCE(clue, '') FROM words`

// LoadSQLite reads the words(word, clue) table of a SQLite database.
func LoadSQLite(ctx context.Context, path string) ([]xwlayout.WordEntry, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, sqliteQuery)
	if err != nil {
		return nil, fmt.Errorf("query words: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.Word, &r.Clue); err != nil {
			return nil, fmt.Errorf("rows.Scan: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}
	return finish(records)
}
