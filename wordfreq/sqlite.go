package wordfreq

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// DB is a frequency list compiled into a SQLite database, for lists too
// large to hold in memory.
type DB struct {
	db *sql.DB
}

// OpenDB opens a compiled frequency database.
func OpenDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return &DB{db: db}, nil
}

// Close releases the underlying database handle.
func (d *DB) Close() error {
	return d.db.Close()
}

// Lookup returns the frequency of word, or 0 if the database does not
// contain it.
func (d *DB) Lookup(word string) (int64, error) {
	var freq int64
	err := d.db.QueryRow(`SELECT freq FROM words WHERE word = ?`, word).Scan(&freq)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to look up %q: %w", word, err)
	}
	return freq, nil
}

// Top returns the n most frequent words in the database, ties broken
// alphabetically.
func (d *DB) Top(n int) ([]Entry, error) {
	rows, err := d.db.Query(
		`SELECT word, freq FROM words ORDER BY freq DESC, word ASC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query top words: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		if err := rows.Scan(&entry.Word, &entry.Freq); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// BuildDB compiles a frequency list into a SQLite database at path,
// replacing whatever table was there before.
func BuildDB(path string, list *List) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer db.Close()

	queries := []string{
		`DROP TABLE IF EXISTS words`,
		`CREATE TABLE words (
			word text PRIMARY KEY,
			freq integer NOT NULL
		)`,
		`CREATE INDEX ix_words_freq ON words (freq DESC)`,
	}
	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO words (word, freq) VALUES (?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, entry := range list.Entries() {
		if _, err := stmt.Exec(entry.Word, entry.Freq); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert %q: %w", entry.Word, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}
