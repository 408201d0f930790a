package store

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/ticklab/ticklist/pkg/types"
)

// DatabaseFileName is the fixed name of the SQLite backing file inside
// the data directory.
const DatabaseFileName = "tasks.db"

// tasksSchema holds the collection in a single table. seq records
// storage order so a full rewrite round-trips the collection unchanged.
const tasksSchema = `CREATE TABLE IF NOT EXISTS tasks (
	seq INTEGER PRIMARY KEY,
	id INTEGER NOT NULL,
	description TEXT NOT NULL,
	done INTEGER NOT NULL
);`

// sqliteBackend stores the collection in a single-table SQLite database,
// keeping the same load-all, rewrite-all contract as the JSON backend.
type sqliteBackend struct {
	path string
	db   *sql.DB
}

func openSQLite(dataDir string) (*sqliteBackend, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	path := filepath.Join(dataDir, DatabaseFileName)

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(tasksSchema); err != nil {
		db.Close()
		return nil, err
	}
	return &sqliteBackend{path: path, db: db}, nil
}

func (b *sqliteBackend) Location() string { return b.path }

func (b *sqliteBackend) Close() error {
	if b.db == nil {
		return nil
	}
	err := b.db.Close()
	b.db = nil
	return err
}

func (b *sqliteBackend) Load() ([]types.Task, error) {
	rows, err := b.db.Query("SELECT id, description, done FROM tasks ORDER BY seq")
	if err != nil {
		return nil, &types.StorageError{Op: "read", Path: b.path, Err: err}
	}
	defer rows.Close()

	var tasks []types.Task
	for rows.Next() {
		var t types.Task
		if err := rows.Scan(&t.ID, &t.Description, &t.Done); err != nil {
			return nil, &types.StorageError{Op: "read", Path: b.path, Err: err}
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, &types.StorageError{Op: "read", Path: b.path, Err: err}
	}
	return tasks, nil
}

// Persist replaces the stored collection in one transaction: delete all
// rows, then insert the given tasks with explicit seq values.
func (b *sqliteBackend) Persist(tasks []types.Task) error {
	tx, err := b.db.Begin()
	if err != nil {
		return &types.StorageError{Op: "write", Path: b.path, Err: err}
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM tasks"); err != nil {
		return &types.StorageError{Op: "write", Path: b.path, Err: err}
	}
	for i, t := range tasks {
		_, err := tx.Exec(
			"INSERT INTO tasks (seq, id, description, done) VALUES (?, ?, ?, ?)",
			i+1, t.ID, t.Description, t.Done,
		)
		if err != nil {
			return &types.StorageError{Op: "write", Path: b.path, Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return &types.StorageError{Op: "write", Path: b.path, Err: err}
	}
	return nil
}
