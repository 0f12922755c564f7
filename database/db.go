package database

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	log "github.com/sirupsen/logrus"
)

var schema = []struct {
	table string
	ddl   string
}{
	{"users", `CREATE TABLE IF NOT EXISTS users (
		user_id INTEGER PRIMARY KEY AUTOINCREMENT,
		email TEXT NOT NULL UNIQUE,
		hashed_password TEXT NOT NULL,
		salt TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'A'
	)`},
	{"boards", `CREATE TABLE IF NOT EXISTS boards (
		board_id INTEGER PRIMARY KEY AUTOINCREMENT,
		board_name TEXT NOT NULL,
		description TEXT,
		user_id INTEGER REFERENCES users(user_id),
		status TEXT NOT NULL DEFAULT 'A'
	)`},
	{"columns", `CREATE TABLE IF NOT EXISTS columns (
		column_id INTEGER PRIMARY KEY AUTOINCREMENT,
		column_name TEXT NOT NULL,
		position INTEGER NOT NULL,
		board_id INTEGER NOT NULL REFERENCES boards(board_id),
		status TEXT NOT NULL DEFAULT 'A'
	)`},
	{"tasks", `CREATE TABLE IF NOT EXISTS tasks (
		task_id INTEGER PRIMARY KEY AUTOINCREMENT,
		task_name TEXT NOT NULL,
		description TEXT,
		column_id INTEGER NOT NULL REFERENCES columns(column_id),
		due_date TEXT NOT NULL,
		created_date TEXT NOT NULL,
		assignee TEXT NOT NULL
	)`},
	{"assignees", `CREATE TABLE IF NOT EXISTS assignees (
		assignee_id INTEGER PRIMARY KEY AUTOINCREMENT,
		task_id INTEGER NOT NULL REFERENCES tasks(task_id),
		user_id INTEGER REFERENCES users(user_id),
		external_assignee TEXT
	)`},
}

// DSN builds a go-sqlite3 connection string for path. ":memory:" yields a
// private in-memory database.
func DSN(path string, foreignKeys bool) string {
	fk := 0
	if foreignKeys {
		fk = 1
	}
	if path == ":memory:" || path == "" {
		return fmt.Sprintf("file::memory:?_foreign_keys=%d", fk)
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return fmt.Sprintf("file:%s%s_foreign_keys=%d", path, sep, fk)
}

// InitDB opens the database at path and creates any missing tables.
func InitDB(path string, foreignKeys bool) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite3", DSN(path, foreignKeys))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite serializes writers anyway, and an in-memory database only
	// lives as long as its one connection.
	db.SetMaxOpenConns(1)

	if err := CreateSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	log.WithFields(log.Fields{"path": path, "foreign_keys": foreignKeys}).Info("Database initialized successfully")
	return db, nil
}

// CreateSchema creates every table that does not exist yet.
func CreateSchema(db *sqlx.DB) error {
	for _, s := range schema {
		if _, err := db.Exec(s.ddl); err != nil {
			return fmt.Errorf("failed to create %s table: %w", s.table, err)
		}
	}
	return nil
}
