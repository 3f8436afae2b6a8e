package main

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// store records capture sessions, window titles and inactivity spans in a
// local sqlite database.
type store struct {
	db *sql.DB
}

func openStore(path string) (*store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	schema := `
    CREATE TABLE IF NOT EXISTS session (
      id INTEGER PRIMARY KEY AUTOINCREMENT,
      start DATETIME,
      end DATETIME
    );

    CREATE TABLE IF NOT EXISTS windows (
      id INTEGER PRIMARY KEY AUTOINCREMENT,
      title TEXT,
      timestamp DATETIME
    );

    CREATE TABLE IF NOT EXISTS inactivity (
      id INTEGER PRIMARY KEY AUTOINCREMENT,
      start DATETIME,
      end DATETIME
    );
  `
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &store{db: db}, nil
}

func (s *store) Close() error {
	return s.db.Close()
}

func (s *store) StartSession() (int64, error) {
	result, err := s.db.Exec("INSERT INTO session (start) VALUES (?)", time.Now())
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func (s *store) EndSession(id int64) error {
	_, err := s.db.Exec("UPDATE session SET end = ? WHERE id = ?", time.Now(), id)
	return err
}

func (s *store) SaveWindowTitle(title string) error {
	_, err := s.db.Exec("INSERT INTO windows (title, timestamp) VALUES (?, ?)", title, time.Now())
	return err
}

func (s *store) StartInactivity() (int64, error) {
	result, err := s.db.Exec("INSERT INTO inactivity (start) VALUES (?)", time.Now())
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func (s *store) EndInactivity(id int64) error {
	_, err := s.db.Exec("UPDATE inactivity SET end = ? WHERE id = ?", time.Now(), id)
	return err
}
