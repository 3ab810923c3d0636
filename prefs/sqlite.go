package prefs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rustyeddy/lotsize/i18n"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	s, err := newSQLiteDB(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// newSQLiteDB wraps an already opened handle and makes sure the schema exists.
func newSQLiteDB(db *sql.DB) (*SQLite, error) {
	if _, err := db.Exec(Schema); err != nil {
		return nil, fmt.Errorf("create prefs schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Get(ctx context.Context, sessionID string) (Preferences, error) {
	var theme, lang string
	err := s.db.QueryRowContext(ctx,
		`SELECT theme, lang FROM preferences WHERE session_id = ?`, sessionID,
	).Scan(&theme, &lang)
	if errors.Is(err, sql.ErrNoRows) {
		return Preferences{}, ErrNotFound
	}
	if err != nil {
		return Preferences{}, fmt.Errorf("get prefs %s: %w", sessionID, err)
	}

	return Preferences{
		Theme: ParseTheme(theme),
		Lang:  i18n.Normalize(lang),
	}, nil
}

func (s *SQLite) Put(ctx context.Context, sessionID string, p Preferences) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO preferences (session_id, theme, lang, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(session_id) DO UPDATE SET
			theme = excluded.theme,
			lang = excluded.lang,
			updated_at = excluded.updated_at`,
		sessionID, string(p.Theme), string(p.Lang), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("put prefs %s: %w", sessionID, err)
	}
	return nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
