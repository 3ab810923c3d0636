package prefs

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/lotsize/i18n"
)

func newTestSQLite(t *testing.T) (*SQLite, string) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "prefs.db")

	s, err := NewSQLite(path)
	require.NoError(t, err)

	return s, path
}

func TestSQLiteSchemaCreated(t *testing.T) {
	t.Parallel()

	s, path := newTestSQLite(t)
	require.NoError(t, s.Close())

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='preferences'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "preferences", name)
}

func TestSQLiteGetMissing(t *testing.T) {
	t.Parallel()

	s, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = s.Close() })

	_, err := s.Get(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLitePutAndGet(t *testing.T) {
	t.Parallel()

	s, path := newTestSQLite(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "S1", Preferences{Theme: Dark, Lang: i18n.FR}))
	got, err := s.Get(ctx, "S1")
	require.NoError(t, err)
	assert.Equal(t, Preferences{Theme: Dark, Lang: i18n.FR}, got)

	// upsert
	require.NoError(t, s.Put(ctx, "S1", Preferences{Theme: Light, Lang: i18n.EN}))
	got, err = s.Get(ctx, "S1")
	require.NoError(t, err)
	assert.Equal(t, Preferences{Theme: Light, Lang: i18n.EN}, got)
	require.NoError(t, s.Close())

	// survives reopen and keeps a single row
	s2, err := NewSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s2.Close() })

	got, err = s2.Get(ctx, "S1")
	require.NoError(t, err)
	assert.Equal(t, Light, got.Theme)

	var n int
	require.NoError(t, s2.db.QueryRow(`SELECT COUNT(*) FROM preferences`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestSQLiteNormalizesStoredValues(t *testing.T) {
	t.Parallel()

	s, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = s.Close() })

	_, err := s.db.Exec(`INSERT INTO preferences (session_id, theme, lang, updated_at) VALUES ('S2', 'purple', 'klingon', '2024-01-01')`)
	require.NoError(t, err)

	got, err := s.Get(context.Background(), "S2")
	require.NoError(t, err)
	assert.Equal(t, Light, got.Theme)
	assert.Equal(t, i18n.EN, got.Lang)
}

func TestSQLiteErrors(t *testing.T) {
	t.Parallel()

	diskErr := errors.New("disk I/O error")

	tests := []struct {
		name      string
		mockSetup func(mock sqlmock.Sqlmock)
		call      func(s *SQLite) error
	}{
		{
			name: "get fails",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT theme, lang FROM preferences`).
					WithArgs("S1").
					WillReturnError(diskErr)
			},
			call: func(s *SQLite) error {
				_, err := s.Get(context.Background(), "S1")
				return err
			},
		},
		{
			name: "put fails",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO preferences`).
					WithArgs("S1", "dark", "fr", sqlmock.AnyArg()).
					WillReturnError(diskErr)
			},
			call: func(s *SQLite) error {
				return s.Put(context.Background(), "S1", Preferences{Theme: Dark, Lang: i18n.FR})
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			mock.ExpectExec(`CREATE TABLE IF NOT EXISTS preferences`).
				WillReturnResult(sqlmock.NewResult(0, 0))
			tt.mockSetup(mock)

			s, err := newSQLiteDB(db)
			require.NoError(t, err)

			err = tt.call(s)
			require.Error(t, err)
			assert.ErrorIs(t, err, diskErr)
			assert.NotErrorIs(t, err, ErrNotFound)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSQLiteSchemaFailure(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS preferences`).
		WillReturnError(errors.New("read-only database"))

	_, err = newSQLiteDB(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create prefs schema")
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	s := NewMemory()
	ctx := context.Background()

	_, err := s.Get(ctx, "S1")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Put(ctx, "S1", Preferences{Theme: Dark, Lang: i18n.FR}))
	got, err := s.Get(ctx, "S1")
	require.NoError(t, err)
	assert.Equal(t, Dark, got.Theme)
	assert.NoError(t, s.Close())
}

func TestTheme(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Dark, ParseTheme("dark"))
	assert.Equal(t, Light, ParseTheme("light"))
	assert.Equal(t, Light, ParseTheme(""))
	assert.Equal(t, Dark, Light.Toggle())
	assert.Equal(t, Light, Dark.Toggle())
}

var (
	_ Store = (*SQLite)(nil)
	_ Store = (*Memory)(nil)
)
