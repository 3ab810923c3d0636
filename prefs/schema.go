// prefs/schema.go
package prefs

const Schema = `
CREATE TABLE IF NOT EXISTS preferences (
	session_id TEXT PRIMARY KEY,
	theme TEXT NOT NULL,
	lang TEXT NOT NULL,
	updated_at DATETIME NOT NULL
);
`
