// prefs/prefs.go
package prefs

import (
	"context"
	"errors"

	"github.com/rustyeddy/lotsize/i18n"
)

var ErrNotFound = errors.New("prefs: not found")

type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// ParseTheme returns Dark for "dark" and Light for anything else.
func ParseTheme(s string) Theme {
	if s == string(Dark) {
		return Dark
	}
	return Light
}

// Toggle flips light and dark.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Preferences are the only per-user state that is kept between requests.
type Preferences struct {
	Theme Theme
	Lang  i18n.Lang
}

// Store persists Preferences by session id.
type Store interface {
	Get(ctx context.Context, sessionID string) (Preferences, error)
	Put(ctx context.Context, sessionID string, p Preferences) error
	Close() error
}
