package web

import (
	"net/http"
	"sync"
	"time"

	"github.com/rustyeddy/lotsize/pkg/id"
	"github.com/rustyeddy/lotsize/schedule"
)

const (
	sessionCookie = "lotsize_session"
	sessionMaxAge = 365 * 24 * time.Hour
	sessionIdle   = 30 * time.Minute
)

// sessions keeps one Scheduler per browser so a resubmission only
// cancels that browser's own pending calculation.
type sessions struct {
	delay time.Duration

	mu sync.Mutex
	m  map[string]*session
}

type session struct {
	sched *schedule.Scheduler
	seen  time.Time
}

func newSessions(delay time.Duration) *sessions {
	return &sessions{delay: delay, m: make(map[string]*session)}
}

// scheduler returns the session's Scheduler and marks the session as seen,
// so prune keeps it for at least another idle period.
func (ss *sessions) scheduler(sessionID string) *schedule.Scheduler {
	return ss.schedulerAt(sessionID, time.Now())
}

func (ss *sessions) schedulerAt(sessionID string, now time.Time) *schedule.Scheduler {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	e, ok := ss.m[sessionID]
	if !ok {
		e = &session{sched: schedule.New(ss.delay)}
		ss.m[sessionID] = e
	}
	e.seen = now
	return e.sched
}

// prune forgets sessions that have nothing pending and were last seen
// more than idle before now.
func (ss *sessions) prune(now time.Time, idle time.Duration) int {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	n := 0
	for k, e := range ss.m {
		if !e.sched.Pending() && now.Sub(e.seen) > idle {
			delete(ss.m, k)
			n++
		}
	}
	return n
}

func (ss *sessions) len() int {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return len(ss.m)
}

// sessionID returns the caller's session id, issuing a new cookie when
// the request has none or carries garbage.
func (s *Server) sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && id.Valid(c.Value) {
		return c.Value
	}

	sid := s.ids.New()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    sid,
		Path:     "/",
		MaxAge:   int(sessionMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	// Make the id visible to the rest of this request.
	r.AddCookie(&http.Cookie{Name: sessionCookie, Value: sid})
	return sid
}
