package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/rustyeddy/lotsize/i18n"
	"github.com/rustyeddy/lotsize/prefs"
	"github.com/rustyeddy/lotsize/risk"
	"github.com/rustyeddy/lotsize/schedule"
)

// preferences returns the stored flags for the session, or defaults
// derived from config and request headers.
func (s *Server) preferences(r *http.Request, sid string) prefs.Preferences {
	p, err := s.store.Get(r.Context(), sid)
	if err == nil {
		return p
	}
	if !errors.Is(err, prefs.ErrNotFound) {
		s.log.Warn("load preferences", zap.String("session", sid), zap.Error(err))
	}
	return s.defaultPrefs(r)
}

func (s *Server) defaultPrefs(r *http.Request) prefs.Preferences {
	p := prefs.Preferences{Theme: s.defaultTheme, Lang: s.defaultLang}
	if lang, ok := i18n.Match(r.Header.Get("Accept-Language")); ok {
		p.Lang = lang
	}
	if strings.Trim(r.Header.Get("Sec-CH-Prefers-Color-Scheme"), `"`) == "dark" {
		p.Theme = prefs.Dark
	}
	return p
}

func (s *Server) savePrefs(ctx context.Context, sid string, p prefs.Preferences) {
	if err := s.store.Put(ctx, sid, p); err != nil {
		s.log.Warn("save preferences", zap.String("session", sid), zap.Error(err))
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	sid := s.sessionID(w, r)
	page := s.newPage(s.preferences(r, sid), formValues{})
	s.render(w, http.StatusOK, page)
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	sid := s.sessionID(w, r)
	p := s.preferences(r, sid)
	form := formFromRequest(r)
	in := form.input()
	page := s.newPage(p, form)

	var out risk.Outcome
	task := s.sessions.scheduler(sid).Schedule(func() {
		var err error
		out, err = s.compute(in, s.catalog)
		if err != nil {
			s.log.Error("calculation failed", zap.Error(err))
		}
		s.metrics.ObserveOutcome(in.Instrument, out)
	})

	err := task.Wait(r.Context())
	switch {
	case err == nil:
		page.Result = resultFor(p.Lang, out)
		s.render(w, http.StatusOK, page)
	case errors.Is(err, schedule.ErrSuperseded):
		s.metrics.Superseded()
		page.Result = &resultView{Message: i18n.Translate(p.Lang, i18n.Calculating)}
		s.render(w, http.StatusConflict, page)
	default:
		// The client went away; don't compute for nobody.
		task.Cancel()
		s.log.Debug("calculation abandoned", zap.String("session", sid), zap.Error(err))
	}
}

func (s *Server) handleTheme(w http.ResponseWriter, r *http.Request) {
	sid := s.sessionID(w, r)
	p := s.preferences(r, sid)
	p.Theme = p.Theme.Toggle()
	s.savePrefs(r.Context(), sid, p)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleLang(w http.ResponseWriter, r *http.Request) {
	sid := s.sessionID(w, r)
	p := s.preferences(r, sid)
	p.Lang = i18n.Toggle(p.Lang)
	s.savePrefs(r.Context(), sid, p)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// SizeResponse is the JSON form of a calculation.
type SizeResponse struct {
	OK         bool    `json:"ok"`
	Lots       float64 `json:"lots,omitempty"`
	Text       string  `json:"text,omitempty"`
	Unit       string  `json:"unit,omitempty"`
	UnitLabel  string  `json:"unit_label,omitempty"`
	RiskAmount float64 `json:"risk_amount,omitempty"`
	RiskPerLot float64 `json:"risk_per_lot,omitempty"`
	Error      string  `json:"error,omitempty"`
	Message    string  `json:"message,omitempty"`
}

// NewSizeResponse renders an outcome in lang.
func NewSizeResponse(lang i18n.Lang, out risk.Outcome) SizeResponse {
	if !out.OK() {
		return SizeResponse{
			Error:   out.Err.String(),
			Message: i18n.ErrorMessage(lang, out.Err),
		}
	}
	f := risk.FormatSize(out.Lots)
	return SizeResponse{
		OK:         true,
		Lots:       out.Lots,
		Text:       f.Text,
		Unit:       f.Unit.String(),
		UnitLabel:  i18n.UnitLabel(lang, f.Unit),
		RiskAmount: out.RiskAmount,
		RiskPerLot: out.RiskPerLot,
	}
}

func (s *Server) handleAPISize(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	form := formValues{
		Balance:    q.Get("balance"),
		RiskType:   q.Get("risk_type"),
		RiskValue:  q.Get("risk_value"),
		StopLoss:   q.Get("stop_loss"),
		Instrument: q.Get("instrument"),
	}
	in := form.input()

	lang := s.defaultLang
	if v := q.Get("lang"); v != "" {
		lang = i18n.Normalize(v)
	} else if l, ok := i18n.Match(r.Header.Get("Accept-Language")); ok {
		lang = l
	}

	out, err := s.compute(in, s.catalog)
	if err != nil {
		s.log.Error("calculation failed", zap.Error(err))
	}
	s.metrics.ObserveOutcome(in.Instrument, out)

	status := http.StatusOK
	if !out.OK() {
		status = http.StatusUnprocessableEntity
		if out.Err == risk.Unknown {
			status = http.StatusInternalServerError
		}
	}
	writeJSON(w, status, NewSizeResponse(lang, out))
}

type instrumentJSON struct {
	Key                    string            `json:"key"`
	Name                   string            `json:"name"`
	Names                  map[string]string `json:"names,omitempty"`
	PipValuePerStandardLot float64           `json:"pip_value_per_standard_lot"`
}

func (s *Server) handleAPIInstruments(w http.ResponseWriter, r *http.Request) {
	list := make([]instrumentJSON, 0, len(s.catalog))
	for _, k := range s.catalog.Keys() {
		spec := s.catalog[k]
		list = append(list, instrumentJSON{
			Key:                    k,
			Name:                   spec.Name,
			Names:                  spec.Names,
			PipValuePerStandardLot: spec.PipValuePerStandardLot,
		})
	}
	writeJSON(w, http.StatusOK, list)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
