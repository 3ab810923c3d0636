package web

import (
	"bytes"
	"math"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/rustyeddy/lotsize/i18n"
	"github.com/rustyeddy/lotsize/prefs"
	"github.com/rustyeddy/lotsize/risk"
)

// formValues echoes what the visitor typed so the form is refilled.
type formValues struct {
	Balance    string
	RiskType   string
	RiskValue  string
	StopLoss   string
	Instrument string
}

func formFromRequest(r *http.Request) formValues {
	return formValues{
		Balance:    r.FormValue("balance"),
		RiskType:   r.FormValue("riskType"),
		RiskValue:  r.FormValue("riskValue"),
		StopLoss:   r.FormValue("stopLoss"),
		Instrument: r.FormValue("instrument"),
	}
}

func (f formValues) input() risk.Input {
	return risk.Input{
		Balance:      parseNumber(f.Balance),
		RiskType:     risk.ParseRiskType(f.RiskType),
		RiskValue:    parseNumber(f.RiskValue),
		StopLossPips: parseNumber(f.StopLoss),
		Instrument:   strings.TrimSpace(f.Instrument),
	}
}

// parseNumber returns NaN for anything that is not a number so the
// sizer rejects it with the matching error.
func parseNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

type instrumentOption struct {
	Key      string
	Label    string
	Selected bool
}

type resultView struct {
	Class   string // "success", "error" or "" while pending
	Value   string
	Unit    string
	Message string
}

// pageState is everything the template needs for one render.
type pageState struct {
	Lang i18n.Lang
	Dark bool
	T    i18n.Translator

	Form        formValues
	Percentage  bool
	Instruments []instrumentOption

	RiskValuePlaceholder string
	ThemeIcon            string
	ThemeAria            string
	LangButton           string

	Result *resultView
}

func (s *Server) newPage(p prefs.Preferences, form formValues) pageState {
	if form.RiskType == "" {
		form.RiskType = risk.Percentage.String()
	}
	rt := risk.ParseRiskType(form.RiskType)
	dark := p.Theme == prefs.Dark

	page := pageState{
		Lang:                 p.Lang,
		Dark:                 dark,
		T:                    i18n.Translator{Lang: p.Lang},
		Form:                 form,
		Percentage:           rt != risk.Fixed,
		RiskValuePlaceholder: i18n.RiskValuePlaceholder(p.Lang, rt),
		ThemeAria:            i18n.ThemeAria(p.Lang, dark),
		LangButton:           strings.ToUpper(string(i18n.Toggle(p.Lang))),
	}
	if dark {
		page.ThemeIcon = "☀️"
	} else {
		page.ThemeIcon = "🌙"
	}

	for _, k := range s.catalog.Keys() {
		spec := s.catalog[k]
		page.Instruments = append(page.Instruments, instrumentOption{
			Key:      k,
			Label:    k + " (" + spec.DisplayName(string(p.Lang)) + ")",
			Selected: k == form.Instrument,
		})
	}
	return page
}

func resultFor(lang i18n.Lang, out risk.Outcome) *resultView {
	if !out.OK() {
		return &resultView{Class: "error", Message: i18n.ErrorMessage(lang, out.Err)}
	}
	f := risk.FormatSize(out.Lots)
	return &resultView{
		Class: "success",
		Value: f.Text,
		Unit:  i18n.UnitLabel(lang, f.Unit),
	}
}

func (s *Server) render(w http.ResponseWriter, status int, page pageState) {
	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, "index.html", page); err != nil {
		s.log.Error("render page", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
