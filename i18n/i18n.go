// Package i18n holds the calculator's user-facing strings and maps the
// sizing error and unit enums onto them.
package i18n

import (
	"strings"

	"github.com/rustyeddy/lotsize/risk"
)

// Lang is a two-letter language code.
type Lang string

const (
	EN Lang = "en"
	FR Lang = "fr"

	Default = EN
)

// Supported returns the languages that have a translation table.
func Supported() []Lang {
	return []Lang{EN, FR}
}

// IsSupported reports whether lang has a translation table.
func IsSupported(lang Lang) bool {
	_, ok := translations[lang]
	return ok
}

// Normalize turns "fr-CA", "FR" or an Accept-Language header value into
// a supported Lang, falling back to Default.
func Normalize(s string) Lang {
	if lang, ok := Match(s); ok {
		return lang
	}
	return Default
}

// Match returns the first supported language in s, if any.
func Match(s string) (Lang, bool) {
	for _, part := range strings.Split(s, ",") {
		tag := strings.TrimSpace(part)
		if i := strings.IndexByte(tag, ';'); i >= 0 {
			tag = tag[:i]
		}
		if i := strings.IndexAny(tag, "-_"); i >= 0 {
			tag = tag[:i]
		}
		lang := Lang(strings.ToLower(tag))
		if IsSupported(lang) {
			return lang, true
		}
	}
	return "", false
}

// Toggle flips between English and French.
func Toggle(lang Lang) Lang {
	if lang == EN {
		return FR
	}
	return EN
}

// Translate looks key up in lang, then in Default. Missing keys come
// back as "MISSING_KEY: <key>" so they are visible on the page.
func Translate(lang Lang, key Key) string {
	if s, ok := translations[lang][key]; ok {
		return s
	}
	if s, ok := translations[Default][key]; ok {
		return s
	}
	return "MISSING_KEY: " + string(key)
}

// ErrorKey returns the message key for a sizing failure.
func ErrorKey(k risk.ErrorKind) Key {
	switch k {
	case risk.InvalidBalance:
		return ErrorBalancePositive
	case risk.InvalidRiskValue:
		return ErrorRiskValuePositive
	case risk.InvalidStopLoss:
		return ErrorStopLossPositive
	case risk.InstrumentNotSelected:
		return ErrorSelectInstrument
	case risk.InvalidInstrumentPipValue:
		return ErrorInstrumentPip
	case risk.RiskPercentageOutOfRange:
		return ErrorRiskPercentRange
	case risk.RiskFixedExceedsBalance:
		return ErrorRiskFixedRange
	case risk.InvalidRiskType:
		return ErrorRiskType
	case risk.NonPositiveRiskPerLot:
		return ErrorRiskPerLot
	case risk.InvalidResult:
		return ErrorResultInvalid
	default:
		return UnknownError
	}
}

// ErrorMessage is the translated text for a sizing failure.
func ErrorMessage(lang Lang, k risk.ErrorKind) string {
	return Translate(lang, ErrorKey(k))
}

// UnitKey returns the label key for a lot tier.
func UnitKey(u risk.UnitKind) Key {
	switch u {
	case risk.Mini:
		return LotUnitMini
	case risk.Micro:
		return LotUnitMicro
	case risk.SubMicro:
		return LotUnitSubMicro
	default:
		return LotUnitStandard
	}
}

// UnitLabel is the translated label for a lot tier.
func UnitLabel(lang Lang, u risk.UnitKind) string {
	return Translate(lang, UnitKey(u))
}

// RiskValuePlaceholder picks the risk input hint for the selected risk type.
func RiskValuePlaceholder(lang Lang, t risk.RiskType) string {
	if t == risk.Percentage {
		return Translate(lang, PlaceholderRiskValuePercent)
	}
	return Translate(lang, PlaceholderRiskValueFixed)
}

// ThemeAria is the aria label for the theme button; it describes what a
// click will do, so dark mode asks to activate light mode.
func ThemeAria(lang Lang, dark bool) string {
	if dark {
		return Translate(lang, AriaThemeButtonLight)
	}
	return Translate(lang, AriaThemeButtonDark)
}

// Translator binds a language for templates.
type Translator struct {
	Lang Lang
}

// T translates key (as a plain string so templates can call it).
func (t Translator) T(key string) string {
	return Translate(t.Lang, Key(key))
}
