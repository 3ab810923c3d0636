package i18n

import (
	"testing"

	"github.com/rustyeddy/lotsize/risk"
	"github.com/stretchr/testify/assert"
)

func TestTablesHaveSameKeys(t *testing.T) {
	t.Parallel()

	for key := range translations[EN] {
		_, ok := translations[FR][key]
		assert.True(t, ok, "fr is missing %s", key)
	}
	for key := range translations[FR] {
		_, ok := translations[EN][key]
		assert.True(t, ok, "en is missing %s", key)
	}
}

func TestTranslateFallback(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Forex Risk Calculator", Translate(EN, MainTitle))
	assert.Equal(t, "Calculateur de Risque Forex", Translate(FR, MainTitle))
	assert.Equal(t, "Forex Risk Calculator", Translate(Lang("de"), MainTitle))
	assert.Equal(t, "MISSING_KEY: nope", Translate(FR, Key("nope")))
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Lang
	}{
		{"en", EN},
		{"fr", FR},
		{"FR", FR},
		{"fr-CA", FR},
		{"fr_BE", FR},
		{"de-DE,fr;q=0.8,en;q=0.5", FR},
		{"es", EN},
		{"", EN},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), tt.in)
	}
}

func TestMatch(t *testing.T) {
	t.Parallel()

	lang, ok := Match("fr-FR,fr;q=0.9")
	assert.True(t, ok)
	assert.Equal(t, FR, lang)

	_, ok = Match("de-DE")
	assert.False(t, ok)
	_, ok = Match("")
	assert.False(t, ok)
}

func TestToggle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, FR, Toggle(EN))
	assert.Equal(t, EN, Toggle(FR))
	assert.Equal(t, EN, Toggle(Lang("xx")))
}

func TestEveryErrorKindIsTranslated(t *testing.T) {
	t.Parallel()

	for _, lang := range Supported() {
		seen := map[string]risk.ErrorKind{}
		for _, k := range risk.ErrorKinds() {
			msg := ErrorMessage(lang, k)
			assert.NotContains(t, msg, "MISSING_KEY", "%s/%s", lang, k)
			prev, dup := seen[msg]
			assert.False(t, dup, "%s and %s share a message", prev, k)
			seen[msg] = k
		}
	}
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Please select an instrument.", ErrorMessage(EN, risk.InstrumentNotSelected))
	assert.Equal(t, "Le % de risque ne peut pas dépasser 100%.", ErrorMessage(FR, risk.RiskPercentageOutOfRange))
	assert.Equal(t, "An unknown error occurred.", ErrorMessage(EN, risk.Unknown))
	assert.Equal(t, "An unknown error occurred.", ErrorMessage(EN, risk.ErrorKind(77)))
}

func TestUnitLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Standard Lot(s)", UnitLabel(EN, risk.Standard))
	assert.Equal(t, "Mini Lot(s)", UnitLabel(EN, risk.Mini))
	assert.Equal(t, "Micro Lot(s)", UnitLabel(FR, risk.Micro))
	assert.Equal(t, "Lot(s) Standard (sub-micro)", UnitLabel(FR, risk.SubMicro))
}

func TestRiskValuePlaceholder(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "e.g., 1 (for 1%)", RiskValuePlaceholder(EN, risk.Percentage))
	assert.Equal(t, "ex : 100 (pour 100$)", RiskValuePlaceholder(FR, risk.Fixed))
}

func TestThemeAria(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Activate light mode", ThemeAria(EN, true))
	assert.Equal(t, "Activer le mode sombre", ThemeAria(FR, false))
}

func TestTranslatorT(t *testing.T) {
	t.Parallel()

	tr := Translator{Lang: FR}
	assert.Equal(t, "Calcul en cours...", tr.T("calculating"))
}
