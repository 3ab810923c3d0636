package cmd

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/lotsize/web"
)

// run executes the root command with fresh flag values.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cfgFile, debug = "", false
	calcBalance, calcRisk, calcStopLoss, calcInstrument = "", "", "", ""
	calcRiskType, calcLang, calcJSON = "percentage", "en", false
	configInitOutput, configValidatePath = "lotsize.yaml", ""

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCalcTable(t *testing.T) {
	out, _, err := run(t, "calc", "--balance", "10000", "--risk", "1", "--stop-loss", "50", "--instrument", "xauusd")
	require.NoError(t, err)

	assert.Contains(t, out, "Forex Risk Calculator")
	assert.Contains(t, out, "XAUUSD (Gold)")
	assert.Contains(t, out, "100.00")
	assert.Contains(t, out, "1.00%")
	assert.NotContains(t, out, "0.01%")
	assert.Contains(t, out, "2.00 Mini Lot(s)")
}

func TestCalcTableFrench(t *testing.T) {
	out, _, err := run(t, "calc", "-b", "11250", "-r", "1", "-s", "10", "-i", "XAUUSD", "-l", "fr")
	require.NoError(t, err)

	assert.Contains(t, out, "XAUUSD (Or)")
	assert.Contains(t, out, "1.13 Lot(s) Standard")
}

func TestCalcJSON(t *testing.T) {
	out, _, err := run(t, "calc", "-b", "5000", "-t", "fixed", "-r", "75", "-s", "300", "-i", "BTCUSD", "--json")
	require.NoError(t, err)

	var resp web.SizeResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.True(t, resp.OK)
	assert.InDelta(t, 0.25, resp.Lots, 1e-12)
	assert.Equal(t, "2.50", resp.Text)
	assert.Equal(t, "mini", resp.Unit)
}

func TestCalcRejected(t *testing.T) {
	_, stderr, err := run(t, "calc", "--balance", "10000", "--risk", "1", "--stop-loss", "50", "--lang", "fr")
	require.ErrorIs(t, err, errRejected)
	assert.Contains(t, stderr, "Veuillez sélectionner un instrument.")

	out, _, err := run(t, "calc", "--risk", "1", "--stop-loss", "50", "--instrument", "XAUUSD", "--json")
	require.ErrorIs(t, err, errRejected)

	var resp web.SizeResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.False(t, resp.OK)
	assert.Equal(t, "invalid_balance", resp.Error)
}

func TestInstruments(t *testing.T) {
	out, _, err := run(t, "instruments")
	require.NoError(t, err)
	assert.Contains(t, out, "XAUUSD")
	assert.Contains(t, out, "Gold")
	assert.Contains(t, out, "BTCUSD")
}

func TestConfigInitAndValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lotsize.yaml")

	out, _, err := run(t, "config", "init", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	out, _, err = run(t, "config", "validate", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration valid")
	assert.Contains(t, out, "Instruments: 2")

	// the generated file also drives calc
	_, _, err = run(t, "--config", path, "calc", "-b", "10000", "-r", "1", "-s", "50", "-i", "XAUUSD")
	assert.NoError(t, err)
}

func TestConfigValidateMissingFile(t *testing.T) {
	_, _, err := run(t, "config", "validate", "-f", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "lotsize version "+version+"\n", out)
}

func TestNewLogger(t *testing.T) {
	for _, d := range []bool{false, true} {
		l, err := newLogger(d)
		require.NoError(t, err)
		assert.NotNil(t, l)
	}
}
