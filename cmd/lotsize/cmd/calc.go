package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/lotsize/config"
	"github.com/rustyeddy/lotsize/i18n"
	"github.com/rustyeddy/lotsize/risk"
	"github.com/rustyeddy/lotsize/web"
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Calculate a position size",
	Long: `Calculate the position size for one trade.

The risk is either a percentage of the balance (0 < risk <= 100) or a fixed
amount no larger than the balance. The exit status is non-zero when the
inputs are rejected.

Examples:
  lotsize calc --balance 10000 --risk 1 --stop-loss 50 --instrument XAUUSD
  lotsize calc --balance 5000 --risk-type fixed --risk 75 --stop-loss 300 --instrument BTCUSD --json
  lotsize calc --balance 10000 --risk 2 --stop-loss 40 --instrument XAUUSD --lang fr`,
	Args: cobra.NoArgs,
	RunE: runCalc,
}

var (
	calcBalance    string
	calcRiskType   string
	calcRisk       string
	calcStopLoss   string
	calcInstrument string
	calcLang       string
	calcJSON       bool
)

// errRejected is returned after the rejection has been printed.
var errRejected = errors.New("calculation rejected")

func init() {
	rootCmd.AddCommand(calcCmd)

	calcCmd.Flags().StringVarP(&calcBalance, "balance", "b", "", "account balance")
	calcCmd.Flags().StringVarP(&calcRiskType, "risk-type", "t", "percentage", "percentage or fixed")
	calcCmd.Flags().StringVarP(&calcRisk, "risk", "r", "", "risk value (percent or amount)")
	calcCmd.Flags().StringVarP(&calcStopLoss, "stop-loss", "s", "", "stop loss in pips")
	calcCmd.Flags().StringVarP(&calcInstrument, "instrument", "i", "", "instrument key, e.g. XAUUSD")
	calcCmd.Flags().StringVarP(&calcLang, "lang", "l", string(i18n.Default), "output language (en or fr)")
	calcCmd.Flags().BoolVar(&calcJSON, "json", false, "print JSON instead of a table")
}

func runCalc(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	in := risk.Input{
		Balance:      parseFlagNumber(calcBalance),
		RiskType:     risk.ParseRiskType(calcRiskType),
		RiskValue:    parseFlagNumber(calcRisk),
		StopLossPips: parseFlagNumber(calcStopLoss),
		Instrument:   strings.ToUpper(strings.TrimSpace(calcInstrument)),
	}
	lang := i18n.Normalize(calcLang)

	out, err := risk.SafeCompute(in, cfg.Instruments)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if calcJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(web.NewSizeResponse(lang, out)); err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		if !out.OK() {
			return errRejected
		}
		return nil
	}

	if !out.OK() {
		fmt.Fprintf(cmd.ErrOrStderr(), "✗ %s\n", i18n.ErrorMessage(lang, out.Err))
		return errRejected
	}

	spec := cfg.Instruments[in.Instrument]
	f := risk.FormatSize(out.Lots)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(i18n.Translate(lang, i18n.MainTitle))
	t.SetStyle(table.StyleRounded)
	t.AppendRows([]table.Row{
		{"Instrument", fmt.Sprintf("%s (%s)", in.Instrument, spec.DisplayName(string(lang)))},
		{"Balance", fmt.Sprintf("%.2f", in.Balance)},
		{"Risk amount", fmt.Sprintf("%.2f", out.RiskAmount)},
		{"Risk", fmt.Sprintf("%.2f%%", risk.RiskPct(out.RiskAmount, in.Balance)*100)},
		{"Stop loss", fmt.Sprintf("%g pips", in.StopLossPips)},
		{"Risk per lot", fmt.Sprintf("%.2f", out.RiskPerLot)},
		{"Lots", fmt.Sprintf("%.4f", out.Lots)},
	})
	t.AppendSeparator()
	t.AppendRow(table.Row{i18n.Translate(lang, i18n.ResultHeading), f.Text + " " + i18n.UnitLabel(lang, f.Unit)})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMin: 14, Align: text.AlignLeft},
		{Number: 2, WidthMin: 20, Align: text.AlignRight},
	})
	t.Render()
	return nil
}

// parseFlagNumber maps anything unparseable (including an empty flag) to
// NaN so the sizer reports the matching error.
func parseFlagNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
