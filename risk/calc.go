package risk

import "math"

func finitePositive(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) && x > 0
}

// PercentOf returns pct percent of balance, e.g. PercentOf(10000, 1) == 100.
func PercentOf(balance, pct float64) float64 {
	return (balance * pct) / 100
}

// RiskPerLot is the money lost on one standard lot if price moves
// stopPips against the position.
func RiskPerLot(stopPips, pipValuePerStandardLot float64) float64 {
	return stopPips * pipValuePerStandardLot
}

// RiskPct returns risk as a fraction of balance (0.01 == 1%).
func RiskPct(riskAmount, balance float64) float64 {
	if balance <= 0 {
		return math.Inf(1)
	}
	return riskAmount / balance
}
