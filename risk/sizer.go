package risk

import (
	"fmt"
	"math"
	"strings"

	"github.com/rustyeddy/lotsize/market"
)

// RiskType selects how Input.RiskValue is read.
type RiskType int

const (
	// RiskTypeUnknown is anything that did not parse; the sizer rejects it.
	RiskTypeUnknown RiskType = iota
	Percentage
	Fixed
)

// ParseRiskType maps "percentage" / "fixed" (any case) to a RiskType.
func ParseRiskType(s string) RiskType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "percentage":
		return Percentage
	case "fixed":
		return Fixed
	default:
		return RiskTypeUnknown
	}
}

func (t RiskType) String() string {
	switch t {
	case Percentage:
		return "percentage"
	case Fixed:
		return "fixed"
	default:
		return "unknown"
	}
}

// ErrorKind is the closed set of reasons a sizing request can fail.
// The zero value means no error.
type ErrorKind int

const (
	None ErrorKind = iota
	InvalidBalance
	InvalidRiskValue
	InvalidStopLoss
	InstrumentNotSelected
	InvalidInstrumentPipValue
	RiskPercentageOutOfRange
	RiskFixedExceedsBalance
	InvalidRiskType
	NonPositiveRiskPerLot
	InvalidResult
	// Unknown is reserved for defects, never for bad input.
	Unknown
)

var errorKindNames = [...]string{
	None:                      "none",
	InvalidBalance:            "invalid_balance",
	InvalidRiskValue:          "invalid_risk_value",
	InvalidStopLoss:           "invalid_stop_loss",
	InstrumentNotSelected:     "instrument_not_selected",
	InvalidInstrumentPipValue: "invalid_instrument_pip_value",
	RiskPercentageOutOfRange:  "risk_percentage_out_of_range",
	RiskFixedExceedsBalance:   "risk_fixed_exceeds_balance",
	InvalidRiskType:           "invalid_risk_type",
	NonPositiveRiskPerLot:     "non_positive_risk_per_lot",
	InvalidResult:             "invalid_result",
	Unknown:                   "unknown",
}

// String returns the stable identifier used in JSON and metric labels.
func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(errorKindNames) {
		return errorKindNames[Unknown]
	}
	return errorKindNames[k]
}

// ErrorKinds lists every failure kind, in validation order, followed by Unknown.
func ErrorKinds() []ErrorKind {
	return []ErrorKind{
		InvalidBalance,
		InvalidRiskValue,
		InvalidStopLoss,
		InstrumentNotSelected,
		InvalidInstrumentPipValue,
		RiskPercentageOutOfRange,
		RiskFixedExceedsBalance,
		InvalidRiskType,
		NonPositiveRiskPerLot,
		InvalidResult,
		Unknown,
	}
}

// Input is one sizing request. Unparseable numbers should be passed as NaN.
type Input struct {
	Balance      float64
	RiskType     RiskType
	RiskValue    float64
	StopLossPips float64
	Instrument   string
}

// Outcome is either a success (Err == None, Lots > 0 and finite) or a
// failure carrying exactly one ErrorKind. RiskAmount and RiskPerLot are
// only set on success.
type Outcome struct {
	Lots       float64
	Err        ErrorKind
	RiskAmount float64
	RiskPerLot float64
}

// OK reports whether the outcome is a success.
func (o Outcome) OK() bool {
	return o.Err == None
}

// Failure builds a failed outcome.
func Failure(k ErrorKind) Outcome {
	return Outcome{Err: k}
}

// ComputePositionSize returns the position size in standard lots.
// Checks run in a fixed order and the first one that fails is reported.
func ComputePositionSize(in Input, cat market.Catalog) Outcome {
	if !finitePositive(in.Balance) {
		return Failure(InvalidBalance)
	}
	if !finitePositive(in.RiskValue) {
		return Failure(InvalidRiskValue)
	}
	if !finitePositive(in.StopLossPips) {
		return Failure(InvalidStopLoss)
	}
	if in.Instrument == "" {
		return Failure(InstrumentNotSelected)
	}

	spec, ok := cat.Lookup(in.Instrument)
	if !ok || !(spec.PipValuePerStandardLot > 0) {
		return Failure(InvalidInstrumentPipValue)
	}

	var riskAmt float64
	switch in.RiskType {
	case Percentage:
		if in.RiskValue > 100 {
			return Failure(RiskPercentageOutOfRange)
		}
		riskAmt = PercentOf(in.Balance, in.RiskValue)
	case Fixed:
		if in.RiskValue > in.Balance {
			return Failure(RiskFixedExceedsBalance)
		}
		riskAmt = in.RiskValue
	default:
		return Failure(InvalidRiskType)
	}

	perLot := RiskPerLot(in.StopLossPips, spec.PipValuePerStandardLot)
	if perLot <= 0 {
		return Failure(NonPositiveRiskPerLot)
	}

	lots := riskAmt / perLot
	if math.IsNaN(lots) || math.IsInf(lots, 0) || lots <= 0 {
		return Failure(InvalidResult)
	}

	return Outcome{
		Lots:       lots,
		RiskAmount: riskAmt,
		RiskPerLot: perLot,
	}
}

// SafeCompute runs ComputePositionSize and turns a panic into an Unknown
// failure. The returned error describes the panic so callers can log it.
func SafeCompute(in Input, cat market.Catalog) (out Outcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = Failure(Unknown)
			err = fmt.Errorf("position sizing panicked: %v", r)
		}
	}()
	return compute(in, cat), nil
}

// compute is swapped out in tests.
var compute = ComputePositionSize
