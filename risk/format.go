package risk

import (
	"math"
	"math/big"
	"strings"
)

// UnitKind is the lot tier a size is displayed in.
type UnitKind int

const (
	Standard UnitKind = iota
	Mini
	Micro
	SubMicro
)

func (u UnitKind) String() string {
	switch u {
	case Mini:
		return "mini"
	case Micro:
		return "micro"
	case SubMicro:
		return "sub_micro"
	default:
		return "standard"
	}
}

// FormattedSize is a lot size scaled into its display tier.
type FormattedSize struct {
	Text string
	Unit UnitKind
}

const (
	miniLot  = 0.1
	microLot = 0.01
)

// FormatSize scales lots into standard, mini, micro or sub-micro units.
// Non-positive and non-finite sizes render as "0" standard lots.
func FormatSize(lots float64) FormattedSize {
	switch {
	case math.IsNaN(lots) || math.IsInf(lots, 0) || lots <= 0:
		return FormattedSize{Text: "0", Unit: Standard}
	case lots >= 1:
		return FormattedSize{Text: fixed(lots, 2), Unit: Standard}
	case lots >= miniLot:
		return FormattedSize{Text: fixed(lots/miniLot, 2), Unit: Mini}
	case lots >= microLot:
		return FormattedSize{Text: fixed(lots/microLot, 2), Unit: Micro}
	default:
		return FormattedSize{Text: fixed(lots, 4), Unit: SubMicro}
	}
}

// fixed renders x with prec fractional digits, rounding the exact binary
// value half up (1.125 -> "1.13", while 1.005 is below the tie -> "1.00").
func fixed(x float64, prec int) string {
	sign := ""
	if x < 0 {
		sign, x = "-", -x
	}

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(prec)), nil)
	v := new(big.Float).SetPrec(256).SetFloat64(x)
	v.Mul(v, new(big.Float).SetInt(scale))
	v.Add(v, big.NewFloat(0.5))
	n, _ := v.Int(nil)

	digits := n.String()
	if prec == 0 {
		return sign + digits
	}
	if len(digits) <= prec {
		digits = strings.Repeat("0", prec-len(digits)+1) + digits
	}
	cut := len(digits) - prec
	return sign + digits[:cut] + "." + digits[cut:]
}
