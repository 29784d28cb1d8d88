package models

// ProfitKind sub-classifies a "RESULTADO"/"LUCRO" row. All kinds found in a
// sheet are retained; consumers pick one via ResolveProfit.
type ProfitKind string

const (
	ProfitGross        ProfitKind = "GROSS"
	ProfitOperational  ProfitKind = "OPERATIONAL"
	ProfitWithNonOp    ProfitKind = "WITH_NON_OP"
	ProfitWithoutNonOp ProfitKind = "WITHOUT_NON_OP"
	ProfitNetFinal     ProfitKind = "NET_FINAL"
	ProfitNetAdjusted  ProfitKind = "NET_ADJUSTED"
	ProfitOther        ProfitKind = "OTHER"
)

// profitFallback is the documented order in which consumers should pick a
// profit figure when a sheet reports more than one kind.
var profitFallback = []ProfitKind{
	ProfitOperational,
	ProfitWithNonOp,
	ProfitNetFinal,
	ProfitOther,
	ProfitWithoutNonOp,
	ProfitNetAdjusted,
	ProfitGross,
}

// ResolveProfit walks the fallback order and returns the first profit kind
// present in the map. ok is false when the map has none of the known kinds.
func ResolveProfit(profits map[ProfitKind]float64) (ProfitKind, float64, bool) {
	for _, kind := range profitFallback {
		if v, ok := profits[kind]; ok {
			return kind, v, true
		}
	}
	return "", 0, false
}
