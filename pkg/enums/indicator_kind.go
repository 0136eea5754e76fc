package enums

// IndicatorKind classifies a market indicator card.
type IndicatorKind string

const (
	IndicatorOpportunity IndicatorKind = "opportunity"
	IndicatorTrend       IndicatorKind = "trend"
	IndicatorAlert       IndicatorKind = "alert"
)

func (k IndicatorKind) IsValid() bool {
	switch k {
	case IndicatorOpportunity, IndicatorTrend, IndicatorAlert:
		return true
	}
	return false
}
