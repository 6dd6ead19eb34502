package core

// MaterialVarianceThreshold is the noise floor, in minor units, below which
// a cash variance is treated as handling slop and not surfaced.
const MaterialVarianceThreshold = 50

type ViewFilter string

const (
	ViewAll         ViewFilter = "all"
	ViewOperational ViewFilter = "operational"
	ViewAccounting  ViewFilter = "accounting"
)

// Summary is the full set of derived reconciliation figures for one source
// or for the combined view. Every field is reproducible from SourceClosing
// primitives; nothing here is ever persisted.
type Summary struct {
	BaseCash       int64 `json:"baseCash"`
	SalesCash      int64 `json:"salesCash"`
	SalesCard      int64 `json:"salesCard"`
	SalesTransfer  int64 `json:"salesTransfer"`
	ExpensesTotal  int64 `json:"expensesTotal"`
	TipsTotal      int64 `json:"tipsTotal"`
	CashAuditCount int64 `json:"cashAuditCount"`

	ExpectedCash int64 `json:"expectedCash"`
	Variance     int64 `json:"variance"`
	NetHandover  int64 `json:"netHandover"`
	TotalSales   int64 `json:"totalSales"`
	TotalOutflow int64 `json:"totalOutflow"`

	MaterialVariance bool `json:"materialVariance"`
}

// Summarize derives every figure for one source. A nil source contributes
// zero everywhere; it must never block computing the rest.
func Summarize(s *SourceClosing) Summary {
	if s == nil {
		return Summary{}
	}

	sum := Summary{
		BaseCash:       s.BaseCash,
		SalesCash:      s.SalesCash,
		SalesCard:      s.SalesCard,
		SalesTransfer:  s.SalesTransfer,
		ExpensesTotal:  s.ExpensesTotal,
		TipsTotal:      s.TipsTotal,
		CashAuditCount: s.CashAuditCount,
	}

	sum.ExpectedCash = s.BaseCash + s.SalesCash - s.ExpensesTotal - s.TipsTotal
	sum.Variance = s.CashAuditCount - sum.ExpectedCash
	// NetHandover is what the shift owes the till, independent of the
	// expected/variance check. Do not confuse it with ExpectedCash.
	sum.NetHandover = s.CashAuditCount - s.BaseCash
	sum.TotalSales = s.SalesCash + s.SalesCard + s.SalesTransfer
	sum.TotalOutflow = s.ExpensesTotal + s.TipsTotal
	sum.MaterialVariance = IsMaterialVariance(sum.Variance)

	return sum
}

// Add combines two summaries fieldwise. The material flag is recomputed
// from the summed variance rather than OR-ed, so offsetting shortages and
// surpluses across sources cancel out.
func (a Summary) Add(b Summary) Summary {
	out := Summary{
		BaseCash:       a.BaseCash + b.BaseCash,
		SalesCash:      a.SalesCash + b.SalesCash,
		SalesCard:      a.SalesCard + b.SalesCard,
		SalesTransfer:  a.SalesTransfer + b.SalesTransfer,
		ExpensesTotal:  a.ExpensesTotal + b.ExpensesTotal,
		TipsTotal:      a.TipsTotal + b.TipsTotal,
		CashAuditCount: a.CashAuditCount + b.CashAuditCount,
		ExpectedCash:   a.ExpectedCash + b.ExpectedCash,
		Variance:       a.Variance + b.Variance,
		NetHandover:    a.NetHandover + b.NetHandover,
		TotalSales:     a.TotalSales + b.TotalSales,
		TotalOutflow:   a.TotalOutflow + b.TotalOutflow,
	}
	out.MaterialVariance = IsMaterialVariance(out.Variance)
	return out
}

func IsMaterialVariance(variance int64) bool {
	if variance < 0 {
		variance = -variance
	}
	return variance > MaterialVarianceThreshold
}
