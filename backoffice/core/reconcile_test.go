package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	t.Run("Balanced shift", func(t *testing.T) {
		s := &SourceClosing{
			BaseCash:       50000,
			SalesCash:      300000,
			ExpensesTotal:  20000,
			TipsTotal:      10000,
			CashAuditCount: 320000,
		}

		sum := Summarize(s)
		assert.Equal(t, int64(320000), sum.ExpectedCash)
		assert.Equal(t, int64(0), sum.Variance)
		assert.Equal(t, int64(270000), sum.NetHandover)
		assert.False(t, sum.MaterialVariance)
	})

	t.Run("Material shortage", func(t *testing.T) {
		s := &SourceClosing{
			BaseCash:       50000,
			SalesCash:      300000,
			ExpensesTotal:  20000,
			TipsTotal:      10000,
			CashAuditCount: 280000,
		}

		sum := Summarize(s)
		assert.Equal(t, int64(-40000), sum.Variance)
		assert.True(t, sum.MaterialVariance)
	})

	t.Run("Sales and outflow totals", func(t *testing.T) {
		s := &SourceClosing{
			SalesCash:     100,
			SalesCard:     200,
			SalesTransfer: 300,
			ExpensesTotal: 40,
			TipsTotal:     60,
		}

		sum := Summarize(s)
		assert.Equal(t, int64(600), sum.TotalSales)
		assert.Equal(t, int64(100), sum.TotalOutflow)
	})

	t.Run("Nil source is zero everywhere", func(t *testing.T) {
		assert.Equal(t, Summary{}, Summarize(nil))
	})
}

func TestNetHandoverDerivation(t *testing.T) {
	tests := []struct {
		name     string
		source   SourceClosing
		expected int64
	}{
		{"Typical", SourceClosing{BaseCash: 50000, CashAuditCount: 320000}, 270000},
		{"Counted below float", SourceClosing{BaseCash: 50000, CashAuditCount: 40000}, -10000},
		{"Empty", SourceClosing{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum := Summarize(&tt.source)
			assert.Equal(t, tt.expected, sum.NetHandover)
			assert.Equal(t, tt.source.CashAuditCount-tt.source.BaseCash, sum.NetHandover)
		})
	}
}

func TestIsMaterialVariance(t *testing.T) {
	tests := []struct {
		name     string
		variance int64
		material bool
	}{
		{"Zero", 0, false},
		{"At threshold", 50, false},
		{"At negative threshold", -50, false},
		{"Just above", 51, true},
		{"Just below negative", -51, true},
		{"Large shortage", -40000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.material, IsMaterialVariance(tt.variance))
		})
	}
}

func TestSummaryAdd(t *testing.T) {
	a := Summarize(&SourceClosing{
		BaseCash:       50000,
		SalesCash:      300000,
		SalesCard:      150000,
		ExpensesTotal:  20000,
		TipsTotal:      10000,
		CashAuditCount: 320000,
	})
	b := Summarize(&SourceClosing{
		BaseCash:       10000,
		SalesCash:      80000,
		SalesTransfer:  5000,
		ExpensesTotal:  4000,
		CashAuditCount: 86060,
	})

	sum := a.Add(b)
	assert.Equal(t, a.TotalSales+b.TotalSales, sum.TotalSales)
	assert.Equal(t, a.NetHandover+b.NetHandover, sum.NetHandover)
	assert.Equal(t, a.ExpectedCash+b.ExpectedCash, sum.ExpectedCash)
	assert.Equal(t, a.Variance+b.Variance, sum.Variance)

	t.Run("Material flag follows summed variance", func(t *testing.T) {
		// 0 + 60 = 60, above threshold
		assert.True(t, sum.MaterialVariance)

		// Shortage in one source offset by surplus in the other.
		short := Summarize(&SourceClosing{CashAuditCount: 0, SalesCash: 100})  // variance -100
		over := Summarize(&SourceClosing{CashAuditCount: 100, SalesCash: 20}) // variance +80
		assert.True(t, short.MaterialVariance)
		assert.True(t, over.MaterialVariance)
		assert.False(t, short.Add(over).MaterialVariance)
	})
}
