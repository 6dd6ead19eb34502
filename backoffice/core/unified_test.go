package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kasira.com/kasira/core/models"
	"kasira.com/kasira/utils"
)

func testShift() *models.Shift {
	return &models.Shift{
		ID:          42,
		LocationID:  3,
		Status:      models.ShiftStatusClosed,
		StartTime:   time.Date(2025, 10, 20, 8, 0, 0, 0, utils.JakartaTZ),
		InitialCash: 50000,
		FinalCash:   utils.Ptr(int64(320000)),
	}
}

func TestBuildUnifiedClosing(t *testing.T) {
	t.Run("Both sources", func(t *testing.T) {
		raw := `{
			"operational":{"baseCash":50000,"salesCash":300000,"expensesTotal":20000,"tipsTotal":10000,"cashAuditCount":320000},
			"accounting":{"baseCash":10000,"salesCash":80000,"cashAuditCount":90000}
		}`
		u := BuildUnifiedClosing(testShift(), raw)
		require.NotNil(t, u.Operational)
		require.NotNil(t, u.Accounting)
		assert.Equal(t, uint(42), u.ShiftID)
		assert.Equal(t, "2025-10-20", u.Date)
		assert.NoError(t, u.MetaError)
	})

	t.Run("Absent metadata degrades to shift fields", func(t *testing.T) {
		u := BuildUnifiedClosing(testShift(), nil)
		require.NotNil(t, u.Operational)
		assert.Nil(t, u.Accounting)
		assert.Equal(t, int64(50000), u.Operational.BaseCash)
		assert.Equal(t, int64(320000), u.Operational.CashAuditCount)
	})

	t.Run("Malformed metadata never fails the build", func(t *testing.T) {
		u := BuildUnifiedClosing(testShift(), "{broken")
		require.NotNil(t, u.Operational)
		assert.Nil(t, u.Accounting)
		assert.ErrorIs(t, u.MetaError, ErrMalformedMeta)
		assert.Equal(t, int64(320000), u.Operational.CashAuditCount)
	})
}

func TestUnifiedSummarizeDecomposition(t *testing.T) {
	raw := `{
		"operational":{"baseCash":50000,"salesCash":300000,"salesCard":150000,"salesTransfer":25000,"expensesTotal":20000,"tipsTotal":10000,"cashAuditCount":320000},
		"accounting":{"baseCash":10000,"salesCash":80000,"salesCard":7000,"expensesTotal":4000,"tipsTotal":1000,"cashAuditCount":90000}
	}`
	u := BuildUnifiedClosing(testShift(), raw)

	all := u.Summarize(ViewAll)
	op := u.Summarize(ViewOperational)
	acc := u.Summarize(ViewAccounting)

	// Additive decomposition must hold for every numeric field.
	assert.Equal(t, op.TotalSales+acc.TotalSales, all.TotalSales)
	assert.Equal(t, op.NetHandover+acc.NetHandover, all.NetHandover)
	assert.Equal(t, op.ExpectedCash+acc.ExpectedCash, all.ExpectedCash)
	assert.Equal(t, op.Variance+acc.Variance, all.Variance)
	assert.Equal(t, op.TotalOutflow+acc.TotalOutflow, all.TotalOutflow)
	assert.Equal(t, op.CashAuditCount+acc.CashAuditCount, all.CashAuditCount)
	assert.Equal(t, op.BaseCash+acc.BaseCash, all.BaseCash)
}

func TestUnifiedSummarizeSingleSource(t *testing.T) {
	raw := `{"operational":{"baseCash":50000,"salesCash":300000,"expensesTotal":20000,"tipsTotal":10000,"cashAuditCount":320000}}`
	u := BuildUnifiedClosing(testShift(), raw)

	assert.False(t, u.IsComplete())
	// Combined totals equal operational totals exactly when accounting is
	// absent.
	assert.Equal(t, u.Summarize(ViewOperational), u.Summarize(ViewAll))
	assert.Equal(t, Summary{}, u.Summarize(ViewAccounting))
}

func TestIsComplete(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		complete bool
	}{
		{
			"No accounting source",
			`{"operational":{"cashAuditCount":1000}}`,
			false,
		},
		{
			"Accounting without invoice",
			`{"accounting":{"cashAuditCount":1000}}`,
			false,
		},
		{
			"Accounting with invoice",
			`{"accounting":{"cashAuditCount":1000,"attachments":{"accounting-invoice":"https://files/inv.pdf"}}}`,
			true,
		},
		{
			"Empty attachment URL does not count",
			`{"accounting":{"attachments":{"accounting-invoice":""}}}`,
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := BuildUnifiedClosing(testShift(), tt.raw)
			assert.Equal(t, tt.complete, u.IsComplete())
		})
	}
}
