package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kasira.com/kasira/utils"
)

func closingOn(date string, handover int64) *UnifiedClosing {
	return &UnifiedClosing{
		Date: date,
		Operational: &SourceClosing{
			CashAuditCount: handover,
			// BaseCash zero, so NetHandover == CashAuditCount.
		},
	}
}

func TestAggregatePeriod(t *testing.T) {
	t.Run("Index alignment with short previous range", func(t *testing.T) {
		current := []*UnifiedClosing{
			closingOn("2025-10-21", 100),
			closingOn("2025-10-20", 200),
		}
		previous := []*UnifiedClosing{
			closingOn("2025-10-13", 50),
		}

		points := AggregatePeriod(current, previous, MetricOperationalHandover)
		require.Len(t, points, 2)

		// Buckets are chronological; the Nth current date pairs with the
		// Nth previous date, not the matching calendar date.
		assert.Equal(t, "2025-10-20", points[0].Label)
		assert.Equal(t, int64(200), points[0].Current)
		assert.Equal(t, int64(50), points[0].Previous)

		assert.Equal(t, "2025-10-21", points[1].Label)
		assert.Equal(t, int64(100), points[1].Current)
		assert.Equal(t, int64(0), points[1].Previous)
	})

	t.Run("Longer previous range keeps its surplus buckets", func(t *testing.T) {
		current := []*UnifiedClosing{
			closingOn("2025-10-20", 100),
			closingOn("2025-10-21", 200),
		}
		previous := []*UnifiedClosing{
			closingOn("2025-10-13", 50),
			closingOn("2025-10-14", 60),
			closingOn("2025-10-15", 70),
		}

		points := AggregatePeriod(current, previous, MetricOperationalHandover)
		require.Len(t, points, 3)

		assert.Equal(t, int64(100), points[0].Current)
		assert.Equal(t, int64(50), points[0].Previous)
		assert.Equal(t, int64(200), points[1].Current)
		assert.Equal(t, int64(60), points[1].Previous)

		// The third previous bucket pairs with a zero current value and
		// keeps its own date as the label.
		assert.Equal(t, "2025-10-15", points[2].Label)
		assert.Equal(t, int64(0), points[2].Current)
		assert.Equal(t, int64(70), points[2].Previous)
		assert.Equal(t, float64(-100), points[2].Growth)
	})

	t.Run("Same-date closings sum into one bucket", func(t *testing.T) {
		current := []*UnifiedClosing{
			closingOn("2025-10-20", 100),
			closingOn("2025-10-20", 150),
			closingOn("2025-10-21", 80),
		}

		points := AggregatePeriod(current, nil, MetricOperationalHandover)
		require.Len(t, points, 2)
		assert.Equal(t, int64(250), points[0].Current)
		assert.Equal(t, int64(80), points[1].Current)
	})

	t.Run("Single current bucket yields empty dataset", func(t *testing.T) {
		current := []*UnifiedClosing{closingOn("2025-10-20", 100)}
		previous := []*UnifiedClosing{closingOn("2025-10-13", 50)}
		assert.Empty(t, AggregatePeriod(current, previous, MetricOperationalHandover))
	})

	t.Run("No data yields empty dataset, not an error", func(t *testing.T) {
		assert.Empty(t, AggregatePeriod(nil, nil, MetricCombinedOutflow))
	})

	t.Run("Combined outflow metric", func(t *testing.T) {
		u1 := BuildUnifiedClosing(testShift(), `{
			"operational":{"expensesTotal":100,"tipsTotal":50},
			"accounting":{"expensesTotal":30}
		}`)
		u2 := BuildUnifiedClosing(testShift(), `{"operational":{"expensesTotal":20}}`)
		u2.Date = "2025-10-21"

		points := AggregatePeriod([]*UnifiedClosing{u1, u2}, nil, MetricCombinedOutflow)
		require.Len(t, points, 2)
		assert.Equal(t, int64(180), points[0].Current)
		assert.Equal(t, int64(20), points[1].Current)
	})
}

func TestGrowthPercent(t *testing.T) {
	tests := []struct {
		name     string
		current  int64
		previous int64
		expected float64
	}{
		{"Zero previous reports zero growth", 100, 0, 0},
		{"Zero previous with zero current", 0, 0, 0},
		{"Doubling", 200, 100, 100},
		{"Halving", 50, 100, -50},
		{"Flat", 100, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GrowthPercent(tt.current, tt.previous))
		})
	}
}

func TestPreviousRange(t *testing.T) {
	start := utils.MustParseDate("2025-10-20")
	end := utils.MustParseDate("2025-10-26")

	prevStart, prevEnd := PreviousRange(start, end)
	assert.Equal(t, utils.MustParseDate("2025-10-19"), prevEnd)
	assert.Equal(t, utils.MustParseDate("2025-10-13"), prevStart)
	assert.Equal(t, end.Sub(start), prevEnd.Sub(prevStart))

	t.Run("Single day", func(t *testing.T) {
		s, e := PreviousRange(start, start)
		assert.Equal(t, utils.MustParseDate("2025-10-19"), s)
		assert.Equal(t, utils.MustParseDate("2025-10-19"), e)
	})
}
