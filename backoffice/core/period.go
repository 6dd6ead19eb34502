package core

import (
	"sort"
	"time"

	"kasira.com/kasira/utils"
)

type Metric string

const (
	MetricOperationalHandover Metric = "operational_handover"
	MetricAccountingHandover  Metric = "accounting_handover"
	MetricCombinedOutflow     Metric = "combined_outflow"
)

// ChartPoint pairs one bucket of the current range with the same-index
// bucket of the previous range.
type ChartPoint struct {
	Label    string  `json:"label"`
	Current  int64   `json:"current"`
	Previous int64   `json:"previous"`
	Growth   float64 `json:"growth"`
}

func metricValue(u *UnifiedClosing, metric Metric) int64 {
	switch metric {
	case MetricOperationalHandover:
		return u.Summarize(ViewOperational).NetHandover
	case MetricAccountingHandover:
		return u.Summarize(ViewAccounting).NetHandover
	case MetricCombinedOutflow:
		return u.Summarize(ViewAll).TotalOutflow
	}
	return 0
}

type dateBucket struct {
	date  string
	total int64
}

func bucketByDate(closings []*UnifiedClosing, metric Metric) []dateBucket {
	groups := utils.GroupBy(closings, func(u *UnifiedClosing) string { return u.Date })

	buckets := make([]dateBucket, 0, len(groups))
	for date, set := range groups {
		buckets = append(buckets, dateBucket{
			date:  date,
			total: utils.SumBy(set, func(u *UnifiedClosing) int64 { return metricValue(u, metric) }),
		})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].date < buckets[j].date })
	return buckets
}

// AggregatePeriod buckets both ranges by business date and pairs them by
// chronological index: the Nth date of the current range against the Nth
// date of the previous range, zero-filling whichever side runs short.
// Pairing is by index, not by matching calendar date; that reproduces the
// comparison for equal-length ranges with matching cadence, which is the
// only cadence the charts are fed.
//
// A current range with fewer than two dated buckets yields an empty result:
// a single point cannot be charted as a trend.
func AggregatePeriod(current, previous []*UnifiedClosing, metric Metric) []ChartPoint {
	cur := bucketByDate(current, metric)
	if len(cur) < 2 {
		return []ChartPoint{}
	}
	prev := bucketByDate(previous, metric)

	n := len(cur)
	if len(prev) > n {
		n = len(prev)
	}

	points := make([]ChartPoint, 0, n)
	for i := 0; i < n; i++ {
		var p ChartPoint
		if i < len(cur) {
			p.Label = cur[i].date
			p.Current = cur[i].total
		} else {
			// Previous range ran longer; the point has no current-range
			// date, so it is labeled by the previous bucket it carries.
			p.Label = prev[i].date
		}
		if i < len(prev) {
			p.Previous = prev[i].total
		}
		p.Growth = GrowthPercent(p.Current, p.Previous)
		points = append(points, p)
	}
	return points
}

// GrowthPercent is the period-over-period change. A zero previous value
// reports exactly 0, whatever the current value: there is no meaningful
// percentage against an empty baseline, and the charts must never divide
// by zero.
func GrowthPercent(current, previous int64) float64 {
	if previous == 0 {
		return 0
	}
	return (float64(current) - float64(previous)) / float64(previous) * 100
}

// PreviousRange returns the equal-length range immediately preceding
// [start, end], for the chart handler to fetch the comparison set.
func PreviousRange(start, end time.Time) (time.Time, time.Time) {
	length := end.Sub(start)
	prevEnd := start.Add(-24 * time.Hour)
	prevStart := prevEnd.Add(-length)
	return prevStart, prevEnd
}
