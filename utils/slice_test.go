package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterAndMap(t *testing.T) {
	values := []int{1, 2, 3, 4, 5}

	even := Filter(values, func(v int) bool { return v%2 == 0 })
	assert.Equal(t, []int{2, 4}, even)

	doubled := Map(even, func(v int) int64 { return int64(v) * 2 })
	assert.Equal(t, []int64{4, 8}, doubled)
}

func TestFind(t *testing.T) {
	values := []string{"menteng", "kemang", "senopati"}

	found := Find(values, func(s string) bool { return s == "kemang" })
	require.NotNil(t, found)
	assert.Equal(t, "kemang", *found)

	assert.Nil(t, Find(values, func(s string) bool { return s == "bandung" }))
}

func TestGroupByAndSumBy(t *testing.T) {
	type row struct {
		date  string
		total int64
	}
	rows := []row{
		{"2025-10-20", 100},
		{"2025-10-20", 250},
		{"2025-10-21", 40},
	}

	groups := GroupBy(rows, func(r row) string { return r.date })
	require.Len(t, groups, 2)
	assert.Len(t, groups["2025-10-20"], 2)

	assert.Equal(t, int64(350), SumBy(groups["2025-10-20"], func(r row) int64 { return r.total }))
	assert.Equal(t, int64(390), SumBy(rows, func(r row) int64 { return r.total }))
}
