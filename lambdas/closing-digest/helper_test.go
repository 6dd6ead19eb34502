package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderDigest(t *testing.T) {
	digests := []*LocationDigest{
		{
			Location:    "menteng",
			Date:        "2025-10-20",
			Shifts:      3,
			Closed:      3,
			NetHandover: 540000,
			Variance:    -4000,
			Material:    1,
		},
		{
			Location:   "kemang",
			Date:       "2025-10-20",
			Shifts:     2,
			Closed:     1,
			Incomplete: 1,
			NetHandover: 220000,
		},
	}

	body := RenderDigest("2025-10-20", digests)

	assert.Contains(t, body, "Daily closing digest for 2025-10-20")
	assert.Contains(t, body, "menteng")
	assert.Contains(t, body, "net handover: Rp 5.400,00")
	assert.Contains(t, body, "-Rp 40,00 (1 material)")
	assert.Contains(t, body, "kemang")
	assert.Contains(t, body, "shifts: 2 (1 closed, 1 incomplete)")
	assert.NotContains(t, body, "(0 material)")
}
