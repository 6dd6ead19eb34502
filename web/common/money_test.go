package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name     string
		minor    int64
		expected string
	}{
		{"Zero", 0, "Rp 0,00"},
		{"Cents only", 50, "Rp 0,50"},
		{"Typical", 320000, "Rp 3.200,00"},
		{"Millions", 123456789, "Rp 1.234.567,89"},
		{"Negative", -40000, "-Rp 400,00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCurrency(tt.minor))
		})
	}
}
