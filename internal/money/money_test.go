package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"zero", 0, "Rp 0"},
		{"small", 500, "Rp 500"},
		{"four digits", 1200, "Rp 1.200"},
		{"typical salary", 1500000, "Rp 1.500.000"},
		{"millions", 12345678, "Rp 12.345.678"},
		{"billions", 1234567890, "Rp 1.234.567.890"},
		{"fraction rounds half up", 1500.5, "Rp 1.501"},
		{"fraction rounds down", 1500.4, "Rp 1.500"},
		{"negative", -500000, "-Rp 500.000"},
		{"negative fraction rounding to zero", -0.4, "Rp 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(tt.amount))
		})
	}
}
