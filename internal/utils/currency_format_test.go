package utils_test

import (
	"testing"

	"github.com/bengkelku/workshop_management_app/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatRupiah(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
		want   string
	}{
		{"zero", decimal.Zero, "Rp 0"},
		{"under a thousand", decimal.NewFromInt(500), "Rp 500"},
		{"thousands", decimal.NewFromInt(150000), "Rp 150,000"},
		{"millions", decimal.NewFromInt(2500000), "Rp 2,500,000"},
		{"negative keeps sign", decimal.NewFromInt(-50000), "Rp -50,000"},
		{"fractions round to whole rupiah", decimal.NewFromFloat(1999.6), "Rp 2,000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.FormatRupiah(tt.amount))
		})
	}
}
