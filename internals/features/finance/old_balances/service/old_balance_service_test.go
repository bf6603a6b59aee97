package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestComputeOutstanding_NoAdjustments(t *testing.T) {
	got := ComputeOutstanding(dec("500000"), nil)
	assert.True(t, got.Outstanding.Equal(dec("500000")))
	assert.True(t, got.RawOutstanding.Equal(dec("500000")))
}

func TestComputeOutstanding_WaiverReducesDebt(t *testing.T) {
	// adjustment positif = mengurangi hutang
	got := ComputeOutstanding(dec("500000"), []decimal.Decimal{dec("150000")})
	assert.True(t, got.Outstanding.Equal(dec("350000")))
}

func TestComputeOutstanding_NegativeAdjustmentIncreasesDebt(t *testing.T) {
	got := ComputeOutstanding(dec("500000"), []decimal.Decimal{dec("-100000")})
	assert.True(t, got.Outstanding.Equal(dec("600000")))
}

func TestComputeOutstanding_FlooredAtZeroForDisplay(t *testing.T) {
	got := ComputeOutstanding(dec("100000"), []decimal.Decimal{dec("150000")})
	assert.True(t, got.Outstanding.IsZero(), "display difloor di 0")
	assert.True(t, got.RawOutstanding.Equal(dec("-50000")), "raw tetap negatif untuk audit")
}

func TestComputeOutstanding_MultipleAdjustments(t *testing.T) {
	adjs := []decimal.Decimal{dec("50000"), dec("25000"), dec("-10000")}
	got := ComputeOutstanding(dec("200000"), adjs)
	assert.True(t, got.Outstanding.Equal(dec("135000")))
}
