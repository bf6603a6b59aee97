package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	discountModel "schoolku_backend/internals/features/finance/discounts/model"
	feeModel "schoolku_backend/internals/features/finance/fee_structures/model"
)

func newFeeStructure(amount string) *feeModel.FeeStructureModel {
	return &feeModel.FeeStructureModel{
		FeeStructureID:     uuid.New(),
		FeeStructureAmount: decimal.RequireFromString(amount),
	}
}

func newDiscount(fs *feeModel.FeeStructureModel, dtype discountModel.DiscountType, value string) *discountModel.DiscountModel {
	return &discountModel.DiscountModel{
		DiscountID:              uuid.New(),
		DiscountType:            dtype,
		DiscountValue:           decimal.RequireFromString(value),
		DiscountFeeStructureIDs: pq.StringArray{fs.FeeStructureID.String()},
		DiscountMinAmount:       decimal.Zero,
		DiscountValidFrom:       time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		DiscountIsActive:        true,
	}
}

func TestApply_PercentageCappedAtMaxDiscount(t *testing.T) {
	fs := newFeeStructure("1000")
	d := newDiscount(fs, discountModel.DiscountTypePercentage, "20")
	max := decimal.RequireFromString("150")
	d.DiscountMaxAmount = &max

	res := Apply(d, fs, time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC))

	assert.True(t, res.Eligible)
	// 20% dari 1000 = 200, tapi dibatasi max 150
	assert.True(t, res.DiscountAmount.Equal(decimal.RequireFromString("150")), "got %s", res.DiscountAmount)
}

func TestApply_PercentageWithoutCap(t *testing.T) {
	fs := newFeeStructure("2500.50")
	d := newDiscount(fs, discountModel.DiscountTypePercentage, "10")

	res := Apply(d, fs, time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC))

	assert.True(t, res.Eligible)
	assert.True(t, res.DiscountAmount.Equal(decimal.RequireFromString("250.05")), "got %s", res.DiscountAmount)
}

func TestApply_FixedValue(t *testing.T) {
	fs := newFeeStructure("1000")
	d := newDiscount(fs, discountModel.DiscountTypeFixed, "75")

	res := Apply(d, fs, time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC))

	assert.True(t, res.Eligible)
	assert.True(t, res.DiscountAmount.Equal(decimal.RequireFromString("75")))
}

func TestApply_RejectsExpired(t *testing.T) {
	fs := newFeeStructure("1000")
	d := newDiscount(fs, discountModel.DiscountTypePercentage, "20")
	until := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	d.DiscountValidUntil = &until

	res := Apply(d, fs, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	assert.False(t, res.Eligible)
	assert.True(t, res.DiscountAmount.IsZero())
}

func TestApply_LastValidDayStillEligible(t *testing.T) {
	fs := newFeeStructure("1000")
	d := newDiscount(fs, discountModel.DiscountTypePercentage, "20")
	until := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	d.DiscountValidUntil = &until

	// jam berapapun di hari terakhir tetap berlaku
	res := Apply(d, fs, time.Date(2024, 12, 31, 23, 30, 0, 0, time.UTC))

	assert.True(t, res.Eligible)
}

func TestApply_RejectsInactive(t *testing.T) {
	fs := newFeeStructure("1000")
	d := newDiscount(fs, discountModel.DiscountTypeFixed, "50")
	d.DiscountIsActive = false

	res := Apply(d, fs, time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC))

	assert.False(t, res.Eligible)
}

func TestApply_RejectsBelowMinAmount(t *testing.T) {
	fs := newFeeStructure("400")
	d := newDiscount(fs, discountModel.DiscountTypeFixed, "50")
	d.DiscountMinAmount = decimal.RequireFromString("500")

	res := Apply(d, fs, time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC))

	assert.False(t, res.Eligible)
}

func TestApply_RejectsFeeStructureOutsideTargetSet(t *testing.T) {
	fs := newFeeStructure("1000")
	other := newFeeStructure("1000")
	d := newDiscount(other, discountModel.DiscountTypeFixed, "50")

	res := Apply(d, fs, time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC))

	assert.False(t, res.Eligible)
}

func TestApply_RejectsBeforeValidFrom(t *testing.T) {
	fs := newFeeStructure("1000")
	d := newDiscount(fs, discountModel.DiscountTypeFixed, "50")

	res := Apply(d, fs, time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC))

	assert.False(t, res.Eligible)
}
