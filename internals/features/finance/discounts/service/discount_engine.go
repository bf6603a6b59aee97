package service

import (
	"time"

	"github.com/shopspring/decimal"

	discountModel "schoolku_backend/internals/features/finance/discounts/model"
	feeModel "schoolku_backend/internals/features/finance/fee_structures/model"
)

var oneHundred = decimal.NewFromInt(100)

type ApplyResult struct {
	Eligible       bool            `json:"eligible"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	Reason         string          `json:"reason,omitempty"`
}

// Apply mengevaluasi satu rule diskon terhadap satu fee structure.
// Fungsi murni — tidak menyentuh DB; caller (PaymentLedger) yang menyimpan
// discount_amount hasilnya ke baris payment.
func Apply(d *discountModel.DiscountModel, fs *feeModel.FeeStructureModel, asOf time.Time) ApplyResult {
	ineligible := func(reason string) ApplyResult {
		return ApplyResult{Eligible: false, DiscountAmount: decimal.Zero, Reason: reason}
	}

	if !d.DiscountIsActive {
		return ineligible("diskon tidak aktif")
	}

	day := dateOnly(asOf)
	if day.Before(dateOnly(d.DiscountValidFrom)) {
		return ineligible("diskon belum berlaku")
	}
	if d.DiscountValidUntil != nil && day.After(dateOnly(*d.DiscountValidUntil)) {
		return ineligible("diskon sudah kadaluarsa")
	}

	if fs.FeeStructureAmount.LessThan(d.DiscountMinAmount) {
		return ineligible("nominal fee di bawah minimum diskon")
	}

	if !d.AppliesTo(fs.FeeStructureID) {
		return ineligible("fee structure tidak termasuk target diskon")
	}

	var amount decimal.Decimal
	switch d.DiscountType {
	case discountModel.DiscountTypePercentage:
		amount = fs.FeeStructureAmount.Mul(d.DiscountValue).Div(oneHundred).Round(2)
	case discountModel.DiscountTypeFixed:
		amount = d.DiscountValue
	default:
		return ineligible("jenis diskon tidak dikenal")
	}

	// Cap di max_discount bila ada
	if d.DiscountMaxAmount != nil && amount.GreaterThan(*d.DiscountMaxAmount) {
		amount = *d.DiscountMaxAmount
	}

	return ApplyResult{Eligible: true, DiscountAmount: amount}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
