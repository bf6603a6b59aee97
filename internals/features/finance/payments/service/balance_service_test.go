package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	model "schoolku_backend/internals/features/finance/payments/model"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func settled(amount, discount string) model.PaymentModel {
	return model.PaymentModel{
		PaymentAmount:         dec(amount),
		PaymentDiscountAmount: dec(discount),
		PaymentStatus:         model.PaymentStatusSettled,
	}
}

func TestSummarizeBalance_NoPayments(t *testing.T) {
	s := SummarizeBalance(dec("3000"), nil)

	assert.True(t, s.TotalDue.Equal(dec("3000")))
	assert.True(t, s.TotalPaid.IsZero())
	assert.True(t, s.TotalDiscount.IsZero())
	assert.True(t, s.Remaining.Equal(dec("3000")))
}

func TestSummarizeBalance_PartialPayments(t *testing.T) {
	s := SummarizeBalance(dec("3000"), []model.PaymentModel{
		settled("1000", "0"),
		settled("500", "200"),
	})

	assert.True(t, s.TotalPaid.Equal(dec("1500")))
	assert.True(t, s.TotalDiscount.Equal(dec("200")))
	assert.True(t, s.Remaining.Equal(dec("1300")))
}

func TestSummarizeBalance_OverpaymentFlooredAtZero(t *testing.T) {
	s := SummarizeBalance(dec("1000"), []model.PaymentModel{
		settled("800", "0"),
		settled("500", "0"),
	})

	// event tetap tercatat verbatim, tapi remaining tidak pernah negatif
	assert.True(t, s.TotalPaid.Equal(dec("1300")))
	assert.True(t, s.Remaining.IsZero())
}

func TestSummarizeBalance_PendingPaymentsNotCounted(t *testing.T) {
	pending := model.PaymentModel{
		PaymentAmount: dec("999"),
		PaymentStatus: model.PaymentStatusPending,
	}
	s := SummarizeBalance(dec("1000"), []model.PaymentModel{
		pending,
		settled("400", "0"),
	})

	assert.True(t, s.TotalPaid.Equal(dec("400")))
	assert.True(t, s.Remaining.Equal(dec("600")))
}

func TestSummarizeBalance_DiscountOnly(t *testing.T) {
	s := SummarizeBalance(dec("1000"), []model.PaymentModel{
		settled("850", "150"),
	})

	assert.True(t, s.Remaining.IsZero())
}
