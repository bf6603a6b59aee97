package service

import (
	"time"

	"github.com/shopspring/decimal"

	model "schoolku_backend/internals/features/finance/installments/model"
)

// Paid-state internal (tanpa overlay overdue).
type PaidState string

const (
	PaidStatePending PaidState = "pending"
	PaidStatePartial PaidState = "partial"
	PaidStatePaid    PaidState = "paid"
)

// PaidStateOf murni dari nominal: 0 → pending, 0<paid<due → partial,
// paid >= due → paid.
func PaidStateOf(due, paid decimal.Decimal) PaidState {
	switch {
	case paid.GreaterThanOrEqual(due):
		return PaidStatePaid
	case paid.IsPositive():
		return PaidStatePartial
	default:
		return PaidStatePending
	}
}

// IsOverdue: lewat jatuh tempo DAN masih ada sisa.
// Overdue adalah overlay atas pending/partial, bukan cabang terminal —
// cicilan paid tidak pernah overdue.
func IsOverdue(dueDate, asOf time.Time, remaining decimal.Decimal) bool {
	return dateOnly(asOf).After(dateOnly(dueDate)) && remaining.IsPositive()
}

// RecomputeStatus memproyeksikan (paid_state × overdue) ke enum 4 nilai
// untuk pelaporan eksternal.
func RecomputeStatus(due, paid decimal.Decimal, dueDate, asOf time.Time) model.InstallmentStatus {
	state := PaidStateOf(due, paid)
	if state == PaidStatePaid {
		return model.InstallmentStatusPaid
	}

	remaining := due.Sub(paid)
	if IsOverdue(dueDate, asOf, remaining) {
		return model.InstallmentStatusOverdue
	}

	if state == PaidStatePartial {
		return model.InstallmentStatusPartial
	}
	return model.InstallmentStatusPending
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
