package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	model "schoolku_backend/internals/features/finance/installments/model"
)

var (
	dueDate = time.Date(2024, 9, 10, 0, 0, 0, 0, time.UTC)
	before  = time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	onDue   = time.Date(2024, 9, 10, 15, 0, 0, 0, time.UTC)
	after   = time.Date(2024, 9, 11, 0, 0, 0, 0, time.UTC)
)

func TestRecomputeStatus_Pending(t *testing.T) {
	got := RecomputeStatus(dec("1000"), dec("0"), dueDate, before)
	assert.Equal(t, model.InstallmentStatusPending, got)
}

func TestRecomputeStatus_Partial(t *testing.T) {
	got := RecomputeStatus(dec("1000"), dec("400"), dueDate, before)
	assert.Equal(t, model.InstallmentStatusPartial, got)
}

func TestRecomputeStatus_Paid(t *testing.T) {
	got := RecomputeStatus(dec("1000"), dec("1000"), dueDate, before)
	assert.Equal(t, model.InstallmentStatusPaid, got)
}

func TestRecomputeStatus_OverpaidStillPaid(t *testing.T) {
	got := RecomputeStatus(dec("1000"), dec("1200"), dueDate, after)
	assert.Equal(t, model.InstallmentStatusPaid, got)
}

func TestRecomputeStatus_PendingTurnsOverdue(t *testing.T) {
	got := RecomputeStatus(dec("1000"), dec("0"), dueDate, after)
	assert.Equal(t, model.InstallmentStatusOverdue, got)
}

func TestRecomputeStatus_PartialTurnsOverdue(t *testing.T) {
	got := RecomputeStatus(dec("1000"), dec("400"), dueDate, after)
	assert.Equal(t, model.InstallmentStatusOverdue, got)
}

func TestRecomputeStatus_DueDayItselfNotOverdue(t *testing.T) {
	// jatuh tempo dihitung per tanggal, jam di hari yang sama belum overdue
	got := RecomputeStatus(dec("1000"), dec("0"), dueDate, onDue)
	assert.Equal(t, model.InstallmentStatusPending, got)
}

func TestRecomputeStatus_PaidNeverOverdue(t *testing.T) {
	// overdue adalah overlay pending/partial; lunas = lunas, telat atau tidak
	got := RecomputeStatus(dec("1000"), dec("1000"), dueDate, after)
	assert.Equal(t, model.InstallmentStatusPaid, got)
}

func TestRecomputeStatus_OverdueBackToPartialAfterPayment(t *testing.T) {
	// skema: overdue → bayar sebagian → recompute dgn as_of yang sama
	got := RecomputeStatus(dec("1000"), dec("0"), dueDate, after)
	assert.Equal(t, model.InstallmentStatusOverdue, got)

	// bayar lunas → langsung paid walaupun lewat jatuh tempo
	got = RecomputeStatus(dec("1000"), dec("1000"), dueDate, after)
	assert.Equal(t, model.InstallmentStatusPaid, got)
}

func TestPaidStateOf(t *testing.T) {
	assert.Equal(t, PaidStatePending, PaidStateOf(dec("100"), dec("0")))
	assert.Equal(t, PaidStatePartial, PaidStateOf(dec("100"), dec("50")))
	assert.Equal(t, PaidStatePaid, PaidStateOf(dec("100"), dec("100")))
	assert.Equal(t, PaidStatePaid, PaidStateOf(dec("100"), dec("150")))
}
