package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =========================================================
// ENUM — metode & status pembayaran
// =========================================================

type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "cash"
	PaymentMethodCheque PaymentMethod = "cheque"
	PaymentMethodOnline PaymentMethod = "online"
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodUPI    PaymentMethod = "upi"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCheque, PaymentMethodOnline, PaymentMethodCard, PaymentMethodUPI:
		return true
	}
	return false
}

type PaymentStatus string

const (
	// pembayaran kasir/manual langsung settled
	PaymentStatusSettled PaymentStatus = "settled"
	// pembayaran online menunggu notifikasi gateway
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusExpired  PaymentStatus = "expired"
	PaymentStatusCanceled PaymentStatus = "canceled"
)

// =========================================================
// MODEL — event finansial append-only.
// Tidak ada endpoint update/delete; koreksi lewat BalanceAdjustment.
// Satu-satunya transisi yang diizinkan: status pending → settled/expired/
// canceled dari webhook gateway.
// =========================================================

type PaymentModel struct {
	// PK
	PaymentID uuid.UUID `gorm:"column:payment_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"payment_id"`

	// Tenant
	PaymentSchoolID uuid.UUID `gorm:"column:payment_school_id;type:uuid;not null;index:idx_payments_school" json:"payment_school_id"`

	// FK → students / fee_structures
	PaymentStudentID      uuid.UUID `gorm:"column:payment_student_id;type:uuid;not null;index:idx_payments_student" json:"payment_student_id"`
	PaymentFeeStructureID uuid.UUID `gorm:"column:payment_fee_structure_id;type:uuid;not null;index:idx_payments_fee_structure" json:"payment_fee_structure_id"`

	// Terisi bila pembayaran lewat cicilan (apply_payment)
	PaymentInstallmentID *uuid.UUID `gorm:"column:payment_installment_id;type:uuid;index" json:"payment_installment_id,omitempty"`

	PaymentAmount decimal.Decimal `gorm:"column:payment_amount;type:numeric(12,2);not null;check:payment_amount > 0" json:"payment_amount"`
	PaymentDate   time.Time       `gorm:"column:payment_date;type:date;not null;index:idx_payments_date" json:"payment_date"`
	PaymentMethod PaymentMethod   `gorm:"column:payment_method;type:varchar(10);not null" json:"payment_method"`

	// Unik per sekolah bila terisi (partial unique index di migrate)
	PaymentReceiptNumber *string `gorm:"column:payment_receipt_number;type:varchar(40)" json:"payment_receipt_number,omitempty"`

	PaymentNotes *string `gorm:"column:payment_notes;type:text" json:"payment_notes,omitempty"`

	PaymentDiscountAmount decimal.Decimal `gorm:"column:payment_discount_amount;type:numeric(12,2);not null;default:0;check:payment_discount_amount >= 0" json:"payment_discount_amount"`
	PaymentDiscountReason *string         `gorm:"column:payment_discount_reason;type:varchar(160)" json:"payment_discount_reason,omitempty"`

	PaymentStatus PaymentStatus `gorm:"column:payment_status;type:varchar(10);not null;default:'settled';index:idx_payments_status" json:"payment_status"`

	// Order ID untuk gateway (midtrans), unik bila terisi
	PaymentExternalID *string    `gorm:"column:payment_external_id;type:varchar(64);uniqueIndex:uq_payments_external_id" json:"payment_external_id,omitempty"`
	PaymentSettledAt  *time.Time `gorm:"column:payment_settled_at" json:"payment_settled_at,omitempty"`

	PaymentCreatedBy *uuid.UUID `gorm:"column:payment_created_by;type:uuid" json:"payment_created_by,omitempty"`
	PaymentCreatedAt time.Time  `gorm:"column:payment_created_at;not null;autoCreateTime" json:"payment_created_at"`
}

func (PaymentModel) TableName() string {
	return "payments"
}

// Counted melaporkan apakah payment ikut dihitung dalam saldo.
func (p *PaymentModel) Counted() bool {
	return p.PaymentStatus == PaymentStatusSettled
}
