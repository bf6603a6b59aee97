package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =========================================================
// ENUM — status cicilan (proyeksi 4 nilai untuk pelaporan).
// Internal dimodelkan paid-state (pending|partial|paid) × overlay overdue,
// supaya kombinasi ilegal ("paid tapi overdue") tidak bisa terjadi.
// =========================================================

type InstallmentStatus string

const (
	InstallmentStatusPending InstallmentStatus = "pending"
	InstallmentStatusPartial InstallmentStatus = "partial"
	InstallmentStatusPaid    InstallmentStatus = "paid"
	InstallmentStatusOverdue InstallmentStatus = "overdue"
)

// InstallmentModel adalah kewajiban yang sudah digenerate untuk satu siswa.
// Digenerate idempoten: unique index (school, student, fee_structure, number)
// menjaga dari duplikasi saat request concurrent (lihat migrate.go).
type InstallmentModel struct {
	// PK
	InstallmentID uuid.UUID `gorm:"column:installment_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"installment_id"`

	// Tenant
	InstallmentSchoolID uuid.UUID `gorm:"column:installment_school_id;type:uuid;not null;index:idx_installments_school" json:"installment_school_id"`

	InstallmentStudentID      uuid.UUID `gorm:"column:installment_student_id;type:uuid;not null;index:idx_installments_student" json:"installment_student_id"`
	InstallmentFeeStructureID uuid.UUID `gorm:"column:installment_fee_structure_id;type:uuid;not null;index:idx_installments_fee_structure" json:"installment_fee_structure_id"`
	InstallmentPlanID         uuid.UUID `gorm:"column:installment_plan_id;type:uuid;not null;index:idx_installments_plan" json:"installment_plan_id"`

	// 1..N, unik per (student, fee_structure)
	InstallmentNumber int `gorm:"column:installment_number;not null;check:installment_number >= 1" json:"installment_number"`

	InstallmentDueAmount decimal.Decimal `gorm:"column:installment_due_amount;type:numeric(12,2);not null" json:"installment_due_amount"`
	InstallmentDueDate   time.Time       `gorm:"column:installment_due_date;type:date;not null;index:idx_installments_due_date" json:"installment_due_date"`

	InstallmentPaidAmount decimal.Decimal `gorm:"column:installment_paid_amount;type:numeric(12,2);not null;default:0" json:"installment_paid_amount"`

	InstallmentStatus InstallmentStatus `gorm:"column:installment_status;type:varchar(10);not null;default:'pending';index:idx_installments_status" json:"installment_status"`

	InstallmentLateFee decimal.Decimal `gorm:"column:installment_late_fee;type:numeric(12,2);not null;default:0" json:"installment_late_fee"`

	InstallmentCreatedAt time.Time `gorm:"column:installment_created_at;not null;autoCreateTime" json:"installment_created_at"`
	InstallmentUpdatedAt time.Time `gorm:"column:installment_updated_at;not null;autoUpdateTime" json:"installment_updated_at"`
}

func (InstallmentModel) TableName() string {
	return "installments"
}

// RemainingAmount = due - paid, difloor di 0 untuk tampilan.
func (m *InstallmentModel) RemainingAmount() decimal.Decimal {
	rem := m.InstallmentDueAmount.Sub(m.InstallmentPaidAmount)
	if rem.IsNegative() {
		return decimal.Zero
	}
	return rem
}
