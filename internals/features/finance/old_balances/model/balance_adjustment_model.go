package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AdjustmentType string

const (
	AdjustmentTypeWaiver        AdjustmentType = "waiver"
	AdjustmentTypeDiscount      AdjustmentType = "discount"
	AdjustmentTypeCorrection    AdjustmentType = "correction"
	AdjustmentTypeRefund        AdjustmentType = "refund"
	AdjustmentTypeLateFeeWaiver AdjustmentType = "late_fee_waiver"
	AdjustmentTypeOther         AdjustmentType = "other"
)

func (t AdjustmentType) Valid() bool {
	switch t {
	case AdjustmentTypeWaiver, AdjustmentTypeDiscount, AdjustmentTypeCorrection,
		AdjustmentTypeRefund, AdjustmentTypeLateFeeWaiver, AdjustmentTypeOther:
		return true
	}
	return false
}

// BalanceAdjustmentModel adalah koreksi manual terhadap saldo siswa.
// Append-only audit trail: tidak pernah diedit atau dihapus.
// Konvensi tanda: positif = mengurangi hutang siswa, negatif = menambah.
type BalanceAdjustmentModel struct {
	// PK
	BalanceAdjustmentID uuid.UUID `gorm:"column:balance_adjustment_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"balance_adjustment_id"`

	// Tenant
	BalanceAdjustmentSchoolID uuid.UUID `gorm:"column:balance_adjustment_school_id;type:uuid;not null;index:idx_balance_adjustments_school" json:"balance_adjustment_school_id"`

	BalanceAdjustmentStudentID uuid.UUID `gorm:"column:balance_adjustment_student_id;type:uuid;not null;index:idx_balance_adjustments_student" json:"balance_adjustment_student_id"`

	BalanceAdjustmentType AdjustmentType `gorm:"column:balance_adjustment_type;type:varchar(20);not null" json:"balance_adjustment_type"`

	BalanceAdjustmentAmount decimal.Decimal `gorm:"column:balance_adjustment_amount;type:numeric(12,2);not null" json:"balance_adjustment_amount"`

	// Wajib diisi — ValidationError kalau kosong
	BalanceAdjustmentReason string `gorm:"column:balance_adjustment_reason;type:text;not null" json:"balance_adjustment_reason"`

	BalanceAdjustmentAcademicYear   *string    `gorm:"column:balance_adjustment_academic_year;type:varchar(9);index" json:"balance_adjustment_academic_year,omitempty"`
	BalanceAdjustmentFeeStructureID *uuid.UUID `gorm:"column:balance_adjustment_fee_structure_id;type:uuid" json:"balance_adjustment_fee_structure_id,omitempty"`

	BalanceAdjustmentCreatedBy uuid.UUID `gorm:"column:balance_adjustment_created_by;type:uuid;not null" json:"balance_adjustment_created_by"`
	BalanceAdjustmentCreatedAt time.Time `gorm:"column:balance_adjustment_created_at;not null;autoCreateTime" json:"balance_adjustment_created_at"`
}

func (BalanceAdjustmentModel) TableName() string {
	return "balance_adjustments"
}
