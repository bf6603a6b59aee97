package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OldBalanceModel adalah hutang terbawa dari tahun ajaran sebelumnya.
// Unik per (school, student, academic_year) — kunci idempotensi carry-forward.
type OldBalanceModel struct {
	// PK
	OldBalanceID uuid.UUID `gorm:"column:old_balance_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"old_balance_id"`

	// Tenant
	OldBalanceSchoolID uuid.UUID `gorm:"column:old_balance_school_id;type:uuid;not null;index:idx_old_balances_school" json:"old_balance_school_id"`

	OldBalanceStudentID uuid.UUID `gorm:"column:old_balance_student_id;type:uuid;not null;index:idx_old_balances_student" json:"old_balance_student_id"`

	// Tahun asal hutang
	OldBalanceAcademicYear string `gorm:"column:old_balance_academic_year;type:varchar(9);not null;index:idx_old_balances_year" json:"old_balance_academic_year"`

	// Snapshot nama kelas — bukan referensi hidup, kelasnya bisa sudah tidak ada
	OldBalanceClassName string `gorm:"column:old_balance_class_name;type:varchar(60);not null" json:"old_balance_class_name"`

	OldBalanceAmount decimal.Decimal `gorm:"column:old_balance_amount;type:numeric(12,2);not null" json:"old_balance_amount"`

	// Tahun tujuan saat di-carry-forward
	OldBalanceCarriedForwardTo *string `gorm:"column:old_balance_carried_forward_to;type:varchar(9)" json:"old_balance_carried_forward_to,omitempty"`

	OldBalanceIsSettled   bool       `gorm:"column:old_balance_is_settled;not null;default:false;index:idx_old_balances_settled" json:"old_balance_is_settled"`
	OldBalanceSettledDate *time.Time `gorm:"column:old_balance_settled_date;type:date" json:"old_balance_settled_date,omitempty"`

	OldBalanceCreatedAt time.Time `gorm:"column:old_balance_created_at;not null;autoCreateTime" json:"old_balance_created_at"`
	OldBalanceUpdatedAt time.Time `gorm:"column:old_balance_updated_at;not null;autoUpdateTime" json:"old_balance_updated_at"`
}

func (OldBalanceModel) TableName() string {
	return "old_balances"
}
