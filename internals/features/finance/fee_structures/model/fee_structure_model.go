package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// =========================================================
// ENUM — jenis biaya
// =========================================================

type FeeType string

const (
	FeeTypeTuition   FeeType = "tuition"
	FeeTypeExam      FeeType = "exam"
	FeeTypeLibrary   FeeType = "library"
	FeeTypeTransport FeeType = "transport"
	FeeTypeHostel    FeeType = "hostel"
	FeeTypeOther     FeeType = "other"
)

func (t FeeType) Valid() bool {
	switch t {
	case FeeTypeTuition, FeeTypeExam, FeeTypeLibrary, FeeTypeTransport, FeeTypeHostel, FeeTypeOther:
		return true
	}
	return false
}

// =========================================================
// MODEL
// =========================================================

type FeeStructureModel struct {
	// PK
	FeeStructureID uuid.UUID `gorm:"column:fee_structure_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"fee_structure_id"`

	// Tenant
	FeeStructureSchoolID uuid.UUID `gorm:"column:fee_structure_school_id;type:uuid;not null;index:idx_fee_structures_school" json:"fee_structure_school_id"`

	// FK → classes(class_id)
	FeeStructureClassID uuid.UUID `gorm:"column:fee_structure_class_id;type:uuid;not null;index:idx_fee_structures_class" json:"fee_structure_class_id"`

	FeeStructureFeeType FeeType `gorm:"column:fee_structure_fee_type;type:varchar(12);not null;index:idx_fee_structures_type" json:"fee_structure_fee_type"`

	// Nominal wajib > 0 (divalidasi di DTO + check constraint)
	FeeStructureAmount decimal.Decimal `gorm:"column:fee_structure_amount;type:numeric(12,2);not null;check:fee_structure_amount > 0" json:"fee_structure_amount"`

	FeeStructureDescription *string `gorm:"column:fee_structure_description;type:text" json:"fee_structure_description,omitempty"`

	FeeStructureIsOptional bool `gorm:"column:fee_structure_is_optional;not null;default:false" json:"fee_structure_is_optional"`

	FeeStructureDueDate *time.Time `gorm:"column:fee_structure_due_date;type:date" json:"fee_structure_due_date,omitempty"`

	// Format "2024-25"
	FeeStructureAcademicYear string `gorm:"column:fee_structure_academic_year;type:varchar(9);not null;index:idx_fee_structures_year" json:"fee_structure_academic_year"`

	FeeStructureCreatedAt time.Time      `gorm:"column:fee_structure_created_at;not null;autoCreateTime" json:"fee_structure_created_at"`
	FeeStructureUpdatedAt time.Time      `gorm:"column:fee_structure_updated_at;not null;autoUpdateTime" json:"fee_structure_updated_at"`
	FeeStructureDeletedAt gorm.DeletedAt `gorm:"column:fee_structure_deleted_at;index" json:"-"`
}

func (FeeStructureModel) TableName() string {
	return "fee_structures"
}
