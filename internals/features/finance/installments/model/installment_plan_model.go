package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type InstallmentPlanType string

const (
	InstallmentPlanTypeEqual  InstallmentPlanType = "equal"
	InstallmentPlanTypeCustom InstallmentPlanType = "custom"
)

func (t InstallmentPlanType) Valid() bool {
	return t == InstallmentPlanTypeEqual || t == InstallmentPlanTypeCustom
}

// InstallmentPlanModel adalah template pemecahan fee structure,
// bukan kewajiban finansial — kewajiban ada di InstallmentModel.
type InstallmentPlanModel struct {
	// PK
	InstallmentPlanID uuid.UUID `gorm:"column:installment_plan_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"installment_plan_id"`

	// Tenant
	InstallmentPlanSchoolID uuid.UUID `gorm:"column:installment_plan_school_id;type:uuid;not null;index:idx_installment_plans_school" json:"installment_plan_school_id"`

	// FK → fee_structures(fee_structure_id)
	InstallmentPlanFeeStructureID uuid.UUID `gorm:"column:installment_plan_fee_structure_id;type:uuid;not null;index:idx_installment_plans_fee_structure" json:"installment_plan_fee_structure_id"`

	InstallmentPlanName  string              `gorm:"column:installment_plan_name;type:varchar(120);not null" json:"installment_plan_name"`
	InstallmentPlanCount int                 `gorm:"column:installment_plan_count;not null;check:installment_plan_count >= 1" json:"installment_plan_count"`
	InstallmentPlanType  InstallmentPlanType `gorm:"column:installment_plan_type;type:varchar(10);not null" json:"installment_plan_type"`

	// Untuk type=custom: array JSON nominal per cicilan, jumlahnya harus
	// sama persis dengan fee_structure_amount (divalidasi saat create & generate)
	InstallmentPlanCustomAmounts datatypes.JSON `gorm:"column:installment_plan_custom_amounts;type:jsonb" json:"installment_plan_custom_amounts,omitempty"`

	InstallmentPlanDescription *string `gorm:"column:installment_plan_description;type:text" json:"installment_plan_description,omitempty"`
	InstallmentPlanIsActive    bool    `gorm:"column:installment_plan_is_active;not null;default:true" json:"installment_plan_is_active"`

	InstallmentPlanCreatedAt time.Time      `gorm:"column:installment_plan_created_at;not null;autoCreateTime" json:"installment_plan_created_at"`
	InstallmentPlanUpdatedAt time.Time      `gorm:"column:installment_plan_updated_at;not null;autoUpdateTime" json:"installment_plan_updated_at"`
	InstallmentPlanDeletedAt gorm.DeletedAt `gorm:"column:installment_plan_deleted_at;index" json:"-"`
}

func (InstallmentPlanModel) TableName() string {
	return "installment_plans"
}
