package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

func (t DiscountType) Valid() bool {
	return t == DiscountTypePercentage || t == DiscountTypeFixed
}

// DiscountModel adalah RULE, bukan entri ledger. Hasil perhitungannya
// disimpan oleh PaymentLedger ke baris payment.
type DiscountModel struct {
	// PK
	DiscountID uuid.UUID `gorm:"column:discount_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"discount_id"`

	// Tenant
	DiscountSchoolID uuid.UUID `gorm:"column:discount_school_id;type:uuid;not null;index:idx_discounts_school" json:"discount_school_id"`

	DiscountName string       `gorm:"column:discount_name;type:varchar(120);not null" json:"discount_name"`
	DiscountType DiscountType `gorm:"column:discount_type;type:varchar(12);not null" json:"discount_type"`

	// percentage: 0 < v <= 100 ; fixed: v > 0 (divalidasi di DTO)
	DiscountValue decimal.Decimal `gorm:"column:discount_value;type:numeric(12,2);not null" json:"discount_value"`

	// Daftar fee_structure_id (uuid sebagai text[]) yang kena rule ini
	DiscountFeeStructureIDs pq.StringArray `gorm:"column:discount_fee_structure_ids;type:text[]" json:"discount_fee_structure_ids"`

	DiscountMinAmount decimal.Decimal  `gorm:"column:discount_min_amount;type:numeric(12,2);not null;default:0" json:"discount_min_amount"`
	DiscountMaxAmount *decimal.Decimal `gorm:"column:discount_max_amount;type:numeric(12,2)" json:"discount_max_amount,omitempty"`

	DiscountValidFrom  time.Time  `gorm:"column:discount_valid_from;type:date;not null" json:"discount_valid_from"`
	DiscountValidUntil *time.Time `gorm:"column:discount_valid_until;type:date" json:"discount_valid_until,omitempty"`

	DiscountIsActive    bool    `gorm:"column:discount_is_active;not null;default:true;index:idx_discounts_active" json:"discount_is_active"`
	DiscountDescription *string `gorm:"column:discount_description;type:text" json:"discount_description,omitempty"`

	DiscountCreatedAt time.Time      `gorm:"column:discount_created_at;not null;autoCreateTime" json:"discount_created_at"`
	DiscountUpdatedAt time.Time      `gorm:"column:discount_updated_at;not null;autoUpdateTime" json:"discount_updated_at"`
	DiscountDeletedAt gorm.DeletedAt `gorm:"column:discount_deleted_at;index" json:"-"`
}

func (DiscountModel) TableName() string {
	return "discounts"
}

// AppliesTo cek apakah fee structure termasuk target rule.
func (d *DiscountModel) AppliesTo(feeStructureID uuid.UUID) bool {
	for _, s := range d.DiscountFeeStructureIDs {
		if s == feeStructureID.String() {
			return true
		}
	}
	return false
}
