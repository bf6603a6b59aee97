package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassModel struct {
	// PK
	ClassID uuid.UUID `gorm:"column:class_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"class_id"`

	// Tenant
	ClassSchoolID uuid.UUID `gorm:"column:class_school_id;type:uuid;not null;index:idx_classes_school" json:"class_school_id"`

	ClassName         string  `gorm:"column:class_name;type:varchar(60);not null" json:"class_name"`
	ClassAcademicYear string  `gorm:"column:class_academic_year;type:varchar(9);not null;index:idx_classes_year" json:"class_academic_year"`
	ClassDescription  *string `gorm:"column:class_description;type:text" json:"class_description,omitempty"`

	ClassCreatedAt time.Time      `gorm:"column:class_created_at;not null;autoCreateTime" json:"class_created_at"`
	ClassUpdatedAt time.Time      `gorm:"column:class_updated_at;not null;autoUpdateTime" json:"class_updated_at"`
	ClassDeletedAt gorm.DeletedAt `gorm:"column:class_deleted_at;index" json:"-"`
}

func (ClassModel) TableName() string {
	return "classes"
}
