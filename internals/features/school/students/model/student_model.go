package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentStatus string

const (
	StudentStatusActive   StudentStatus = "active"
	StudentStatusInactive StudentStatus = "inactive"
	StudentStatusAlumni   StudentStatus = "alumni"
)

type StudentModel struct {
	// PK
	StudentID uuid.UUID `gorm:"column:student_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"student_id"`

	// Tenant
	StudentSchoolID uuid.UUID `gorm:"column:student_school_id;type:uuid;not null;index:idx_students_school" json:"student_school_id"`

	// FK → classes(class_id)
	StudentClassID *uuid.UUID `gorm:"column:student_class_id;type:uuid;index" json:"student_class_id,omitempty"`

	StudentName string  `gorm:"column:student_name;type:varchar(120);not null" json:"student_name"`
	StudentNIS  *string `gorm:"column:student_nis;type:varchar(30);index" json:"student_nis,omitempty"`

	StudentStatus StudentStatus `gorm:"column:student_status;type:varchar(12);not null;default:'active';index:idx_students_status" json:"student_status"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;not null;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;not null;autoUpdateTime" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"-"`
}

func (StudentModel) TableName() string {
	return "students"
}
