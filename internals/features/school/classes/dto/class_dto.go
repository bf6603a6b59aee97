// file: internals/features/school/classes/dto/class_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "schoolku_backend/internals/features/school/classes/model"
)

type CreateClassRequest struct {
	ClassName         string  `json:"class_name" validate:"required,max=60"`
	ClassAcademicYear string  `json:"academic_year" validate:"required,min=7,max=9"`
	ClassDescription  *string `json:"description"`
}

func (r *CreateClassRequest) ToModel(schoolID uuid.UUID) *model.ClassModel {
	return &model.ClassModel{
		ClassSchoolID:     schoolID,
		ClassName:         r.ClassName,
		ClassAcademicYear: r.ClassAcademicYear,
		ClassDescription:  r.ClassDescription,
	}
}

type ClassResponse struct {
	ClassID           uuid.UUID `json:"class_id"`
	ClassName         string    `json:"class_name"`
	ClassAcademicYear string    `json:"academic_year"`
	ClassDescription  *string   `json:"description,omitempty"`
	ClassCreatedAt    time.Time `json:"created_at"`
}

func FromModelClass(m *model.ClassModel) *ClassResponse {
	return &ClassResponse{
		ClassID:           m.ClassID,
		ClassName:         m.ClassName,
		ClassAcademicYear: m.ClassAcademicYear,
		ClassDescription:  m.ClassDescription,
		ClassCreatedAt:    m.ClassCreatedAt,
	}
}

func FromModelClasses(ms []model.ClassModel) []ClassResponse {
	out := make([]ClassResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *FromModelClass(&ms[i]))
	}
	return out
}
