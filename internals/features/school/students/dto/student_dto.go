// file: internals/features/school/students/dto/student_dto.go
package dto

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	model "schoolku_backend/internals/features/school/students/model"
)

var errInvalidStatus = fiber.NewError(fiber.StatusBadRequest, "status harus active, inactive, atau alumni")

type CreateStudentRequest struct {
	StudentName    string     `json:"student_name" validate:"required,max=120"`
	StudentClassID *uuid.UUID `json:"class_id"`
	StudentNIS     *string    `json:"nis" validate:"omitempty,max=30"`
}

func (r *CreateStudentRequest) ToModel(schoolID uuid.UUID) *model.StudentModel {
	return &model.StudentModel{
		StudentSchoolID: schoolID,
		StudentName:     r.StudentName,
		StudentClassID:  r.StudentClassID,
		StudentNIS:      r.StudentNIS,
		StudentStatus:   model.StudentStatusActive,
	}
}

type UpdateStudentRequest struct {
	StudentName    *string    `json:"student_name" validate:"omitempty,max=120"`
	StudentClassID *uuid.UUID `json:"class_id"`
	StudentNIS     *string    `json:"nis" validate:"omitempty,max=30"`
	StudentStatus  *string    `json:"status"`
}

func (r *UpdateStudentRequest) ApplyTo(m *model.StudentModel) error {
	if r.StudentName != nil && *r.StudentName != "" {
		m.StudentName = *r.StudentName
	}
	if r.StudentClassID != nil {
		m.StudentClassID = r.StudentClassID
	}
	if r.StudentNIS != nil {
		m.StudentNIS = r.StudentNIS
	}
	if r.StudentStatus != nil {
		switch model.StudentStatus(*r.StudentStatus) {
		case model.StudentStatusActive, model.StudentStatusInactive, model.StudentStatusAlumni:
			m.StudentStatus = model.StudentStatus(*r.StudentStatus)
		default:
			return errInvalidStatus
		}
	}
	return nil
}

type StudentResponse struct {
	StudentID        uuid.UUID  `json:"student_id"`
	StudentName      string     `json:"student_name"`
	StudentClassID   *uuid.UUID `json:"class_id,omitempty"`
	StudentNIS       *string    `json:"nis,omitempty"`
	StudentStatus    string     `json:"status"`
	StudentCreatedAt time.Time  `json:"created_at"`
}

func FromModelStudent(m *model.StudentModel) *StudentResponse {
	return &StudentResponse{
		StudentID:        m.StudentID,
		StudentName:      m.StudentName,
		StudentClassID:   m.StudentClassID,
		StudentNIS:       m.StudentNIS,
		StudentStatus:    string(m.StudentStatus),
		StudentCreatedAt: m.StudentCreatedAt,
	}
}

func FromModelStudents(ms []model.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *FromModelStudent(&ms[i]))
	}
	return out
}
