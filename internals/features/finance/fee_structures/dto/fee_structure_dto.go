// file: internals/features/finance/fee_structures/dto/fee_structure_dto.go
package dto

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	model "schoolku_backend/internals/features/finance/fee_structures/model"
)

func errValidation(msg string) error {
	return fiber.NewError(fiber.StatusBadRequest, msg)
}

/* =========================================================
   REQUEST: Create
========================================================= */

type CreateFeeStructureRequest struct {
	FeeStructureClassID uuid.UUID `json:"class_obj_id" validate:"required"`
	FeeStructureFeeType string    `json:"fee_type" validate:"required"`

	// string supaya presisi desimal tidak hilang di JSON
	FeeStructureAmount string `json:"amount" validate:"required"`

	FeeStructureDescription *string `json:"description"`
	FeeStructureIsOptional  bool    `json:"is_optional"`

	// "YYYY-MM-DD"
	FeeStructureDueDate *string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`

	// "2024-25"
	FeeStructureAcademicYear string `json:"academic_year" validate:"required,min=7,max=9"`
}

func (r *CreateFeeStructureRequest) ToModel(schoolID uuid.UUID) (*model.FeeStructureModel, error) {
	ft := model.FeeType(r.FeeStructureFeeType)
	if !ft.Valid() {
		return nil, errValidation("fee_type tidak dikenal")
	}
	amount, err := decimal.NewFromString(r.FeeStructureAmount)
	if err != nil {
		return nil, errValidation("amount bukan angka yang valid")
	}
	if !amount.IsPositive() {
		return nil, errValidation("amount harus lebih dari 0")
	}

	m := &model.FeeStructureModel{
		FeeStructureSchoolID:     schoolID,
		FeeStructureClassID:      r.FeeStructureClassID,
		FeeStructureFeeType:      ft,
		FeeStructureAmount:       amount,
		FeeStructureDescription:  r.FeeStructureDescription,
		FeeStructureIsOptional:   r.FeeStructureIsOptional,
		FeeStructureAcademicYear: r.FeeStructureAcademicYear,
	}
	if r.FeeStructureDueDate != nil && *r.FeeStructureDueDate != "" {
		t, err := time.Parse("2006-01-02", *r.FeeStructureDueDate)
		if err != nil {
			return nil, errValidation("due_date harus berformat YYYY-MM-DD")
		}
		m.FeeStructureDueDate = &t
	}
	return m, nil
}

/* =========================================================
   REQUEST: Update (partial)
========================================================= */

type UpdateFeeStructureRequest struct {
	FeeStructureFeeType      *string `json:"fee_type"`
	FeeStructureAmount       *string `json:"amount"`
	FeeStructureDescription  *string `json:"description"`
	FeeStructureIsOptional   *bool   `json:"is_optional"`
	FeeStructureDueDate      *string `json:"due_date"`
	FeeStructureAcademicYear *string `json:"academic_year"`
}

// WantsAmountChange melaporkan apakah patch ini mengubah nominal.
// Controller memakai ini untuk guard struktur yang sudah punya cicilan.
func (r *UpdateFeeStructureRequest) WantsAmountChange(current decimal.Decimal) (bool, decimal.Decimal, error) {
	if r.FeeStructureAmount == nil {
		return false, decimal.Zero, nil
	}
	amount, err := decimal.NewFromString(*r.FeeStructureAmount)
	if err != nil {
		return false, decimal.Zero, errValidation("amount bukan angka yang valid")
	}
	if !amount.IsPositive() {
		return false, decimal.Zero, errValidation("amount harus lebih dari 0")
	}
	return !amount.Equal(current), amount, nil
}

func (r *UpdateFeeStructureRequest) ApplyTo(m *model.FeeStructureModel) error {
	if r.FeeStructureFeeType != nil {
		ft := model.FeeType(*r.FeeStructureFeeType)
		if !ft.Valid() {
			return errValidation("fee_type tidak dikenal")
		}
		m.FeeStructureFeeType = ft
	}
	if r.FeeStructureDescription != nil {
		m.FeeStructureDescription = r.FeeStructureDescription
	}
	if r.FeeStructureIsOptional != nil {
		m.FeeStructureIsOptional = *r.FeeStructureIsOptional
	}
	if r.FeeStructureDueDate != nil {
		if *r.FeeStructureDueDate == "" {
			m.FeeStructureDueDate = nil
		} else {
			t, err := time.Parse("2006-01-02", *r.FeeStructureDueDate)
			if err != nil {
				return errValidation("due_date harus berformat YYYY-MM-DD")
			}
			m.FeeStructureDueDate = &t
		}
	}
	if r.FeeStructureAcademicYear != nil {
		if *r.FeeStructureAcademicYear == "" {
			return errValidation("academic_year tidak boleh kosong")
		}
		m.FeeStructureAcademicYear = *r.FeeStructureAcademicYear
	}
	return nil
}

/* =========================================================
   RESPONSE
========================================================= */

type FeeStructureResponse struct {
	FeeStructureID           uuid.UUID `json:"fee_structure_id"`
	FeeStructureClassID      uuid.UUID `json:"class_obj_id"`
	FeeStructureFeeType      string    `json:"fee_type"`
	FeeStructureAmount       string    `json:"amount"`
	FeeStructureDescription  *string   `json:"description,omitempty"`
	FeeStructureIsOptional   bool      `json:"is_optional"`
	FeeStructureDueDate      *string   `json:"due_date,omitempty"`
	FeeStructureAcademicYear string    `json:"academic_year"`
	FeeStructureCreatedAt    time.Time `json:"created_at"`
	FeeStructureUpdatedAt    time.Time `json:"updated_at"`
}

func FromModelFeeStructure(m *model.FeeStructureModel) *FeeStructureResponse {
	var due *string
	if m.FeeStructureDueDate != nil {
		s := m.FeeStructureDueDate.Format("2006-01-02")
		due = &s
	}
	return &FeeStructureResponse{
		FeeStructureID:           m.FeeStructureID,
		FeeStructureClassID:      m.FeeStructureClassID,
		FeeStructureFeeType:      string(m.FeeStructureFeeType),
		FeeStructureAmount:       m.FeeStructureAmount.StringFixed(2),
		FeeStructureDescription:  m.FeeStructureDescription,
		FeeStructureIsOptional:   m.FeeStructureIsOptional,
		FeeStructureDueDate:      due,
		FeeStructureAcademicYear: m.FeeStructureAcademicYear,
		FeeStructureCreatedAt:    m.FeeStructureCreatedAt,
		FeeStructureUpdatedAt:    m.FeeStructureUpdatedAt,
	}
}

func FromModelFeeStructures(ms []model.FeeStructureModel) []FeeStructureResponse {
	out := make([]FeeStructureResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *FromModelFeeStructure(&ms[i]))
	}
	return out
}
