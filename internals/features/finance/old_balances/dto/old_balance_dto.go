// file: internals/features/finance/old_balances/dto/old_balance_dto.go
package dto

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	model "schoolku_backend/internals/features/finance/old_balances/model"
	service "schoolku_backend/internals/features/finance/old_balances/service"
)

func errValidation(msg string) error {
	return fiber.NewError(fiber.StatusBadRequest, msg)
}

/* =========================================================
   REQUEST: Record
========================================================= */

type RecordOldBalanceRequest struct {
	StudentID    uuid.UUID `json:"student_id" validate:"required"`
	AcademicYear string    `json:"academic_year" validate:"required,min=7,max=9"`
	ClassName    string    `json:"class_name" validate:"required,max=60"`
	Amount       string    `json:"balance_amount" validate:"required"`
}

func (r *RecordOldBalanceRequest) ToInput(schoolID uuid.UUID) (*service.RecordOldBalanceInput, error) {
	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		return nil, errValidation("balance_amount bukan angka yang valid")
	}
	return &service.RecordOldBalanceInput{
		SchoolID:     schoolID,
		StudentID:    r.StudentID,
		AcademicYear: r.AcademicYear,
		ClassName:    r.ClassName,
		Amount:       amount,
	}, nil
}

/* =========================================================
   REQUEST: Settle / Carry-forward / Adjustment
========================================================= */

type SettleOldBalanceRequest struct {
	// "YYYY-MM-DD", default hari ini
	SettledDate *string `json:"settled_date" validate:"omitempty,datetime=2006-01-02"`
}

type CarryForwardRequest struct {
	FromAcademicYear string  `json:"from_academic_year" validate:"required,min=7,max=9"`
	ToAcademicYear   string  `json:"to_academic_year" validate:"required,min=7,max=9"`
	ClassName        *string `json:"class_name" validate:"omitempty,max=60"`
}

type AddAdjustmentRequest struct {
	StudentID      uuid.UUID  `json:"student" validate:"required"`
	AdjustmentType string     `json:"adjustment_type" validate:"required"`
	Amount         string     `json:"amount" validate:"required"`
	Reason         string     `json:"reason" validate:"required"`
	AcademicYear   *string    `json:"academic_year" validate:"omitempty,min=7,max=9"`
	FeeStructureID *uuid.UUID `json:"fee_structure"`
}

func (r *AddAdjustmentRequest) ToInput(schoolID, createdBy uuid.UUID) (*service.AddAdjustmentInput, error) {
	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		return nil, errValidation("amount bukan angka yang valid")
	}
	return &service.AddAdjustmentInput{
		SchoolID:       schoolID,
		StudentID:      r.StudentID,
		Type:           model.AdjustmentType(r.AdjustmentType),
		Amount:         amount,
		Reason:         r.Reason,
		AcademicYear:   r.AcademicYear,
		FeeStructureID: r.FeeStructureID,
		CreatedBy:      createdBy,
	}, nil
}

/* =========================================================
   RESPONSE
========================================================= */

type OldBalanceResponse struct {
	OldBalanceID               uuid.UUID `json:"old_balance_id"`
	OldBalanceStudentID        uuid.UUID `json:"student_id"`
	OldBalanceAcademicYear     string    `json:"academic_year"`
	OldBalanceClassName        string    `json:"class_name"`
	OldBalanceAmount           string    `json:"balance_amount"`
	OldBalanceCarriedForwardTo *string   `json:"carried_forward_to,omitempty"`
	OldBalanceIsSettled        bool      `json:"is_settled"`
	OldBalanceSettledDate      *string   `json:"settled_date,omitempty"`
	OldBalanceCreatedAt        time.Time `json:"created_at"`
	OldBalanceUpdatedAt        time.Time `json:"updated_at"`
}

func FromModelOldBalance(m *model.OldBalanceModel) *OldBalanceResponse {
	resp := &OldBalanceResponse{
		OldBalanceID:               m.OldBalanceID,
		OldBalanceStudentID:        m.OldBalanceStudentID,
		OldBalanceAcademicYear:     m.OldBalanceAcademicYear,
		OldBalanceClassName:        m.OldBalanceClassName,
		OldBalanceAmount:           m.OldBalanceAmount.StringFixed(2),
		OldBalanceCarriedForwardTo: m.OldBalanceCarriedForwardTo,
		OldBalanceIsSettled:        m.OldBalanceIsSettled,
		OldBalanceCreatedAt:        m.OldBalanceCreatedAt,
		OldBalanceUpdatedAt:        m.OldBalanceUpdatedAt,
	}
	if m.OldBalanceSettledDate != nil {
		s := m.OldBalanceSettledDate.Format("2006-01-02")
		resp.OldBalanceSettledDate = &s
	}
	return resp
}

func FromModelOldBalances(ms []model.OldBalanceModel) []OldBalanceResponse {
	out := make([]OldBalanceResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *FromModelOldBalance(&ms[i]))
	}
	return out
}

type BalanceAdjustmentResponse struct {
	BalanceAdjustmentID             uuid.UUID  `json:"balance_adjustment_id"`
	BalanceAdjustmentStudentID      uuid.UUID  `json:"student"`
	BalanceAdjustmentType           string     `json:"adjustment_type"`
	BalanceAdjustmentAmount         string     `json:"amount"`
	BalanceAdjustmentReason         string     `json:"reason"`
	BalanceAdjustmentAcademicYear   *string    `json:"academic_year,omitempty"`
	BalanceAdjustmentFeeStructureID *uuid.UUID `json:"fee_structure,omitempty"`
	BalanceAdjustmentCreatedBy      uuid.UUID  `json:"created_by"`
	BalanceAdjustmentCreatedAt      time.Time  `json:"created_at"`
}

func FromModelBalanceAdjustment(m *model.BalanceAdjustmentModel) *BalanceAdjustmentResponse {
	return &BalanceAdjustmentResponse{
		BalanceAdjustmentID:             m.BalanceAdjustmentID,
		BalanceAdjustmentStudentID:      m.BalanceAdjustmentStudentID,
		BalanceAdjustmentType:           string(m.BalanceAdjustmentType),
		BalanceAdjustmentAmount:         m.BalanceAdjustmentAmount.StringFixed(2),
		BalanceAdjustmentReason:         m.BalanceAdjustmentReason,
		BalanceAdjustmentAcademicYear:   m.BalanceAdjustmentAcademicYear,
		BalanceAdjustmentFeeStructureID: m.BalanceAdjustmentFeeStructureID,
		BalanceAdjustmentCreatedBy:      m.BalanceAdjustmentCreatedBy,
		BalanceAdjustmentCreatedAt:      m.BalanceAdjustmentCreatedAt,
	}
}
