// file: internals/features/finance/installments/dto/installment_dto.go
package dto

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	configs "schoolku_backend/internals/configs"
	model "schoolku_backend/internals/features/finance/installments/model"
	service "schoolku_backend/internals/features/finance/installments/service"
)

func errValidation(msg string) error {
	return fiber.NewError(fiber.StatusBadRequest, msg)
}

/* =========================================================
   REQUEST: Create plan
========================================================= */

type CreateInstallmentPlanRequest struct {
	InstallmentPlanFeeStructureID uuid.UUID `json:"fee_structure_id" validate:"required"`
	InstallmentPlanName           string    `json:"name" validate:"required,max=120"`
	InstallmentPlanCount          int       `json:"number_of_installments" validate:"required,min=1"`
	InstallmentPlanType           string    `json:"installment_type" validate:"required"`

	// wajib untuk type=custom: nominal per cicilan, jumlah = fee amount
	InstallmentPlanCustomAmounts []string `json:"custom_amounts"`

	InstallmentPlanDescription *string `json:"description"`
}

func (r *CreateInstallmentPlanRequest) ToModel(schoolID uuid.UUID, feeAmount decimal.Decimal) (*model.InstallmentPlanModel, error) {
	pt := model.InstallmentPlanType(r.InstallmentPlanType)
	if !pt.Valid() {
		return nil, errValidation("installment_type harus equal atau custom")
	}

	m := &model.InstallmentPlanModel{
		InstallmentPlanSchoolID:       schoolID,
		InstallmentPlanFeeStructureID: r.InstallmentPlanFeeStructureID,
		InstallmentPlanName:           r.InstallmentPlanName,
		InstallmentPlanCount:          r.InstallmentPlanCount,
		InstallmentPlanType:           pt,
		InstallmentPlanDescription:    r.InstallmentPlanDescription,
		InstallmentPlanIsActive:       true,
	}

	if pt == model.InstallmentPlanTypeCustom {
		if len(r.InstallmentPlanCustomAmounts) == 0 {
			return nil, errValidation("custom_amounts wajib diisi untuk installment_type=custom")
		}
		parts := make([]decimal.Decimal, 0, len(r.InstallmentPlanCustomAmounts))
		for i, s := range r.InstallmentPlanCustomAmounts {
			d, err := decimal.NewFromString(s)
			if err != nil {
				return nil, errValidation("custom_amounts[" + strconv.Itoa(i) + "] bukan angka yang valid")
			}
			parts = append(parts, d)
		}
		if err := service.ValidateCustomAmounts(feeAmount, r.InstallmentPlanCount, parts); err != nil {
			return nil, errValidation(err.Error())
		}
		raw, err := json.Marshal(r.InstallmentPlanCustomAmounts)
		if err != nil {
			return nil, err
		}
		m.InstallmentPlanCustomAmounts = datatypes.JSON(raw)
	}
	return m, nil
}

/* =========================================================
   REQUEST: Generate / Regenerate
========================================================= */

type GenerateInstallmentsRequest struct {
	StudentID      uuid.UUID `json:"student_id" validate:"required"`
	FeeStructureID uuid.UUID `json:"fee_structure_id" validate:"required"`
	PlanID         uuid.UUID `json:"installment_plan_id" validate:"required"`

	// "YYYY-MM-DD"
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`

	// Jarak antar jatuh tempo. Default dari env FINANCE_INSTALLMENT_PERIOD_DAYS (30).
	PeriodDays *int `json:"period_days" validate:"omitempty,min=1"`

	// Regenerate wajib confirm=true — menghapus & membuat ulang kewajiban finansial.
	Confirm bool `json:"confirm"`
}

func (r *GenerateInstallmentsRequest) ToInput(schoolID uuid.UUID) (*service.GenerateInput, error) {
	start, err := time.Parse("2006-01-02", r.StartDate)
	if err != nil {
		return nil, errValidation("start_date harus berformat YYYY-MM-DD")
	}

	period := defaultPeriodDays()
	if r.PeriodDays != nil {
		period = *r.PeriodDays
	}

	return &service.GenerateInput{
		SchoolID:       schoolID,
		StudentID:      r.StudentID,
		FeeStructureID: r.FeeStructureID,
		PlanID:         r.PlanID,
		StartDate:      start,
		PeriodDays:     period,
	}, nil
}

func defaultPeriodDays() int {
	if v := configs.GetEnv("FINANCE_INSTALLMENT_PERIOD_DAYS", "30"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			return n
		}
	}
	return 30
}

/* =========================================================
   REQUEST: Pay
========================================================= */

type PayInstallmentRequest struct {
	Amount        string  `json:"amount" validate:"required"`
	PaymentDate   string  `json:"payment_date" validate:"required,datetime=2006-01-02"`
	PaymentMethod string  `json:"payment_method" validate:"required"`
	ReceiptNumber *string `json:"receipt_number" validate:"omitempty,max=40"`
	Notes         *string `json:"notes"`
}

/* =========================================================
   RESPONSE
========================================================= */

type InstallmentPlanResponse struct {
	InstallmentPlanID             uuid.UUID `json:"installment_plan_id"`
	InstallmentPlanFeeStructureID uuid.UUID `json:"fee_structure_id"`
	InstallmentPlanName           string    `json:"name"`
	InstallmentPlanCount          int       `json:"number_of_installments"`
	InstallmentPlanType           string    `json:"installment_type"`
	InstallmentPlanCustomAmounts  []string  `json:"custom_amounts,omitempty"`
	InstallmentPlanDescription    *string   `json:"description,omitempty"`
	InstallmentPlanIsActive       bool      `json:"is_active"`
	InstallmentPlanCreatedAt      time.Time `json:"created_at"`
}

func FromModelInstallmentPlan(m *model.InstallmentPlanModel) *InstallmentPlanResponse {
	resp := &InstallmentPlanResponse{
		InstallmentPlanID:             m.InstallmentPlanID,
		InstallmentPlanFeeStructureID: m.InstallmentPlanFeeStructureID,
		InstallmentPlanName:           m.InstallmentPlanName,
		InstallmentPlanCount:          m.InstallmentPlanCount,
		InstallmentPlanType:           string(m.InstallmentPlanType),
		InstallmentPlanDescription:    m.InstallmentPlanDescription,
		InstallmentPlanIsActive:       m.InstallmentPlanIsActive,
		InstallmentPlanCreatedAt:      m.InstallmentPlanCreatedAt,
	}
	if len(m.InstallmentPlanCustomAmounts) > 0 {
		var amounts []string
		if json.Unmarshal(m.InstallmentPlanCustomAmounts, &amounts) == nil {
			resp.InstallmentPlanCustomAmounts = amounts
		}
	}
	return resp
}

func FromModelInstallmentPlans(ms []model.InstallmentPlanModel) []InstallmentPlanResponse {
	out := make([]InstallmentPlanResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *FromModelInstallmentPlan(&ms[i]))
	}
	return out
}

type InstallmentResponse struct {
	InstallmentID             uuid.UUID `json:"installment_id"`
	InstallmentStudentID      uuid.UUID `json:"student_id"`
	InstallmentFeeStructureID uuid.UUID `json:"fee_structure_id"`
	InstallmentPlanID         uuid.UUID `json:"installment_plan_id"`
	InstallmentNumber         int       `json:"installment_number"`
	InstallmentDueAmount      string    `json:"due_amount"`
	InstallmentDueDate        string    `json:"due_date"`
	InstallmentPaidAmount     string    `json:"paid_amount"`
	InstallmentRemaining      string    `json:"remaining_amount"`
	InstallmentStatus         string    `json:"status"`
	InstallmentLateFee        string    `json:"late_fee"`
}

func FromModelInstallment(m *model.InstallmentModel) *InstallmentResponse {
	return &InstallmentResponse{
		InstallmentID:             m.InstallmentID,
		InstallmentStudentID:      m.InstallmentStudentID,
		InstallmentFeeStructureID: m.InstallmentFeeStructureID,
		InstallmentPlanID:         m.InstallmentPlanID,
		InstallmentNumber:         m.InstallmentNumber,
		InstallmentDueAmount:      m.InstallmentDueAmount.StringFixed(2),
		InstallmentDueDate:        m.InstallmentDueDate.Format("2006-01-02"),
		InstallmentPaidAmount:     m.InstallmentPaidAmount.StringFixed(2),
		InstallmentRemaining:      m.RemainingAmount().StringFixed(2),
		InstallmentStatus:         string(m.InstallmentStatus),
		InstallmentLateFee:        m.InstallmentLateFee.StringFixed(2),
	}
}

func FromModelInstallments(ms []model.InstallmentModel) []InstallmentResponse {
	out := make([]InstallmentResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *FromModelInstallment(&ms[i]))
	}
	return out
}
