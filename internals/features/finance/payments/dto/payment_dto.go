// file: internals/features/finance/payments/dto/payment_dto.go
package dto

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	model "schoolku_backend/internals/features/finance/payments/model"
	service "schoolku_backend/internals/features/finance/payments/service"
)

func errValidation(msg string) error {
	return fiber.NewError(fiber.StatusBadRequest, msg)
}

/* =========================================================
   REQUEST: Record
========================================================= */

type RecordPaymentRequest struct {
	PaymentStudentID      uuid.UUID `json:"student_id" validate:"required"`
	PaymentFeeStructureID uuid.UUID `json:"fee_structure_id" validate:"required"`

	PaymentAmount string `json:"amount_paid" validate:"required"`

	// "YYYY-MM-DD"
	PaymentDate   string `json:"payment_date" validate:"required,datetime=2006-01-02"`
	PaymentMethod string `json:"payment_method" validate:"required"`

	PaymentReceiptNumber *string `json:"receipt_number" validate:"omitempty,max=40"`
	PaymentNotes         *string `json:"notes"`

	PaymentDiscountAmount *string `json:"discount_amount"`
	PaymentDiscountReason *string `json:"discount_reason" validate:"omitempty,max=160"`
}

func (r *RecordPaymentRequest) ToInput(schoolID uuid.UUID, createdBy *uuid.UUID) (*service.RecordInput, error) {
	amount, err := decimal.NewFromString(r.PaymentAmount)
	if err != nil {
		return nil, errValidation("amount_paid bukan angka yang valid")
	}
	date, err := time.Parse("2006-01-02", r.PaymentDate)
	if err != nil {
		return nil, errValidation("payment_date harus berformat YYYY-MM-DD")
	}

	in := &service.RecordInput{
		SchoolID:       schoolID,
		StudentID:      r.PaymentStudentID,
		FeeStructureID: r.PaymentFeeStructureID,
		Amount:         amount,
		PaymentDate:    date,
		Method:         model.PaymentMethod(r.PaymentMethod),
		ReceiptNumber:  r.PaymentReceiptNumber,
		Notes:          r.PaymentNotes,
		DiscountAmount: decimal.Zero,
		DiscountReason: r.PaymentDiscountReason,
		CreatedBy:      createdBy,
	}
	if r.PaymentDiscountAmount != nil && *r.PaymentDiscountAmount != "" {
		disc, err := decimal.NewFromString(*r.PaymentDiscountAmount)
		if err != nil {
			return nil, errValidation("discount_amount bukan angka yang valid")
		}
		in.DiscountAmount = disc
	}
	return in, nil
}

/* =========================================================
   REQUEST: Online checkout (Snap)
========================================================= */

type CreateOnlinePaymentRequest struct {
	PaymentStudentID      uuid.UUID `json:"student_id" validate:"required"`
	PaymentFeeStructureID uuid.UUID `json:"fee_structure_id" validate:"required"`
	PaymentAmount         string    `json:"amount_paid" validate:"required"`

	CustomerName  string `json:"customer_name" validate:"required"`
	CustomerEmail string `json:"customer_email" validate:"required,email"`
	CustomerPhone string `json:"customer_phone"`
}

/* =========================================================
   RESPONSE
========================================================= */

type PaymentResponse struct {
	PaymentID             uuid.UUID  `json:"payment_id"`
	PaymentStudentID      uuid.UUID  `json:"student_id"`
	PaymentFeeStructureID uuid.UUID  `json:"fee_structure_id"`
	PaymentInstallmentID  *uuid.UUID `json:"installment_id,omitempty"`
	PaymentAmount         string     `json:"amount_paid"`
	PaymentDate           string     `json:"payment_date"`
	PaymentMethod         string     `json:"payment_method"`
	PaymentReceiptNumber  *string    `json:"receipt_number,omitempty"`
	PaymentNotes          *string    `json:"notes,omitempty"`
	PaymentDiscountAmount string     `json:"discount_amount"`
	PaymentDiscountReason *string    `json:"discount_reason,omitempty"`
	PaymentStatus         string     `json:"status"`
	PaymentCreatedAt      time.Time  `json:"created_at"`
}

func FromModelPayment(m *model.PaymentModel) *PaymentResponse {
	return &PaymentResponse{
		PaymentID:             m.PaymentID,
		PaymentStudentID:      m.PaymentStudentID,
		PaymentFeeStructureID: m.PaymentFeeStructureID,
		PaymentInstallmentID:  m.PaymentInstallmentID,
		PaymentAmount:         m.PaymentAmount.StringFixed(2),
		PaymentDate:           m.PaymentDate.Format("2006-01-02"),
		PaymentMethod:         string(m.PaymentMethod),
		PaymentReceiptNumber:  m.PaymentReceiptNumber,
		PaymentNotes:          m.PaymentNotes,
		PaymentDiscountAmount: m.PaymentDiscountAmount.StringFixed(2),
		PaymentDiscountReason: m.PaymentDiscountReason,
		PaymentStatus:         string(m.PaymentStatus),
		PaymentCreatedAt:      m.PaymentCreatedAt,
	}
}

func FromModelPayments(ms []model.PaymentModel) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *FromModelPayment(&ms[i]))
	}
	return out
}

type SnapTokenResponse struct {
	PaymentID   uuid.UUID `json:"payment_id"`
	OrderID     string    `json:"order_id"`
	SnapToken   string    `json:"snap_token"`
	RedirectURL string    `json:"redirect_url"`
}
