package service

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	feeModel "schoolku_backend/internals/features/finance/fee_structures/model"
	model "schoolku_backend/internals/features/finance/payments/model"
)

type BalanceSummary struct {
	TotalDue      decimal.Decimal `json:"total_due"`
	TotalDiscount decimal.Decimal `json:"total_discount"`
	TotalPaid     decimal.Decimal `json:"total_paid"`
	Remaining     decimal.Decimal `json:"remaining"`
}

// SummarizeBalance menjumlahkan seluruh payment SETTLED untuk satu pasangan
// (student, fee_structure). Remaining difloor di 0 untuk tampilan —
// ledger mentah tetap menyimpan event pembayaran apa adanya (overpayment
// tidak ditolak, lihat Record).
func SummarizeBalance(feeAmount decimal.Decimal, payments []model.PaymentModel) BalanceSummary {
	totalPaid := decimal.Zero
	totalDiscount := decimal.Zero
	for i := range payments {
		if !payments[i].Counted() {
			continue
		}
		totalPaid = totalPaid.Add(payments[i].PaymentAmount)
		totalDiscount = totalDiscount.Add(payments[i].PaymentDiscountAmount)
	}

	remaining := feeAmount.Sub(totalDiscount).Sub(totalPaid)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	return BalanceSummary{
		TotalDue:      feeAmount,
		TotalDiscount: totalDiscount,
		TotalPaid:     totalPaid,
		Remaining:     remaining,
	}
}

type PaymentService struct {
	DB *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{DB: db}
}

type RecordInput struct {
	SchoolID       uuid.UUID
	StudentID      uuid.UUID
	FeeStructureID uuid.UUID
	Amount         decimal.Decimal
	PaymentDate    time.Time
	Method         model.PaymentMethod
	ReceiptNumber  *string
	Notes          *string
	DiscountAmount decimal.Decimal
	DiscountReason *string
	CreatedBy      *uuid.UUID
	// untuk method=online: status pending + order id gateway
	Status     model.PaymentStatus
	ExternalID *string
}

// Record menulis satu event pembayaran append-only.
// Overpayment SENGAJA diizinkan — event dicatat apa adanya, koreksi lewat
// BalanceAdjustment, bukan edit. Yang ditolak: nominal <= 0 dan kwitansi dobel.
func (s *PaymentService) Record(in RecordInput) (*model.PaymentModel, error) {
	if !in.Amount.IsPositive() {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Nominal pembayaran harus > 0")
	}
	if in.DiscountAmount.IsNegative() {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Nominal diskon tidak boleh negatif")
	}
	if !in.Method.Valid() {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Metode pembayaran tidak dikenal")
	}

	var fs feeModel.FeeStructureModel
	if err := s.DB.
		Where("fee_structure_id = ? AND fee_structure_school_id = ?", in.FeeStructureID, in.SchoolID).
		First(&fs).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Fee structure tidak ditemukan")
		}
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = model.PaymentStatusSettled
	}
	var settledAt *time.Time
	if status == model.PaymentStatusSettled {
		now := time.Now()
		settledAt = &now
	}

	pay := model.PaymentModel{
		PaymentSchoolID:       in.SchoolID,
		PaymentStudentID:      in.StudentID,
		PaymentFeeStructureID: in.FeeStructureID,
		PaymentAmount:         in.Amount,
		PaymentDate:           in.PaymentDate,
		PaymentMethod:         in.Method,
		PaymentReceiptNumber:  in.ReceiptNumber,
		PaymentNotes:          in.Notes,
		PaymentDiscountAmount: in.DiscountAmount,
		PaymentDiscountReason: in.DiscountReason,
		PaymentStatus:         status,
		PaymentExternalID:     in.ExternalID,
		PaymentSettledAt:      settledAt,
		PaymentCreatedBy:      in.CreatedBy,
	}

	if err := s.DB.Create(&pay).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return nil, fiber.NewError(fiber.StatusConflict, "Nomor kwitansi sudah dipakai")
		}
		return nil, err
	}
	return &pay, nil
}

// GetBalance menghitung saldo pasangan (student, fee_structure).
func (s *PaymentService) GetBalance(schoolID, studentID, feeStructureID uuid.UUID) (*BalanceSummary, error) {
	var fs feeModel.FeeStructureModel
	if err := s.DB.
		Where("fee_structure_id = ? AND fee_structure_school_id = ?", feeStructureID, schoolID).
		First(&fs).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Fee structure tidak ditemukan")
		}
		return nil, err
	}

	var rows []model.PaymentModel
	if err := s.DB.
		Where("payment_school_id = ? AND payment_student_id = ? AND payment_fee_structure_id = ?",
			schoolID, studentID, feeStructureID).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	summary := SummarizeBalance(fs.FeeStructureAmount, rows)
	return &summary, nil
}
