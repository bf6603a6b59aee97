package service

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	feeModel "schoolku_backend/internals/features/finance/fee_structures/model"
	model "schoolku_backend/internals/features/finance/installments/model"
	paymentModel "schoolku_backend/internals/features/finance/payments/model"
	studentModel "schoolku_backend/internals/features/school/students/model"
)

type InstallmentService struct {
	DB *gorm.DB
}

func NewInstallmentService(db *gorm.DB) *InstallmentService {
	return &InstallmentService{DB: db}
}

type GenerateInput struct {
	SchoolID       uuid.UUID
	StudentID      uuid.UUID
	FeeStructureID uuid.UUID
	PlanID         uuid.UUID
	StartDate      time.Time
	PeriodDays     int
}

// BuildInstallmentRows menyusun baris cicilan dari plan (tanpa menyentuh DB).
// due_date cicilan ke-k = start_date + (k-1) × period_days.
func BuildInstallmentRows(fs *feeModel.FeeStructureModel, plan *model.InstallmentPlanModel, in GenerateInput) ([]model.InstallmentModel, error) {
	if plan.InstallmentPlanFeeStructureID != fs.FeeStructureID {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Plan tidak terhubung ke fee structure tersebut")
	}
	if in.PeriodDays < 1 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "period_days minimal 1")
	}

	var amounts []decimal.Decimal
	switch plan.InstallmentPlanType {
	case model.InstallmentPlanTypeEqual:
		parts, err := SplitEqual(fs.FeeStructureAmount, plan.InstallmentPlanCount)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		amounts = parts
	case model.InstallmentPlanTypeCustom:
		parts, err := ParseCustomAmounts(plan.InstallmentPlanCustomAmounts)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := ValidateCustomAmounts(fs.FeeStructureAmount, plan.InstallmentPlanCount, parts); err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		amounts = parts
	default:
		return nil, fiber.NewError(fiber.StatusBadRequest, "Jenis plan tidak dikenal")
	}

	rows := make([]model.InstallmentModel, len(amounts))
	for i, amt := range amounts {
		rows[i] = model.InstallmentModel{
			InstallmentSchoolID:       in.SchoolID,
			InstallmentStudentID:      in.StudentID,
			InstallmentFeeStructureID: in.FeeStructureID,
			InstallmentPlanID:         plan.InstallmentPlanID,
			InstallmentNumber:         i + 1,
			InstallmentDueAmount:      amt,
			InstallmentDueDate:        in.StartDate.AddDate(0, 0, i*in.PeriodDays),
			InstallmentPaidAmount:     decimal.Zero,
			InstallmentStatus:         model.InstallmentStatusPending,
			InstallmentLateFee:        decimal.Zero,
		}
	}
	return rows, nil
}

// Generate membuat cicilan untuk (student, fee_structure).
// Gagal 409 bila sudah ada — uniqueness constraint di DB yang jadi guard
// terakhir saat ada request concurrent, bukan cek count di bawah.
func (s *InstallmentService) Generate(in GenerateInput) ([]model.InstallmentModel, error) {
	fs, plan, err := s.loadRefs(in)
	if err != nil {
		return nil, err
	}

	var existing int64
	if err := s.DB.Model(&model.InstallmentModel{}).
		Where("installment_school_id = ? AND installment_student_id = ? AND installment_fee_structure_id = ?",
			in.SchoolID, in.StudentID, in.FeeStructureID).
		Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, fiber.NewError(fiber.StatusConflict,
			"Cicilan untuk siswa & fee structure ini sudah ada. Gunakan endpoint regenerate untuk menggantinya.")
	}

	rows, err := BuildInstallmentRows(fs, plan, in)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Create(&rows).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return nil, fiber.NewError(fiber.StatusConflict,
				"Cicilan untuk siswa & fee structure ini sudah ada. Gunakan endpoint regenerate untuk menggantinya.")
		}
		return nil, err
	}
	return rows, nil
}

// Regenerate menghapus cicilan lama lalu membuat ulang dalam satu transaksi.
// Hanya boleh dipanggil setelah caller konfirmasi eksplisit (confirm=true di
// controller) — pemisahan generate/regenerate ini memang untuk mencegah
// kewajiban finansial dobel karena kecelakaan.
func (s *InstallmentService) Regenerate(in GenerateInput) ([]model.InstallmentModel, error) {
	fs, plan, err := s.loadRefs(in)
	if err != nil {
		return nil, err
	}

	rows, err := BuildInstallmentRows(fs, plan, in)
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("installment_school_id = ? AND installment_student_id = ? AND installment_fee_structure_id = ?",
				in.SchoolID, in.StudentID, in.FeeStructureID).
			Delete(&model.InstallmentModel{}).Error; err != nil {
			return err
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *InstallmentService) loadRefs(in GenerateInput) (*feeModel.FeeStructureModel, *model.InstallmentPlanModel, error) {
	var fs feeModel.FeeStructureModel
	if err := s.DB.
		Where("fee_structure_id = ? AND fee_structure_school_id = ?", in.FeeStructureID, in.SchoolID).
		First(&fs).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fiber.NewError(fiber.StatusNotFound, "Fee structure tidak ditemukan")
		}
		return nil, nil, err
	}

	var plan model.InstallmentPlanModel
	if err := s.DB.
		Where("installment_plan_id = ? AND installment_plan_school_id = ?", in.PlanID, in.SchoolID).
		First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fiber.NewError(fiber.StatusNotFound, "Installment plan tidak ditemukan")
		}
		return nil, nil, err
	}
	if !plan.InstallmentPlanIsActive {
		return nil, nil, fiber.NewError(fiber.StatusBadRequest, "Installment plan sudah nonaktif")
	}

	var student studentModel.StudentModel
	if err := s.DB.
		Where("student_id = ? AND student_school_id = ?", in.StudentID, in.SchoolID).
		First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fiber.NewError(fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return nil, nil, err
	}

	return &fs, &plan, nil
}

type ApplyPaymentInput struct {
	SchoolID      uuid.UUID
	InstallmentID uuid.UUID
	Amount        decimal.Decimal
	PaymentDate   time.Time
	Method        paymentModel.PaymentMethod
	ReceiptNumber *string
	Notes         *string
	CreatedBy     *uuid.UUID
}

// ApplyPayment menambah paid_amount cicilan + menulis baris PaymentLedger
// dalam SATU transaksi, supaya kedua tampilan selalu rekonsiliasi.
func (s *InstallmentService) ApplyPayment(in ApplyPaymentInput) (*model.InstallmentModel, *paymentModel.PaymentModel, error) {
	if !in.Amount.IsPositive() {
		return nil, nil, fiber.NewError(fiber.StatusBadRequest, "Nominal pembayaran harus > 0")
	}

	var inst model.InstallmentModel
	var pay paymentModel.PaymentModel

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("installment_id = ? AND installment_school_id = ?", in.InstallmentID, in.SchoolID).
			First(&inst).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Cicilan tidak ditemukan")
			}
			return err
		}

		newPaid := inst.InstallmentPaidAmount.Add(in.Amount)
		inst.InstallmentPaidAmount = newPaid
		inst.InstallmentStatus = RecomputeStatus(inst.InstallmentDueAmount, newPaid, inst.InstallmentDueDate, in.PaymentDate)

		if err := tx.Model(&model.InstallmentModel{}).
			Where("installment_id = ?", inst.InstallmentID).
			Updates(map[string]interface{}{
				"installment_paid_amount": inst.InstallmentPaidAmount,
				"installment_status":      inst.InstallmentStatus,
			}).Error; err != nil {
			return err
		}

		pay = paymentModel.PaymentModel{
			PaymentSchoolID:       in.SchoolID,
			PaymentStudentID:      inst.InstallmentStudentID,
			PaymentFeeStructureID: inst.InstallmentFeeStructureID,
			PaymentInstallmentID:  &inst.InstallmentID,
			PaymentAmount:         in.Amount,
			PaymentDate:           in.PaymentDate,
			PaymentMethod:         in.Method,
			PaymentReceiptNumber:  in.ReceiptNumber,
			PaymentNotes:          in.Notes,
			PaymentDiscountAmount: decimal.Zero,
			PaymentStatus:         paymentModel.PaymentStatusSettled,
			PaymentCreatedBy:      in.CreatedBy,
		}
		if err := tx.Create(&pay).Error; err != nil {
			msg := strings.ToLower(err.Error())
			if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
				return fiber.NewError(fiber.StatusConflict, "Nomor kwitansi sudah dipakai")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return &inst, &pay, nil
}
