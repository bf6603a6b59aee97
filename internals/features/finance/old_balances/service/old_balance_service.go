package service

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	model "schoolku_backend/internals/features/finance/old_balances/model"
)

type OldBalanceService struct {
	DB *gorm.DB
}

func NewOldBalanceService(db *gorm.DB) *OldBalanceService {
	return &OldBalanceService{DB: db}
}

/* =========================================================
   Record
========================================================= */

type RecordOldBalanceInput struct {
	SchoolID     uuid.UUID
	StudentID    uuid.UUID
	AcademicYear string
	ClassName    string
	Amount       decimal.Decimal
}

func (s *OldBalanceService) Record(in RecordOldBalanceInput) (*model.OldBalanceModel, error) {
	if !in.Amount.IsPositive() {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Nominal hutang lama harus lebih dari 0")
	}
	if in.AcademicYear == "" || in.ClassName == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Tahun ajaran dan nama kelas wajib diisi")
	}

	ob := model.OldBalanceModel{
		OldBalanceSchoolID:     in.SchoolID,
		OldBalanceStudentID:    in.StudentID,
		OldBalanceAcademicYear: in.AcademicYear,
		OldBalanceClassName:    in.ClassName,
		OldBalanceAmount:       in.Amount,
	}
	if err := s.DB.Create(&ob).Error; err != nil {
		if isDuplicateErr(err) {
			return nil, fiber.NewError(fiber.StatusConflict,
				"Hutang lama untuk siswa & tahun ajaran ini sudah tercatat")
		}
		return nil, err
	}
	return &ob, nil
}

/* =========================================================
   Settle — satu arah, Conflict kalau sudah settled
========================================================= */

func (s *OldBalanceService) Settle(schoolID, oldBalanceID uuid.UUID, settledDate time.Time) (*model.OldBalanceModel, error) {
	var ob model.OldBalanceModel

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("old_balance_id = ? AND old_balance_school_id = ?", oldBalanceID, schoolID).
			First(&ob).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fiber.NewError(fiber.StatusNotFound, "Hutang lama tidak ditemukan")
			}
			return err
		}
		if ob.OldBalanceIsSettled {
			return fiber.NewError(fiber.StatusConflict, "Hutang lama ini sudah dilunasi")
		}

		ob.OldBalanceIsSettled = true
		ob.OldBalanceSettledDate = &settledDate
		return tx.Model(&model.OldBalanceModel{}).
			Where("old_balance_id = ?", ob.OldBalanceID).
			Updates(map[string]interface{}{
				"old_balance_is_settled":   true,
				"old_balance_settled_date": settledDate,
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return &ob, nil
}

/* =========================================================
   Carry-forward — bulk upsert, idempoten per (student, from_year)
========================================================= */

type CarryForwardInput struct {
	SchoolID         uuid.UUID
	FromAcademicYear string
	ToAcademicYear   string
	ClassName        *string // filter opsional
}

// CarryForward merangkum sisa cicilan belum lunas di from_year per siswa
// menjadi OldBalance, lalu menandai target tahunnya. Memakai
// INSERT ... ON CONFLICT DO UPDATE sehingga dijalankan ulang tidak
// menggandakan nominal (jumlahnya dihitung ulang dari sumber).
func (s *OldBalanceService) CarryForward(in CarryForwardInput) (int64, error) {
	if in.FromAcademicYear == "" || in.ToAcademicYear == "" {
		return 0, fiber.NewError(fiber.StatusBadRequest, "from_academic_year dan to_academic_year wajib diisi")
	}
	if in.FromAcademicYear == in.ToAcademicYear {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Tahun asal dan tahun tujuan tidak boleh sama")
	}

	query := `
		INSERT INTO old_balances (
			old_balance_school_id,
			old_balance_student_id,
			old_balance_academic_year,
			old_balance_class_name,
			old_balance_amount,
			old_balance_carried_forward_to,
			old_balance_created_at,
			old_balance_updated_at
		)
		SELECT
			i.installment_school_id,
			i.installment_student_id,
			fs.fee_structure_academic_year,
			COALESCE(c.class_name, '-'),
			SUM(i.installment_due_amount + i.installment_late_fee - i.installment_paid_amount),
			?,
			NOW(),
			NOW()
		FROM installments i
		JOIN fee_structures fs
			ON fs.fee_structure_id = i.installment_fee_structure_id
		JOIN students st
			ON st.student_id = i.installment_student_id
		LEFT JOIN classes c
			ON c.class_id = st.student_class_id
		WHERE i.installment_school_id = ?
			AND fs.fee_structure_academic_year = ?
			AND i.installment_status IN ('pending','partial','overdue')
			AND (i.installment_due_amount + i.installment_late_fee) > i.installment_paid_amount
			AND (?::text IS NULL OR c.class_name = ?)
		GROUP BY i.installment_school_id, i.installment_student_id,
			fs.fee_structure_academic_year, COALESCE(c.class_name, '-')
		ON CONFLICT (old_balance_school_id, old_balance_student_id, old_balance_academic_year)
		DO UPDATE SET
			old_balance_amount             = EXCLUDED.old_balance_amount,
			old_balance_class_name         = EXCLUDED.old_balance_class_name,
			old_balance_carried_forward_to = EXCLUDED.old_balance_carried_forward_to,
			old_balance_updated_at         = NOW()
		WHERE old_balances.old_balance_is_settled = FALSE`

	res := s.DB.Exec(query,
		in.ToAcademicYear,
		in.SchoolID,
		in.FromAcademicYear,
		in.ClassName, in.ClassName,
	)
	if res.Error != nil {
		return 0, fmt.Errorf("gagal carry-forward hutang lama: %w", res.Error)
	}

	log.Printf("[OLD_BALANCE] ✅ carry-forward %s → %s: %d baris (school=%s)",
		in.FromAcademicYear, in.ToAcademicYear, res.RowsAffected, in.SchoolID)
	return res.RowsAffected, nil
}

/* =========================================================
   Adjustment — append-only, reason wajib
========================================================= */

type AddAdjustmentInput struct {
	SchoolID       uuid.UUID
	StudentID      uuid.UUID
	Type           model.AdjustmentType
	Amount         decimal.Decimal
	Reason         string
	AcademicYear   *string
	FeeStructureID *uuid.UUID
	CreatedBy      uuid.UUID
}

func (s *OldBalanceService) AddAdjustment(in AddAdjustmentInput) (*model.BalanceAdjustmentModel, error) {
	if strings.TrimSpace(in.Reason) == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Alasan penyesuaian wajib diisi")
	}
	if !in.Type.Valid() {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Jenis penyesuaian tidak dikenal")
	}
	if in.Amount.IsZero() {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Nominal penyesuaian tidak boleh 0")
	}

	adj := model.BalanceAdjustmentModel{
		BalanceAdjustmentSchoolID:       in.SchoolID,
		BalanceAdjustmentStudentID:      in.StudentID,
		BalanceAdjustmentType:           in.Type,
		BalanceAdjustmentAmount:         in.Amount,
		BalanceAdjustmentReason:         strings.TrimSpace(in.Reason),
		BalanceAdjustmentAcademicYear:   in.AcademicYear,
		BalanceAdjustmentFeeStructureID: in.FeeStructureID,
		BalanceAdjustmentCreatedBy:      in.CreatedBy,
	}
	if err := s.DB.Create(&adj).Error; err != nil {
		return nil, err
	}
	return &adj, nil
}

/* =========================================================
   Outstanding
========================================================= */

type OutstandingSummary struct {
	RawOutstanding decimal.Decimal `json:"raw_outstanding"`
	Outstanding    decimal.Decimal `json:"outstanding"`
}

// ComputeOutstanding = saldo hutang − Σ adjustment (positif mengurangi
// hutang). Nilai display difloor di 0, nilai raw dibiarkan bisa negatif
// untuk keperluan audit.
func ComputeOutstanding(balance decimal.Decimal, adjustments []decimal.Decimal) OutstandingSummary {
	raw := balance
	for _, a := range adjustments {
		raw = raw.Sub(a)
	}
	display := raw
	if display.IsNegative() {
		display = decimal.Zero
	}
	return OutstandingSummary{RawOutstanding: raw, Outstanding: display}
}

// Outstanding memuat saldo + adjustment dari DB untuk satu siswa & tahun.
func (s *OldBalanceService) Outstanding(schoolID, studentID uuid.UUID, academicYear string) (*OutstandingSummary, error) {
	var ob model.OldBalanceModel
	err := s.DB.
		Where("old_balance_school_id = ? AND old_balance_student_id = ? AND old_balance_academic_year = ?",
			schoolID, studentID, academicYear).
		First(&ob).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(fiber.StatusNotFound, "Hutang lama tidak ditemukan")
		}
		return nil, err
	}

	balance := ob.OldBalanceAmount
	if ob.OldBalanceIsSettled {
		balance = decimal.Zero
	}

	var adjs []model.BalanceAdjustmentModel
	if err := s.DB.
		Where("balance_adjustment_school_id = ? AND balance_adjustment_student_id = ? AND balance_adjustment_academic_year = ?",
			schoolID, studentID, academicYear).
		Find(&adjs).Error; err != nil {
		return nil, err
	}

	amounts := make([]decimal.Decimal, 0, len(adjs))
	for _, a := range adjs {
		amounts = append(amounts, a.BalanceAdjustmentAmount)
	}
	sum := ComputeOutstanding(balance, amounts)
	return &sum, nil
}

func isDuplicateErr(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}
