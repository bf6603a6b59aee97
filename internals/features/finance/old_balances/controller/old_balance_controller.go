// file: internals/features/finance/old_balances/controller/old_balance_controller.go
package controller

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "schoolku_backend/internals/features/finance/old_balances/dto"
	model "schoolku_backend/internals/features/finance/old_balances/model"
	service "schoolku_backend/internals/features/finance/old_balances/service"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type OldBalanceController struct {
	DB        *gorm.DB
	Service   *service.OldBalanceService
	Validator *validator.Validate
}

func NewOldBalanceController(db *gorm.DB) *OldBalanceController {
	return &OldBalanceController{
		DB:        db,
		Service:   service.NewOldBalanceService(db),
		Validator: validator.New(),
	}
}

// ========== Record ==========
func (ctl *OldBalanceController) Record(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.RecordOldBalanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	in, err := req.ToInput(schoolID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	ob, err := ctl.Service.Record(*in)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Hutang lama berhasil dicatat", dto.FromModelOldBalance(ob))
}

// ========== Settle (satu arah) ==========
func (ctl *OldBalanceController) Settle(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "old_balance_id tidak valid")
	}

	var req dto.SettleOldBalanceRequest
	if err := c.BodyParser(&req); err != nil && err != fiber.ErrUnprocessableEntity {
		// body boleh kosong, settled_date default hari ini
		req = dto.SettleOldBalanceRequest{}
	}

	settledDate := time.Now()
	if req.SettledDate != nil && *req.SettledDate != "" {
		t, err := time.Parse("2006-01-02", *req.SettledDate)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "settled_date harus berformat YYYY-MM-DD")
		}
		settledDate = t
	}

	ob, err := ctl.Service.Settle(schoolID, id, settledDate)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Hutang lama berhasil dilunasi", dto.FromModelOldBalance(ob))
}

// ========== Carry-forward (bulk, idempoten) ==========
func (ctl *OldBalanceController) CarryForward(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CarryForwardRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	count, err := ctl.Service.CarryForward(service.CarryForwardInput{
		SchoolID:         schoolID,
		FromAcademicYear: req.FromAcademicYear,
		ToAcademicYear:   req.ToAcademicYear,
		ClassName:        req.ClassName,
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonOK(c,
		fmt.Sprintf("Carry-forward %s ke %s selesai", req.FromAcademicYear, req.ToAcademicYear),
		fiber.Map{"count": count})
}

// ========== Add adjustment (append-only) ==========
func (ctl *OldBalanceController) AddAdjustment(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.AddAdjustmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	in, err := req.ToInput(schoolID, userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	adj, err := ctl.Service.AddAdjustment(*in)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Penyesuaian saldo berhasil dicatat", dto.FromModelBalanceAdjustment(adj))
}

// ========== Outstanding ==========
func (ctl *OldBalanceController) Outstanding(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	studentID, err := uuid.Parse(strings.TrimSpace(c.Query("student_id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "student_id tidak valid")
	}
	year := strings.TrimSpace(c.Query("academic_year"))
	if year == "" {
		return helper.Error(c, fiber.StatusBadRequest, "academic_year wajib diisi")
	}

	summary, err := ctl.Service.Outstanding(schoolID, studentID, year)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "OK", summary)
}

// ========== List ==========
func (ctl *OldBalanceController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.OldBalanceModel{}).
		Where("old_balance_school_id = ?", schoolID)

	if v := strings.TrimSpace(c.Query("student_id")); v != "" {
		studentID, err := uuid.Parse(v)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "student_id tidak valid")
		}
		q = q.Where("old_balance_student_id = ?", studentID)
	}
	if v := strings.TrimSpace(c.Query("academic_year")); v != "" {
		q = q.Where("old_balance_academic_year = ?", v)
	}
	if v := strings.TrimSpace(c.Query("is_settled")); v != "" {
		q = q.Where("old_balance_is_settled = ?", v == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.OldBalanceModel
	if err := q.
		Order("old_balance_academic_year DESC, old_balance_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar hutang lama")
	}

	return helper.JsonList(c, "OK",
		dto.FromModelOldBalances(rows),
		helper.BuildPaginationFromOffset(total, p.Offset, p.Limit))
}
