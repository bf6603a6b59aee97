// file: internals/features/finance/installments/controller/installment_plan_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	feeModel "schoolku_backend/internals/features/finance/fee_structures/model"
	dto "schoolku_backend/internals/features/finance/installments/dto"
	model "schoolku_backend/internals/features/finance/installments/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type InstallmentPlanController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewInstallmentPlanController(db *gorm.DB) *InstallmentPlanController {
	return &InstallmentPlanController{
		DB:        db,
		Validator: validator.New(),
	}
}

// ========== Create ==========
func (ctl *InstallmentPlanController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateInstallmentPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	// fee structure harus milik tenant ini; nominalnya dipakai validasi custom amounts
	var fs feeModel.FeeStructureModel
	if err := ctl.DB.
		Where("fee_structure_id = ? AND fee_structure_school_id = ?", req.InstallmentPlanFeeStructureID, schoolID).
		First(&fs).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Struktur biaya tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil struktur biaya")
	}

	m, err := req.ToModel(schoolID, fs.FeeStructureAmount)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat plan cicilan")
	}
	return helper.JsonCreated(c, "Plan cicilan berhasil dibuat", dto.FromModelInstallmentPlan(m))
}

// ========== GetByID ==========
func (ctl *InstallmentPlanController) GetByID(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "installment_plan_id tidak valid")
	}

	var m model.InstallmentPlanModel
	if err := ctl.DB.
		Where("installment_plan_id = ? AND installment_plan_school_id = ?", id, schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Plan cicilan tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil plan cicilan")
	}
	return helper.JsonOK(c, "OK", dto.FromModelInstallmentPlan(&m))
}

// ========== List ==========
func (ctl *InstallmentPlanController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.InstallmentPlanModel{}).
		Where("installment_plan_school_id = ?", schoolID)
	if v := strings.TrimSpace(c.Query("fee_structure_id")); v != "" {
		feeID, err := uuid.Parse(v)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "fee_structure_id tidak valid")
		}
		q = q.Where("installment_plan_fee_structure_id = ?", feeID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.InstallmentPlanModel
	if err := q.
		Order("installment_plan_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar plan")
	}

	return helper.JsonList(c, "OK",
		dto.FromModelInstallmentPlans(rows),
		helper.BuildPaginationFromOffset(total, p.Offset, p.Limit))
}

// ========== Deactivate ==========
// Plan tidak dihapus — nonaktif saja, supaya cicilan yang sudah
// digenerate dari plan ini tetap punya referensi.
func (ctl *InstallmentPlanController) Deactivate(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "installment_plan_id tidak valid")
	}

	tx := ctl.DB.Model(&model.InstallmentPlanModel{}).
		Where("installment_plan_id = ? AND installment_plan_school_id = ? AND installment_plan_is_active = TRUE", id, schoolID).
		Update("installment_plan_is_active", false)
	if tx.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menonaktifkan plan")
	}
	if tx.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Plan cicilan tidak ditemukan atau sudah nonaktif")
	}
	return helper.JsonOK(c, "Plan cicilan dinonaktifkan", fiber.Map{"installment_plan_id": id})
}
