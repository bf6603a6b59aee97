// file: internals/features/finance/discounts/controller/discount_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "schoolku_backend/internals/features/finance/discounts/dto"
	model "schoolku_backend/internals/features/finance/discounts/model"
	service "schoolku_backend/internals/features/finance/discounts/service"
	feeModel "schoolku_backend/internals/features/finance/fee_structures/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type DiscountController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewDiscountController(db *gorm.DB) *DiscountController {
	return &DiscountController{
		DB:        db,
		Validator: validator.New(),
	}
}

// ========== Create ==========
func (ctl *DiscountController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateDiscountRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := req.ToModel(schoolID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat diskon")
	}
	return helper.JsonCreated(c, "Diskon berhasil dibuat", dto.FromModelDiscount(m))
}

// ========== Update (partial) ==========
func (ctl *DiscountController) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "discount_id tidak valid")
	}

	var m model.DiscountModel
	if err := ctl.DB.
		Where("discount_id = ? AND discount_school_id = ?", id, schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Diskon tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil diskon")
	}

	var req dto.UpdateDiscountRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := req.ApplyTo(&m); err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan diskon")
	}
	return helper.JsonOK(c, "Diskon berhasil diperbarui", dto.FromModelDiscount(&m))
}

// ========== Delete (soft delete) ==========
// Rule boleh dihapus kapan saja: discount_amount yang sudah tercatat di
// payment adalah snapshot, tidak ikut berubah.
func (ctl *DiscountController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "discount_id tidak valid")
	}

	tx := ctl.DB.
		Where("discount_id = ? AND discount_school_id = ?", id, schoolID).
		Delete(&model.DiscountModel{})
	if tx.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus diskon")
	}
	if tx.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Diskon tidak ditemukan")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ========== GetByID ==========
func (ctl *DiscountController) GetByID(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "discount_id tidak valid")
	}

	var m model.DiscountModel
	if err := ctl.DB.
		Where("discount_id = ? AND discount_school_id = ?", id, schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Diskon tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil diskon")
	}
	return helper.JsonOK(c, "OK", dto.FromModelDiscount(&m))
}

// ========== List ==========
func (ctl *DiscountController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.DiscountModel{}).
		Where("discount_school_id = ?", schoolID)
	if v := strings.TrimSpace(c.Query("is_active")); v != "" {
		q = q.Where("discount_is_active = ?", v == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.DiscountModel
	if err := q.
		Order("discount_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar diskon")
	}

	return helper.JsonList(c, "OK",
		dto.FromModelDiscounts(rows),
		helper.BuildPaginationFromOffset(total, p.Offset, p.Limit))
}

// ========== Apply (preview) ==========
// Evaluasi rule diskon terhadap satu fee structure tanpa menyimpan apa pun.
// Hasilnya dipakai kasir sebelum mencatat payment.
func (ctl *DiscountController) Apply(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "discount_id tidak valid")
	}

	var req dto.ApplyDiscountRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	asOf := time.Now()
	if req.AsOfDate != nil && *req.AsOfDate != "" {
		t, err := time.Parse("2006-01-02", *req.AsOfDate)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "as_of_date harus berformat YYYY-MM-DD")
		}
		asOf = t
	}

	var d model.DiscountModel
	if err := ctl.DB.
		Where("discount_id = ? AND discount_school_id = ?", id, schoolID).
		First(&d).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Diskon tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil diskon")
	}

	var fs feeModel.FeeStructureModel
	if err := ctl.DB.
		Where("fee_structure_id = ? AND fee_structure_school_id = ?", req.FeeStructureID, schoolID).
		First(&fs).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Struktur biaya tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil struktur biaya")
	}

	result := service.Apply(&d, &fs, asOf)
	return helper.JsonOK(c, "OK", result)
}
