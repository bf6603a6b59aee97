// file: internals/features/finance/fee_structures/controller/fee_structure_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "schoolku_backend/internals/features/finance/fee_structures/dto"
	model "schoolku_backend/internals/features/finance/fee_structures/model"
	instModel "schoolku_backend/internals/features/finance/installments/model"
	payModel "schoolku_backend/internals/features/finance/payments/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type FeeStructureController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewFeeStructureController(db *gorm.DB) *FeeStructureController {
	return &FeeStructureController{
		DB:        db,
		Validator: validator.New(),
	}
}

// ========== Create ==========
func (ctl *FeeStructureController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateFeeStructureRequest
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
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat struktur biaya")
	}
	return helper.JsonCreated(c, "Struktur biaya berhasil dibuat", dto.FromModelFeeStructure(m))
}

// ========== Update (partial) ==========
// Nominal tidak boleh diubah bila struktur sudah punya cicilan tergenerate,
// supaya invariant jumlah cicilan = nominal tidak pecah. Caller harus
// regenerate cicilan lebih dulu.
func (ctl *FeeStructureController) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "fee_structure_id tidak valid")
	}

	var m model.FeeStructureModel
	if err := ctl.DB.
		Where("fee_structure_id = ? AND fee_structure_school_id = ?", id, schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Struktur biaya tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil struktur biaya")
	}

	var req dto.UpdateFeeStructureRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}

	changed, newAmount, err := req.WantsAmountChange(m.FeeStructureAmount)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if changed {
		var cnt int64
		if err := ctl.DB.Model(&instModel.InstallmentModel{}).
			Where("installment_school_id = ? AND installment_fee_structure_id = ?", schoolID, id).
			Count(&cnt).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal cek cicilan terkait")
		}
		if cnt > 0 {
			return helper.Error(c, fiber.StatusConflict,
				"Nominal tidak bisa diubah karena cicilan sudah digenerate. Regenerate cicilan terlebih dahulu.")
		}
		m.FeeStructureAmount = newAmount
	}

	if err := req.ApplyTo(&m); err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan struktur biaya")
	}
	return helper.JsonOK(c, "Struktur biaya berhasil diperbarui", dto.FromModelFeeStructure(&m))
}

// ========== Delete (soft delete) ==========
// Riwayat finansial tidak pernah ikut terhapus: struktur yang sudah
// direferensikan payment/cicilan menolak dihapus dengan Conflict.
func (ctl *FeeStructureController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "fee_structure_id tidak valid")
	}

	var payCnt int64
	if err := ctl.DB.Model(&payModel.PaymentModel{}).
		Where("payment_school_id = ? AND payment_fee_structure_id = ?", schoolID, id).
		Count(&payCnt).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal cek pembayaran terkait")
	}
	var instCnt int64
	if err := ctl.DB.Model(&instModel.InstallmentModel{}).
		Where("installment_school_id = ? AND installment_fee_structure_id = ?", schoolID, id).
		Count(&instCnt).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal cek cicilan terkait")
	}
	if payCnt > 0 || instCnt > 0 {
		return helper.Error(c, fiber.StatusConflict,
			"Struktur biaya tidak bisa dihapus karena sudah punya pembayaran atau cicilan")
	}

	tx := ctl.DB.
		Where("fee_structure_id = ? AND fee_structure_school_id = ?", id, schoolID).
		Delete(&model.FeeStructureModel{})
	if tx.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus struktur biaya")
	}
	if tx.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Struktur biaya tidak ditemukan")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ========== GetByID ==========
func (ctl *FeeStructureController) GetByID(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "fee_structure_id tidak valid")
	}

	var m model.FeeStructureModel
	if err := ctl.DB.
		Where("fee_structure_id = ? AND fee_structure_school_id = ?", id, schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Struktur biaya tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil struktur biaya")
	}
	return helper.JsonOK(c, "OK", dto.FromModelFeeStructure(&m))
}

// ========== List (filter: class, fee_type, academic_year) ==========
func (ctl *FeeStructureController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.FeeStructureModel{}).
		Where("fee_structure_school_id = ?", schoolID)

	if v := strings.TrimSpace(c.Query("class_obj_id")); v != "" {
		classID, err := uuid.Parse(v)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "class_obj_id tidak valid")
		}
		q = q.Where("fee_structure_class_id = ?", classID)
	}
	if v := strings.TrimSpace(c.Query("fee_type")); v != "" {
		if !model.FeeType(v).Valid() {
			return helper.Error(c, fiber.StatusBadRequest, "fee_type tidak dikenal")
		}
		q = q.Where("fee_structure_fee_type = ?", v)
	}
	if v := strings.TrimSpace(c.Query("academic_year")); v != "" {
		q = q.Where("fee_structure_academic_year = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.FeeStructureModel
	if err := q.
		Order("fee_structure_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar struktur biaya")
	}

	return helper.JsonList(c, "OK",
		dto.FromModelFeeStructures(rows),
		helper.BuildPaginationFromOffset(total, p.Offset, p.Limit))
}
