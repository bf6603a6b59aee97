// file: internals/features/finance/installments/controller/installment_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	dto "schoolku_backend/internals/features/finance/installments/dto"
	model "schoolku_backend/internals/features/finance/installments/model"
	service "schoolku_backend/internals/features/finance/installments/service"
	payModel "schoolku_backend/internals/features/finance/payments/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type InstallmentController struct {
	DB        *gorm.DB
	Service   *service.InstallmentService
	Validator *validator.Validate
}

func NewInstallmentController(db *gorm.DB) *InstallmentController {
	return &InstallmentController{
		DB:        db,
		Service:   service.NewInstallmentService(db),
		Validator: validator.New(),
	}
}

// ========== Generate ==========
// 409 bila cicilan pasangan (student, fee_structure) sudah ada — caller
// harus memakai endpoint regenerate secara eksplisit.
func (ctl *InstallmentController) Generate(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.GenerateInstallmentsRequest
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

	rows, err := ctl.Service.Generate(*in)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Cicilan berhasil digenerate", dto.FromModelInstallments(rows))
}

// ========== Regenerate ==========
// Menghapus dan membuat ulang cicilan. Wajib confirm=true karena
// mengganti kewajiban finansial yang sudah ada.
func (ctl *InstallmentController) Regenerate(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.GenerateInstallmentsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !req.Confirm {
		return helper.Error(c, fiber.StatusBadRequest,
			"Regenerate menghapus cicilan lama. Kirim confirm=true untuk melanjutkan.")
	}

	in, err := req.ToInput(schoolID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	rows, err := ctl.Service.Regenerate(*in)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Cicilan berhasil digenerate ulang", dto.FromModelInstallments(rows))
}

// ========== Pay ==========
func (ctl *InstallmentController) Pay(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "installment_id tidak valid")
	}

	var req dto.PayInstallmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "amount bukan angka yang valid")
	}
	payDate, err := time.Parse("2006-01-02", req.PaymentDate)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "payment_date harus berformat YYYY-MM-DD")
	}
	method := payModel.PaymentMethod(req.PaymentMethod)
	if !method.Valid() {
		return helper.Error(c, fiber.StatusBadRequest, "payment_method tidak dikenal")
	}

	inst, pay, err := ctl.Service.ApplyPayment(service.ApplyPaymentInput{
		SchoolID:      schoolID,
		InstallmentID: id,
		Amount:        amount,
		PaymentDate:   payDate,
		Method:        method,
		ReceiptNumber: req.ReceiptNumber,
		Notes:         req.Notes,
		CreatedBy:     &userID,
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonOK(c, "Pembayaran cicilan berhasil dicatat", fiber.Map{
		"installment": dto.FromModelInstallment(inst),
		"payment_id":  pay.PaymentID,
	})
}

// ========== List ==========
func (ctl *InstallmentController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.InstallmentModel{}).
		Where("installment_school_id = ?", schoolID)

	if v := strings.TrimSpace(c.Query("student_id")); v != "" {
		studentID, err := uuid.Parse(v)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "student_id tidak valid")
		}
		q = q.Where("installment_student_id = ?", studentID)
	}
	if v := strings.TrimSpace(c.Query("fee_structure_id")); v != "" {
		feeID, err := uuid.Parse(v)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "fee_structure_id tidak valid")
		}
		q = q.Where("installment_fee_structure_id = ?", feeID)
	}
	if v := strings.TrimSpace(c.Query("status")); v != "" {
		q = q.Where("installment_status = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.InstallmentModel
	if err := q.
		Order("installment_due_date ASC, installment_number ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar cicilan")
	}

	return helper.JsonList(c, "OK",
		dto.FromModelInstallments(rows),
		helper.BuildPaginationFromOffset(total, p.Offset, p.Limit))
}
