// file: internals/features/finance/payments/controller/payment_controller.go
package controller

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	configs "schoolku_backend/internals/configs"
	dto "schoolku_backend/internals/features/finance/payments/dto"
	model "schoolku_backend/internals/features/finance/payments/model"
	service "schoolku_backend/internals/features/finance/payments/service"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type PaymentController struct {
	DB        *gorm.DB
	Service   *service.PaymentService
	Validator *validator.Validate
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{
		DB:        db,
		Service:   service.NewPaymentService(db),
		Validator: validator.New(),
	}
}

// ========== Record (kasir/manual) ==========
func (ctl *PaymentController) Record(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.RecordPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	in, err := req.ToInput(schoolID, &userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	pay, err := ctl.Service.Record(*in)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Pembayaran berhasil dicatat", dto.FromModelPayment(pay))
}

// ========== Create online payment (Snap) ==========
// Payment dicatat berstatus pending, lalu webhook Midtrans yang
// menyelesaikannya.
func (ctl *PaymentController) CreateOnline(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateOnlinePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	amount, err := decimal.NewFromString(req.PaymentAmount)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "amount_paid bukan angka yang valid")
	}

	orderID := fmt.Sprintf("FEE-%s", uuid.New().String())
	pay, err := ctl.Service.Record(service.RecordInput{
		SchoolID:       schoolID,
		StudentID:      req.PaymentStudentID,
		FeeStructureID: req.PaymentFeeStructureID,
		Amount:         amount,
		PaymentDate:    time.Now(),
		Method:         model.PaymentMethodOnline,
		DiscountAmount: decimal.Zero,
		CreatedBy:      &userID,
		Status:         model.PaymentStatusPending,
		ExternalID:     &orderID,
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	token, redirectURL, err := service.GenerateSnapToken(pay, service.CustomerInput{
		FirstName: req.CustomerName,
		Email:     req.CustomerEmail,
		Phone:     req.CustomerPhone,
	})
	if err != nil {
		return helper.Error(c, fiber.StatusBadGateway, "Gagal membuat transaksi Midtrans")
	}

	return helper.JsonCreated(c, "Transaksi online berhasil dibuat", dto.SnapTokenResponse{
		PaymentID:   pay.PaymentID,
		OrderID:     orderID,
		SnapToken:   token,
		RedirectURL: redirectURL,
	})
}

// ========== List ==========
func (ctl *PaymentController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.PaymentModel{}).
		Where("payment_school_id = ?", schoolID)

	if v := strings.TrimSpace(c.Query("student_id")); v != "" {
		studentID, err := uuid.Parse(v)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "student_id tidak valid")
		}
		q = q.Where("payment_student_id = ?", studentID)
	}
	if v := strings.TrimSpace(c.Query("fee_structure_id")); v != "" {
		feeID, err := uuid.Parse(v)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "fee_structure_id tidak valid")
		}
		q = q.Where("payment_fee_structure_id = ?", feeID)
	}
	if v := strings.TrimSpace(c.Query("status")); v != "" {
		q = q.Where("payment_status = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.PaymentModel
	if err := q.
		Order("payment_date DESC, payment_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar pembayaran")
	}

	return helper.JsonList(c, "OK",
		dto.FromModelPayments(rows),
		helper.BuildPaginationFromOffset(total, p.Offset, p.Limit))
}

// ========== Balance ==========
func (ctl *PaymentController) GetBalance(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	studentID, err := uuid.Parse(strings.TrimSpace(c.Query("student_id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "student_id tidak valid")
	}
	feeID, err := uuid.Parse(strings.TrimSpace(c.Query("fee_structure_id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "fee_structure_id tidak valid")
	}

	summary, err := ctl.Service.GetBalance(schoolID, studentID, feeID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "OK", summary)
}

// ========== Webhook Midtrans (public, diverifikasi via signature) ==========
func (ctl *PaymentController) MidtransWebhook(c *fiber.Ctx) error {
	raw := c.Body()

	n, err := service.DecodeNotification(raw)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !service.VerifySignature(n, midtransServerKey()) {
		return helper.Error(c, fiber.StatusUnauthorized, "Signature notifikasi tidak valid")
	}

	if err := service.HandleMidtransNotification(ctl.DB, raw, n); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Notifikasi diproses", fiber.Map{"order_id": n.OrderID})
}

func midtransServerKey() string {
	if configs.MidtransServerKey != "" {
		return configs.MidtransServerKey
	}
	return configs.GetEnv("MIDTRANS_SERVER_KEY", "")
}
