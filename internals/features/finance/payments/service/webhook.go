package service

import (
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	instModel "schoolku_backend/internals/features/finance/installments/model"
	model "schoolku_backend/internals/features/finance/payments/model"
)

/* =========================================================
   Webhook Midtrans
   Satu-satunya jalur mutasi PaymentModel: pending → settled /
   expired / canceled. Selain itu payment tetap append-only.
========================================================= */

type MidtransNotification struct {
	OrderID           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	PaymentType       string `json:"payment_type"`
	SettlementTime    string `json:"settlement_time"`
}

// VerifySignature mengecek signature_key = sha512(order_id+status_code+gross_amount+serverKey).
func VerifySignature(n *MidtransNotification, serverKey string) bool {
	raw := n.OrderID + n.StatusCode + n.GrossAmount + serverKey
	sum := sha512.Sum512([]byte(raw))
	return hex.EncodeToString(sum[:]) == n.SignatureKey
}

// HandleMidtransNotification memproses payload webhook:
//  1. simpan raw event (audit, append-only)
//  2. cari payment berdasarkan order_id (payment_external_id)
//  3. transisi status bila masih pending
//  4. bila payment terkait cicilan, gulirkan paid_amount + status cicilan
//
// Idempoten: notifikasi ulang untuk payment yang sudah final hanya
// tercatat sebagai event, tanpa mutasi ulang.
func HandleMidtransNotification(db *gorm.DB, rawBody []byte, n *MidtransNotification) error {
	// 1) audit trail
	evt := model.PaymentGatewayEventModel{
		PaymentGatewayEventOrderID: n.OrderID,
		PaymentGatewayEventStatus:  n.TransactionStatus,
		PaymentGatewayEventPayload: datatypes.JSON(rawBody),
	}
	if err := db.Create(&evt).Error; err != nil {
		log.Printf("[WEBHOOK] ❌ gagal simpan gateway event order_id=%s: %v", n.OrderID, err)
		// event gagal disimpan bukan alasan menolak notifikasi
	}

	target, ok := mapTransactionStatus(n.TransactionStatus, n.FraudStatus)
	if !ok {
		log.Printf("[WEBHOOK] ℹ️ status %s diabaikan (order_id=%s)", n.TransactionStatus, n.OrderID)
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var pay model.PaymentModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("payment_external_id = ?", n.OrderID).
			First(&pay).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return fiber.NewError(fiber.StatusNotFound, "Payment untuk order ini tidak ditemukan")
			}
			return err
		}

		if pay.PaymentStatus != model.PaymentStatusPending {
			// sudah final, notifikasi duplikat
			return nil
		}

		updates := map[string]interface{}{"payment_status": target}
		if target == model.PaymentStatusSettled {
			settledAt := parseSettlementTime(n.SettlementTime)
			updates["payment_settled_at"] = settledAt
		}
		if err := tx.Model(&model.PaymentModel{}).
			Where("payment_id = ?", pay.PaymentID).
			Updates(updates).Error; err != nil {
			return fmt.Errorf("gagal update status payment: %w", err)
		}

		// 4) gulirkan ke cicilan bila ada
		if target == model.PaymentStatusSettled && pay.PaymentInstallmentID != nil {
			if err := rollInstallment(tx, pay.PaymentSchoolID, *pay.PaymentInstallmentID, pay); err != nil {
				return err
			}
		}

		log.Printf("[WEBHOOK] ✅ payment %s → %s (order_id=%s)", pay.PaymentID, target, n.OrderID)
		return nil
	})
}

// rollInstallment menambahkan nominal payment ke paid_amount cicilan
// dan menghitung ulang statusnya.
func rollInstallment(tx *gorm.DB, schoolID, installmentID uuid.UUID, pay model.PaymentModel) error {
	var inst instModel.InstallmentModel
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("installment_id = ? AND installment_school_id = ?", installmentID, schoolID).
		First(&inst).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Cicilan untuk payment ini tidak ditemukan")
		}
		return err
	}

	newPaid := inst.InstallmentPaidAmount.Add(pay.PaymentAmount)
	status := instModel.InstallmentStatusPartial
	if newPaid.GreaterThanOrEqual(inst.InstallmentDueAmount) {
		status = instModel.InstallmentStatusPaid
	}

	return tx.Model(&instModel.InstallmentModel{}).
		Where("installment_id = ?", inst.InstallmentID).
		Updates(map[string]interface{}{
			"installment_paid_amount": newPaid,
			"installment_status":      status,
		}).Error
}

// mapTransactionStatus menerjemahkan status Midtrans ke status payment lokal.
// ok=false artinya notifikasi tidak mengubah apa pun (mis. "pending").
func mapTransactionStatus(trx, fraud string) (model.PaymentStatus, bool) {
	switch trx {
	case "capture":
		if fraud == "accept" {
			return model.PaymentStatusSettled, true
		}
		return "", false
	case "settlement":
		return model.PaymentStatusSettled, true
	case "expire":
		return model.PaymentStatusExpired, true
	case "cancel", "deny":
		return model.PaymentStatusCanceled, true
	}
	return "", false
}

func parseSettlementTime(s string) time.Time {
	if s != "" {
		if t, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
			return t
		}
	}
	return time.Now()
}

// DecodeNotification membaca raw body webhook menjadi struct notifikasi.
func DecodeNotification(rawBody []byte) (*MidtransNotification, error) {
	var n MidtransNotification
	if err := json.Unmarshal(rawBody, &n); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Payload notifikasi tidak valid")
	}
	if n.OrderID == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "order_id wajib ada di notifikasi")
	}
	return &n, nil
}
