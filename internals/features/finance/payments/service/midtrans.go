package service

import (
	"errors"
	"fmt"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	model "schoolku_backend/internals/features/finance/payments/model"
)

/* =========================================================
   Midtrans Client
========================================================= */

var SnapClient snap.Client

// InitMidtrans harus dipanggil saat bootstrap app.
// useProduction=true untuk Production, false untuk Sandbox.
func InitMidtrans(serverKey string, useProduction bool) {
	if useProduction {
		SnapClient.New(serverKey, midtrans.Production)
	} else {
		SnapClient.New(serverKey, midtrans.Sandbox)
	}
}

type CustomerInput struct {
	FirstName string
	Email     string
	Phone     string
}

// GenerateSnapToken membuat transaksi Snap untuk payment method=online.
// OrderID memakai payment_external_id; nominal dibulatkan ke rupiah utuh.
func GenerateSnapToken(p *model.PaymentModel, cust CustomerInput) (string, string, error) {
	if !p.PaymentAmount.IsPositive() {
		return "", "", errors.New("invalid payment_amount")
	}
	if p.PaymentExternalID == nil || *p.PaymentExternalID == "" {
		return "", "", errors.New("payment_external_id wajib diisi (dipakai sebagai OrderID)")
	}

	gross := p.PaymentAmount.Round(0).IntPart()

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  *p.PaymentExternalID,
			GrossAmt: gross,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: cust.FirstName,
			Email: cust.Email,
			Phone: cust.Phone,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:       *p.PaymentExternalID,
				Price:    gross,
				Qty:      1,
				Name:     fmt.Sprintf("Pembayaran fee %s", p.PaymentFeeStructureID),
				Category: "SCHOOL_FEE",
			},
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}
