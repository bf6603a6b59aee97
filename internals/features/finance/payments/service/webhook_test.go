package service

import (
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "schoolku_backend/internals/features/finance/payments/model"
)

func TestVerifySignature(t *testing.T) {
	n := &MidtransNotification{
		OrderID:     "PAY-001",
		StatusCode:  "200",
		GrossAmount: "150000.00",
	}
	serverKey := "SB-Mid-server-xxx"
	sum := sha512.Sum512([]byte(n.OrderID + n.StatusCode + n.GrossAmount + serverKey))
	n.SignatureKey = hex.EncodeToString(sum[:])

	assert.True(t, VerifySignature(n, serverKey))
	assert.False(t, VerifySignature(n, "kunci-salah"))
}

func TestMapTransactionStatus(t *testing.T) {
	cases := []struct {
		trx, fraud string
		want       model.PaymentStatus
		ok         bool
	}{
		{"settlement", "", model.PaymentStatusSettled, true},
		{"capture", "accept", model.PaymentStatusSettled, true},
		{"capture", "challenge", "", false},
		{"expire", "", model.PaymentStatusExpired, true},
		{"cancel", "", model.PaymentStatusCanceled, true},
		{"deny", "", model.PaymentStatusCanceled, true},
		{"pending", "", "", false},
	}
	for _, c := range cases {
		got, ok := mapTransactionStatus(c.trx, c.fraud)
		assert.Equal(t, c.ok, ok, "trx=%s fraud=%s", c.trx, c.fraud)
		if ok {
			assert.Equal(t, c.want, got)
		}
	}
}

func TestDecodeNotification(t *testing.T) {
	body := []byte(`{"order_id":"PAY-002","transaction_status":"settlement","gross_amount":"500000.00"}`)
	n, err := DecodeNotification(body)
	require.NoError(t, err)
	assert.Equal(t, "PAY-002", n.OrderID)
	assert.Equal(t, "settlement", n.TransactionStatus)

	_, err = DecodeNotification([]byte(`bukan json`))
	assert.Error(t, err)

	_, err = DecodeNotification([]byte(`{"transaction_status":"settlement"}`))
	assert.Error(t, err, "order_id kosong harus ditolak")
}

func TestParseSettlementTime(t *testing.T) {
	got := parseSettlementTime("2025-03-10 14:30:00")
	assert.Equal(t, 2025, got.Year())
	assert.Equal(t, 14, got.Hour())

	// format rusak memakai waktu sekarang, bukan zero time
	assert.False(t, parseSettlementTime("???").IsZero())
}
