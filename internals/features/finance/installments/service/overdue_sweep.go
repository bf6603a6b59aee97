package service

import (
	"log"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MarkOverdue menandai semua cicilan pending/partial yang lewat jatuh tempo
// sebagai overdue, plus membukukan denda flat SEKALI (hanya bila late_fee
// masih 0). Formula denda tetap urusan konfigurasi, bukan hardcode.
func MarkOverdue(db *gorm.DB, asOf time.Time, flatLateFee decimal.Decimal) (int64, error) {
	res := db.Exec(`
		UPDATE installments
		SET installment_status = 'overdue',
		    installment_late_fee = CASE
		        WHEN installment_late_fee = 0 THEN ?
		        ELSE installment_late_fee
		    END,
		    installment_updated_at = now()
		WHERE installment_status IN ('pending','partial')
		  AND installment_due_date < ?
		  AND installment_due_amount > installment_paid_amount
	`, flatLateFee, dateOnly(asOf))
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// RunOverdueSweep dipanggil dari cron harian di main.
func RunOverdueSweep(db *gorm.DB, flatLateFee decimal.Decimal) {
	n, err := MarkOverdue(db, time.Now(), flatLateFee)
	if err != nil {
		log.Printf("[SWEEP ERROR] Gagal menandai cicilan overdue: %v", err)
		return
	}
	log.Printf("[SWEEP] %d cicilan ditandai overdue", n)
}
