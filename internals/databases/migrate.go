package database

import (
	"log"

	discountModel "schoolku_backend/internals/features/finance/discounts/model"
	feeModel "schoolku_backend/internals/features/finance/fee_structures/model"
	installmentModel "schoolku_backend/internals/features/finance/installments/model"
	oldBalanceModel "schoolku_backend/internals/features/finance/old_balances/model"
	paymentModel "schoolku_backend/internals/features/finance/payments/model"
	classModel "schoolku_backend/internals/features/school/classes/model"
	studentModel "schoolku_backend/internals/features/school/students/model"
	userModel "schoolku_backend/internals/features/users/user/model"
)

func Migrate() {
	err := DB.AutoMigrate(
		&userModel.UserModel{},
		&classModel.ClassModel{},
		&studentModel.StudentModel{},
		&feeModel.FeeStructureModel{},
		&discountModel.DiscountModel{},
		&paymentModel.PaymentModel{},
		&paymentModel.PaymentGatewayEventModel{},
		&installmentModel.InstallmentPlanModel{},
		&installmentModel.InstallmentModel{},
		&oldBalanceModel.OldBalanceModel{},
		&oldBalanceModel.BalanceAdjustmentModel{},
	)
	if err != nil {
		log.Fatalf("❌ Gagal migrate database: %v", err)
	}

	// Unique index yang tidak bisa dinyatakan lewat tag:
	// 1) guard idempotensi generate cicilan — check-then-insert saja tidak
	//    race-safe, constraint inilah sumber kebenarannya
	// 2) nomor kwitansi unik per sekolah, hanya bila terisi
	// 3) kunci upsert carry-forward per (school, student, tahun asal)
	stmts := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_installments_student_fee_number
			ON installments (installment_school_id, installment_student_id, installment_fee_structure_id, installment_number)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_payments_school_receipt
			ON payments (payment_school_id, payment_receipt_number)
			WHERE payment_receipt_number IS NOT NULL`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_old_balances_student_year
			ON old_balances (old_balance_school_id, old_balance_student_id, old_balance_academic_year)`,
	}
	for _, s := range stmts {
		if err := DB.Exec(s).Error; err != nil {
			log.Fatalf("❌ Gagal membuat index: %v", err)
		}
	}

	log.Println("✅ Migrasi database berhasil")
}
