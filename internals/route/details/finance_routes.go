// file: internals/route/details/finance_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	discountRoute "schoolku_backend/internals/features/finance/discounts/route"
	exportRoute "schoolku_backend/internals/features/finance/exports/route"
	feeRoute "schoolku_backend/internals/features/finance/fee_structures/route"
	installmentRoute "schoolku_backend/internals/features/finance/installments/route"
	oldBalanceRoute "schoolku_backend/internals/features/finance/old_balances/route"
	paymentRoute "schoolku_backend/internals/features/finance/payments/route"
)

// FinanceAdminRoutes memasang seluruh ledger keuangan di bawah grup admin.
// Role check (bendahara/admin/owner) sudah dipasang di level grup.
func FinanceAdminRoutes(r fiber.Router, db *gorm.DB) {
	feeRoute.AdminFeeStructureRoutes(r, db)
	discountRoute.AdminDiscountRoutes(r, db)
	paymentRoute.AdminPaymentRoutes(r, db)
	installmentRoute.AdminInstallmentRoutes(r, db)
	oldBalanceRoute.AdminOldBalanceRoutes(r, db)
	exportRoute.AdminExportRoutes(r, db)
}

// FinancePublicRoutes: endpoint tanpa JWT (webhook gateway).
func FinancePublicRoutes(r fiber.Router, db *gorm.DB) {
	paymentRoute.PublicPaymentRoutes(r, db)
}
