// file: internals/features/finance/payments/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	payController "schoolku_backend/internals/features/finance/payments/controller"
)

func AdminPaymentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := payController.NewPaymentController(db)
	pay := r.Group("/fee-payments")
	{
		pay.Post("/", ctl.Record)
		pay.Post("/online", ctl.CreateOnline)
		pay.Get("/", ctl.List)
		pay.Get("/balance", ctl.GetBalance)
	}
}

// PublicPaymentRoutes memuat endpoint tanpa JWT: webhook gateway.
// Keamanannya lewat verifikasi signature Midtrans, bukan token.
func PublicPaymentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := payController.NewPaymentController(db)
	r.Post("/payments/midtrans/notification", ctl.MidtransWebhook)
}
