// file: internals/features/finance/old_balances/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	obController "schoolku_backend/internals/features/finance/old_balances/controller"
	middlewares "schoolku_backend/internals/middlewares"
)

func AdminOldBalanceRoutes(r fiber.Router, db *gorm.DB) {
	ctl := obController.NewOldBalanceController(db)

	ob := r.Group("/old-balances")
	{
		ob.Post("/", ctl.Record)
		ob.Get("/", ctl.List)
		ob.Get("/outstanding", ctl.Outstanding)
		// bulk op, limiter tambahan
		ob.Post("/carry-forward", middlewares.BulkOpRateLimiter(), ctl.CarryForward)
		ob.Post("/:id/settle", ctl.Settle)
	}

	adj := r.Group("/balance-adjustments")
	{
		adj.Post("/", ctl.AddAdjustment)
	}
}
