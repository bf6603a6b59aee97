// file: internals/features/finance/installments/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	iController "schoolku_backend/internals/features/finance/installments/controller"
	middlewares "schoolku_backend/internals/middlewares"
)

func AdminInstallmentRoutes(r fiber.Router, db *gorm.DB) {
	planCtl := iController.NewInstallmentPlanController(db)
	plans := r.Group("/installment-plans")
	{
		plans.Post("/", planCtl.Create)
		plans.Get("/", planCtl.List)
		plans.Get("/:id", planCtl.GetByID)
		plans.Post("/:id/deactivate", planCtl.Deactivate)
	}

	instCtl := iController.NewInstallmentController(db)
	inst := r.Group("/installments")
	{
		// operasi bulk dibatasi limiter tambahan
		inst.Post("/generate", middlewares.BulkOpRateLimiter(), instCtl.Generate)
		inst.Post("/regenerate", middlewares.BulkOpRateLimiter(), instCtl.Regenerate)
		inst.Post("/:id/pay", instCtl.Pay)
		inst.Get("/", instCtl.List)
	}
}
