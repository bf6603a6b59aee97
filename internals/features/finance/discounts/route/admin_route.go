// file: internals/features/finance/discounts/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dController "schoolku_backend/internals/features/finance/discounts/controller"
)

func AdminDiscountRoutes(r fiber.Router, db *gorm.DB) {
	ctl := dController.NewDiscountController(db)
	d := r.Group("/fee-discounts")
	{
		d.Post("/", ctl.Create)
		d.Get("/", ctl.List)
		d.Get("/:id", ctl.GetByID)
		d.Patch("/:id", ctl.Update)
		d.Delete("/:id", ctl.Delete)
		d.Post("/:id/apply", ctl.Apply)
	}
}
