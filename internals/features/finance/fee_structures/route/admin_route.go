// file: internals/features/finance/fee_structures/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	fsController "schoolku_backend/internals/features/finance/fee_structures/controller"
)

func AdminFeeStructureRoutes(r fiber.Router, db *gorm.DB) {
	// ===== Tenant-scoped (school_id diambil dari token di controller) =====
	ctl := fsController.NewFeeStructureController(db)
	fees := r.Group("/fees")
	{
		fees.Post("/", ctl.Create)
		fees.Get("/", ctl.List)
		fees.Get("/:id", ctl.GetByID)
		fees.Patch("/:id", ctl.Update)
		fees.Delete("/:id", ctl.Delete)
	}
}
