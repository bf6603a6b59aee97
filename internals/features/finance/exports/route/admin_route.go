// file: internals/features/finance/exports/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eController "schoolku_backend/internals/features/finance/exports/controller"
)

func AdminExportRoutes(r fiber.Router, db *gorm.DB) {
	ctl := eController.NewExportController(db)

	r.Get("/fee-structures/export", ctl.ExportFeeStructures)
	r.Post("/fee-structures/import", ctl.ImportFeeStructures)
}
