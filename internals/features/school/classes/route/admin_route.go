// file: internals/features/school/classes/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cController "schoolku_backend/internals/features/school/classes/controller"
)

func AdminClassRoutes(r fiber.Router, db *gorm.DB) {
	ctl := cController.NewClassController(db)
	cls := r.Group("/classes")
	{
		cls.Post("/", ctl.Create)
		cls.Get("/", ctl.List)
		cls.Get("/:id", ctl.GetByID)
	}
}
