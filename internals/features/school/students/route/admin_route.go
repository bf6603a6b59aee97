// file: internals/features/school/students/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sController "schoolku_backend/internals/features/school/students/controller"
)

func AdminStudentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := sController.NewStudentController(db)
	st := r.Group("/students")
	{
		st.Post("/", ctl.Create)
		st.Get("/", ctl.List)
		st.Get("/:id", ctl.GetByID)
		st.Patch("/:id", ctl.Update)
	}
}
