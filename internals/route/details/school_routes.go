// file: internals/route/details/school_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classRoute "schoolku_backend/internals/features/school/classes/route"
	studentRoute "schoolku_backend/internals/features/school/students/route"
)

// SchoolAdminRoutes memasang master data sekolah (kelas & siswa).
func SchoolAdminRoutes(r fiber.Router, db *gorm.DB) {
	classRoute.AdminClassRoutes(r, db)
	studentRoute.AdminStudentRoutes(r, db)
}
