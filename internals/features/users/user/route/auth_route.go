// file: internals/features/users/user/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	uController "schoolku_backend/internals/features/users/user/controller"
)

// PublicAuthRoutes: login tanpa token (dibatasi login rate limiter).
func PublicAuthRoutes(r fiber.Router, db *gorm.DB) {
	ctl := uController.NewAuthController(db)
	r.Post("/auth/login", ctl.Login)
}

// UserAuthRoutes: butuh JWT.
func UserAuthRoutes(r fiber.Router, db *gorm.DB) {
	ctl := uController.NewAuthController(db)
	r.Get("/auth/me", ctl.Me)
}
