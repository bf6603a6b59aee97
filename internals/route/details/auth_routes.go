// file: internals/route/details/auth_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userRoute "schoolku_backend/internals/features/users/user/route"
	middlewares "schoolku_backend/internals/middlewares"
)

// AuthRoutes: login publik (rate-limited) di luar grup JWT.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	public := app.Group("/api", middlewares.LoginRateLimiter())
	userRoute.PublicAuthRoutes(public, db)
}

// UserRoutes: profil user, butuh JWT (dipasang oleh caller di grupnya).
func UserRoutes(r fiber.Router, db *gorm.DB) {
	userRoute.UserAuthRoutes(r, db)
}
