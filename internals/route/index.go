// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	configs "schoolku_backend/internals/configs"
	constants "schoolku_backend/internals/constants"
	schoolkuMiddleware "schoolku_backend/internals/middlewares/auth_school"
	routeDetails "schoolku_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== BASE =====================
	BaseRoutes(app, db)

	// ===================== AUTH (public, rate-limited) =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== PUBLIC =====================
	// Webhook gateway: tanpa JWT, keamanan via signature Midtrans.
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	routeDetails.FinancePublicRoutes(public, db)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u",
		schoolkuMiddleware.AuthJWT(schoolkuMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
	)
	routeDetails.UserRoutes(private, db)

	// ===================== ADMIN (per school) =====================
	// Seluruh ledger keuangan hidup di sini: JWT + role bendahara/admin/owner.
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		schoolkuMiddleware.AuthJWT(schoolkuMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
		schoolkuMiddleware.RequireRoles("keuangan", constants.FinanceRoles),
	)

	routeDetails.FinanceAdminRoutes(admin, db)
	routeDetails.SchoolAdminRoutes(admin, db)

	log.Println("✅ Semua route berhasil dipasang")
}
