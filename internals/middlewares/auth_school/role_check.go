package middleware

import (
	"github.com/gofiber/fiber/v2"

	"schoolku_backend/internals/constants"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

// RequireRoles menolak request (403) bila user tidak memegang salah satu
// role yang diizinkan pada sekolah aktif. Boundary check — core ledger
// mengasumsikan caller sudah lolos dari sini.
func RequireRoles(feature string, allowed []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !helperAuth.HasAnyRole(c, allowed) {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorFinance(feature))
		}
		return c.Next()
	}
}

// RequireAdmin khusus fitur administratif non-keuangan.
func RequireAdmin(feature string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !helperAuth.HasAnyRole(c, constants.AdminAndAbove) {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorAdmin(feature))
		}
		return c.Next()
	}
}
