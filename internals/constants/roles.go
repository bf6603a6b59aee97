package constants

import "fmt"

const (
	RoleOwner     = "owner"
	RoleAdmin     = "admin"
	RoleTreasurer = "treasurer"
	RoleTeacher   = "teacher"
	RoleUser      = "user"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess  = "❌ Hanya admin atau owner yang boleh mengakses fitur %s."
	ErrOnlyFinanceCanAccess = "❌ Hanya bendahara, admin, atau owner yang boleh mengakses fitur %s."
	ErrOnlyOwnersCanAccess  = "❌ Hanya owner yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorFinance(feature string) string {
	return fmt.Sprintf(ErrOnlyFinanceCanAccess, feature)
}

func RoleErrorOwner(feature string) string {
	return fmt.Sprintf(ErrOnlyOwnersCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleUser,
		RoleTeacher,
		RoleTreasurer,
		RoleAdmin,
		RoleOwner,
	}

	// Role yang boleh menyentuh ledger keuangan
	FinanceRoles = []string{
		RoleTreasurer,
		RoleAdmin,
		RoleOwner,
	}

	AdminAndAbove = []string{
		RoleAdmin,
		RoleOwner,
	}

	OwnerOnly = []string{
		RoleOwner,
	}
)
