package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Kunci Locals yang di-hydrate oleh middleware AuthJWT.
const (
	LocUserID         = "user_id"
	LocUserName       = "user_name"
	LocSchoolID       = "school_id"
	LocActiveSchoolID = "active_school_id"
	LocRolesGlobal    = "roles_global"
	LocSchoolRoles    = "school_roles"
	LocIsOwner        = "is_owner"
)

// Entry role per sekolah, menyesuaikan isi token.
type SchoolRolesEntry struct {
	SchoolID uuid.UUID `json:"school_id"`
	Roles    []string  `json:"roles"`
}

type RolesClaim struct {
	RolesGlobal []string           `json:"roles_global"`
	SchoolRoles []SchoolRolesEntry `json:"school_roles"`
}

func uuidFromLocals(c *fiber.Ctx, key string) (uuid.UUID, error) {
	v := c.Locals(key)
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" tidak ditemukan di token")
	}
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" kosong di token")
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Format "+key+" tidak valid di token")
	}
	return id, nil
}

// GetSchoolIDFromToken mengembalikan tenant aktif request ini.
// Semua query ledger WAJIB difilter dengan ID ini.
func GetSchoolIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	if id, err := uuidFromLocals(c, LocActiveSchoolID); err == nil {
		return id, nil
	}
	return uuidFromLocals(c, LocSchoolID)
}

func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidFromLocals(c, LocUserID)
}

// RolesFromLocals menggabungkan roles_global + roles pada sekolah aktif.
func RolesFromLocals(c *fiber.Ctx) []string {
	out := readStringSlice(c.Locals(LocRolesGlobal))

	schoolID, err := GetSchoolIDFromToken(c)
	if err != nil {
		return out
	}
	if rc, ok := c.Locals(LocSchoolRoles).(RolesClaim); ok {
		for _, e := range rc.SchoolRoles {
			if e.SchoolID == schoolID {
				out = append(out, e.Roles...)
			}
		}
	}
	return out
}

func HasAnyRole(c *fiber.Ctx, allowed []string) bool {
	if b, ok := c.Locals(LocIsOwner).(bool); ok && b {
		return true
	}
	have := RolesFromLocals(c)
	for _, r := range have {
		for _, a := range allowed {
			if strings.EqualFold(r, a) {
				return true
			}
		}
	}
	return false
}

func readStringSlice(v interface{}) []string {
	out := []string{}
	switch t := v.(type) {
	case []string:
		out = append(out, t...)
	case []interface{}:
		for _, it := range t {
			if s, ok := it.(string); ok {
				out = append(out, s)
			}
		}
	case string:
		if strings.TrimSpace(t) != "" {
			out = append(out, t)
		}
	}
	return out
}
