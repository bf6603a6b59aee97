// file: internals/features/users/user/service/token_service.go
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	model "schoolku_backend/internals/features/users/user/model"
)

const (
	AccessTokenTTL  = 2 * time.Hour
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// BuildAccessClaims menyusun claims yang dibaca middleware AuthJWT:
// id, user_name, school_id, roles_global, school_roles, is_owner.
func BuildAccessClaims(u *model.UserModel, now time.Time) jwt.MapClaims {
	claims := jwt.MapClaims{
		"id":           u.UserID.String(),
		"user_name":    u.UserName,
		"roles_global": []string{u.UserRole},
		"is_owner":     u.UserRole == "owner",
		"iat":          now.Unix(),
		"exp":          now.Add(AccessTokenTTL).Unix(),
	}
	if u.UserSchoolID != nil {
		claims["school_id"] = u.UserSchoolID.String()
		claims["school_roles"] = []map[string]any{
			{
				"school_id": u.UserSchoolID.String(),
				"roles":     []string{u.UserRole},
			},
		}
	}
	return claims
}

func SignToken(claims jwt.MapClaims, secret string) (string, error) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(secret))
}

func BuildRefreshClaims(u *model.UserModel, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"id":  u.UserID.String(),
		"typ": "refresh",
		"iat": now.Unix(),
		"exp": now.Add(RefreshTokenTTL).Unix(),
	}
}
