// file: internals/features/users/user/dto/auth_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "schoolku_backend/internals/features/users/user/model"
)

type LoginRequest struct {
	UserEmail    string `json:"email" validate:"required,email"`
	UserPassword string `json:"password" validate:"required,min=8"`
}

type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

type UserResponse struct {
	UserID       uuid.UUID  `json:"user_id"`
	UserSchoolID *uuid.UUID `json:"school_id,omitempty"`
	UserName     string     `json:"user_name"`
	UserEmail    string     `json:"email"`
	UserRole     string     `json:"role"`
	UserIsActive bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
}

func FromModelUser(m *model.UserModel) UserResponse {
	return UserResponse{
		UserID:       m.UserID,
		UserSchoolID: m.UserSchoolID,
		UserName:     m.UserName,
		UserEmail:    m.UserEmail,
		UserRole:     m.UserRole,
		UserIsActive: m.UserIsActive,
		CreatedAt:    m.UserCreatedAt,
	}
}
