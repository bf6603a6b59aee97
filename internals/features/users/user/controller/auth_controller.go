// file: internals/features/users/user/controller/auth_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	configs "schoolku_backend/internals/configs"
	dto "schoolku_backend/internals/features/users/user/dto"
	model "schoolku_backend/internals/features/users/user/model"
	service "schoolku_backend/internals/features/users/user/service"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type AuthController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validator: validator.New()}
}

// ========== Login ==========
// Pesan error sengaja sama untuk email tak terdaftar dan password salah,
// supaya tidak membocorkan akun mana yang ada.
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var u model.UserModel
	err := ctl.DB.
		Where("user_email = ?", strings.ToLower(strings.TrimSpace(req.UserEmail))).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses login")
	}
	if !u.UserIsActive {
		return helper.Error(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}
	if bcrypt.CompareHashAndPassword([]byte(u.UserPassword), []byte(req.UserPassword)) != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	now := time.Now()
	access, err := service.SignToken(service.BuildAccessClaims(&u, now), configs.JWTSecret)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}
	refresh, err := service.SignToken(service.BuildRefreshClaims(&u, now), configs.JWTRefreshSecret)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat refresh token")
	}

	return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         dto.FromModelUser(&u),
	})
}

// ========== Me ==========
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var u model.UserModel
	if err := ctl.DB.Where("user_id = ?", userID).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil profil")
	}
	return helper.JsonOK(c, "OK", dto.FromModelUser(&u))
}
