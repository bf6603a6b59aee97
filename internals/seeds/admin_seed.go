package seeds

import (
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	configs "schoolku_backend/internals/configs"
	userModel "schoolku_backend/internals/features/users/user/model"
)

// SeedAdminUser membuat akun admin awal dari env ADMIN_EMAIL/ADMIN_PASSWORD.
// Tidak melakukan apa pun bila emailnya sudah terdaftar.
func SeedAdminUser(db *gorm.DB) {
	email := strings.ToLower(strings.TrimSpace(configs.GetEnv("ADMIN_EMAIL", "")))
	password := configs.GetEnv("ADMIN_PASSWORD", "")
	if email == "" || password == "" {
		log.Println("⚠️ ADMIN_EMAIL/ADMIN_PASSWORD belum diset, lewati seed admin")
		return
	}

	var cnt int64
	if err := db.Model(&userModel.UserModel{}).
		Where("user_email = ?", email).
		Count(&cnt).Error; err != nil {
		log.Printf("❌ Gagal cek user admin: %v", err)
		return
	}
	if cnt > 0 {
		log.Println("ℹ️ Admin sudah ada, lewati seed")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("❌ Gagal hash password admin: %v", err)
		return
	}

	u := userModel.UserModel{
		UserName:     configs.GetEnv("ADMIN_NAME", "Administrator"),
		UserEmail:    email,
		UserPassword: string(hash),
		UserRole:     "admin",
		UserIsActive: true,
	}
	if err := db.Create(&u).Error; err != nil {
		log.Printf("❌ Gagal membuat user admin: %v", err)
		return
	}
	log.Printf("✅ Admin %s berhasil dibuat", email)
}
