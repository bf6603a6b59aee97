package seeds

import (
	"gorm.io/gorm"
)

// RunAllSeeds dipanggil saat bootstrap bila SEED_ON_START=true.
// Semua seed idempoten — aman dijalankan berulang.
func RunAllSeeds(db *gorm.DB) {
	SeedAdminUser(db)
}
