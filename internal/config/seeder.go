package config

import (
	"errors"
	"log"

	"navkar-inquiry/internal/adapters/persistence/models"
	"navkar-inquiry/internal/pkg/password"

	"gorm.io/gorm"
)

// SeedDefaultUsers creates demo accounts for local development.
// Existing accounts are left untouched.
func SeedDefaultUsers(db *gorm.DB) error {
	seeds := []struct {
		username string
		password string
		role     string
	}{
		{"admin", "admin123", "ADMIN"},
		{"customer", "customer123", "USER"},
	}

	for _, seed := range seeds {
		var existing models.User
		err := db.Where("username = ?", seed.username).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		hashed, err := password.Hash(seed.password)
		if err != nil {
			return err
		}
		user := &models.User{
			Username: seed.username,
			Password: hashed,
			Role:     seed.role,
		}
		if err := db.Create(user).Error; err != nil {
			return err
		}
		log.Printf("seeded %s account: %s", seed.role, seed.username)
	}

	return nil
}
