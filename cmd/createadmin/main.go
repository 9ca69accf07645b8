// Command createadmin seeds the demo administrator account.
//
// Default credentials: admin@postly.com / admin123. Change the password
// after first login.
package main

import (
	"log"

	"github.com/msnknki/Postly/internal/config"
	"github.com/msnknki/Postly/internal/database"
	"github.com/msnknki/Postly/internal/models"
	"github.com/msnknki/Postly/internal/store"
	"github.com/msnknki/Postly/pkg/utils"
)

func main() {
	cfg := config.Load()

	db := database.InitWithFallback(
		cfg.Database.Primary.Driver,
		cfg.Database.Primary.DSN,
		cfg.Database.Fallback.Driver,
		cfg.Database.Fallback.DSN,
	)
	defer db.Close()

	users := store.NewUserStore(db.DB)

	const (
		adminEmail    = "admin@postly.com"
		adminUsername = "Administrator"
		adminPassword = "admin123"
	)

	existing, err := users.ByEmail(adminEmail)
	if err != nil {
		log.Fatalf("lookup admin: %v", err)
	}
	if existing != nil {
		log.Printf("admin account already exists: %s", adminEmail)
		return
	}

	hash, err := utils.HashPassword(adminPassword)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	admin := models.User{
		Username: adminUsername,
		Email:    adminEmail,
		Password: hash,
		Role:     models.RoleAdmin,
	}
	if err := users.Create(&admin); err != nil {
		log.Fatalf("create admin: %v", err)
	}

	log.Printf("admin account created: %s (id %d)", adminEmail, admin.ID)
}
