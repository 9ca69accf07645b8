package main

import (
	"log"

	"github.com/msnknki/Postly/internal/config"
	"github.com/msnknki/Postly/internal/database"
	"github.com/msnknki/Postly/internal/routes"
)

func main() {
	cfg := config.Load()

	var db *database.Database
	if cfg.Database.Primary.Enable {
		db = database.InitWithFallback(
			cfg.Database.Primary.Driver,
			cfg.Database.Primary.DSN,
			cfg.Database.Fallback.Driver,
			cfg.Database.Fallback.DSN,
		)
	} else if cfg.Database.Fallback.Enable {
		db = database.InitWithFallback(
			cfg.Database.Fallback.Driver,
			cfg.Database.Fallback.DSN,
			"", "",
		)
	} else {
		log.Println("all database connections disabled, running in-memory")
		db = database.InitWithFallback("sqlite", ":memory:", "", "")
	}

	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("database close: %v", err)
		}
	}()

	if err := db.Ping(); err != nil {
		// Degraded mode: the API stays up, database calls will fail per request.
		log.Printf("warning: database unreachable: %v", err)
	}

	router := routes.SetupRoutes(db.DB, cfg)

	log.Printf("Postly API listening on port %s (%s database)", cfg.Server.Port, db.Driver)
	log.Fatal(router.Run(":" + cfg.Server.Port))
}
