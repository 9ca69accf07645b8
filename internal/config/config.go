package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	Server   ServerConfig
}

type DatabaseConfig struct {
	Primary  DBConnection
	Fallback DBConnection
}

type DBConnection struct {
	Driver string
	DSN    string
	Enable bool
}

type JWTConfig struct {
	Secret string
}

type ServerConfig struct {
	Port           string
	BaseURL        string
	AllowedOrigins []string
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("no .env file loaded:", err)
	}

	secret := getEnvOrDefault("JWT_SECRET", "")
	if secret == "" {
		log.Println("warning: JWT_SECRET not set, using insecure default")
		secret = "postly-dev-secret"
	}

	return &Config{
		Database: DatabaseConfig{
			Primary:  loadPrimaryDB(),
			Fallback: loadFallbackDB(),
		},
		JWT: JWTConfig{
			Secret: secret,
		},
		Server: ServerConfig{
			Port:           getEnvOrDefault("PORT", "5000"),
			BaseURL:        getEnvOrDefault("BASE_URL", "http://localhost:5000"),
			AllowedOrigins: loadOrigins(),
		},
	}
}

func loadOrigins() []string {
	raw := getEnvOrDefault("FRONTEND_URL", "http://localhost:3000")
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

func loadPrimaryDB() DBConnection {
	driver := getEnvOrDefault("PRIMARY_DB_DRIVER", "mysql")
	enable := getEnvOrDefault("PRIMARY_DB_ENABLE", "true") == "true"

	var dsn string
	switch driver {
	case "mysql":
		dsn = buildMySQLDSN()
	case "sqlite":
		dsn = getEnvOrDefault("PRIMARY_SQLITE_PATH", "./data/postly.db")
	default:
		log.Printf("unsupported primary database driver: %s", driver)
		enable = false
	}

	return DBConnection{
		Driver: driver,
		DSN:    dsn,
		Enable: enable,
	}
}

func loadFallbackDB() DBConnection {
	driver := getEnvOrDefault("FALLBACK_DB_DRIVER", "sqlite")
	enable := getEnvOrDefault("FALLBACK_DB_ENABLE", "true") == "true"

	var dsn string
	switch driver {
	case "mysql":
		dsn = os.Getenv("FALLBACK_DB_DSN")
	case "sqlite":
		dsn = getEnvOrDefault("FALLBACK_SQLITE_PATH", "./data/fallback.db")
	default:
		driver = "sqlite"
		dsn = "./data/fallback.db"
	}

	return DBConnection{
		Driver: driver,
		DSN:    dsn,
		Enable: enable,
	}
}

func buildMySQLDSN() string {
	if dsn := os.Getenv("PRIMARY_DB_DSN"); dsn != "" {
		return dsn
	}

	host := getEnvOrDefault("DB_HOST", "localhost")
	port := getEnvOrDefault("DB_PORT", "3306")
	user := getEnvOrDefault("DB_USER", "root")
	password := os.Getenv("DB_PASSWORD")
	database := getEnvOrDefault("DB_NAME", "postly_db")
	charset := getEnvOrDefault("DB_CHARSET", "utf8mb4")

	// clientFoundRows makes UPDATE report matched rows instead of changed
	// rows; ownership checks read RowsAffected, and a no-op rewrite of an
	// identical value must still count as a hit.
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=Local&clientFoundRows=True",
		user, password, host, port, database, charset)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
