package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/msnknki/Postly/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Database struct {
	DB     *gorm.DB
	Driver string
}

// Init opens a connection for the given driver and runs migrations.
func Init(driver, dsn string) (*Database, error) {
	var db *gorm.DB
	var err error

	config := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}

	switch driver {
	case "mysql":
		db, err = initMySQL(dsn, config)
	case "sqlite":
		db, err = initSQLite(dsn, config)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}

	if err != nil {
		return nil, err
	}

	d := &Database{DB: db, Driver: driver}
	if err := d.migrate(); err != nil {
		log.Printf("migration failed: %v", err)
	}

	return d, nil
}

// InitWithFallback tries the primary connection first and falls back to the
// secondary one, then to an in-memory SQLite database. The server always gets
// a handle; connectivity problems are logged, not fatal.
func InitWithFallback(primaryDriver, primaryDSN, fallbackDriver, fallbackDSN string) *Database {
	if primaryDriver != "" {
		db, err := Init(primaryDriver, primaryDSN)
		if err == nil {
			return db
		}
		log.Printf("primary database (%s) unavailable: %v", primaryDriver, err)
	}

	if fallbackDriver != "" {
		db, err := Init(fallbackDriver, fallbackDSN)
		if err == nil {
			log.Printf("using fallback database (%s)", fallbackDriver)
			return db
		}
		log.Printf("fallback database (%s) unavailable: %v", fallbackDriver, err)
	}

	// Degraded mode: data will not survive a restart.
	log.Println("warning: no database reachable, starting with in-memory SQLite")
	db, err := Init("sqlite", ":memory:")
	if err != nil {
		// In-memory SQLite cannot realistically fail to open.
		log.Fatalf("in-memory database init failed: %v", err)
	}
	return db
}

func initMySQL(dsn string, config *gorm.Config) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("mysql DSN not configured")
	}

	db, err := gorm.Open(mysql.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("mysql connect: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)

	log.Println("connected to mysql database")
	return db, nil
}

func initSQLite(dsn string, config *gorm.Config) (*gorm.DB, error) {
	if dsn != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dsn), 0755); err != nil {
			return nil, fmt.Errorf("sqlite data dir: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("sqlite connect: %w", err)
	}

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, err
	}

	if dsn == ":memory:" {
		// Every pooled connection to ":memory:" would get its own database.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	log.Printf("connected to sqlite database: %s", dsn)
	return db, nil
}

func (d *Database) migrate() error {
	if err := d.DB.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Post{},
		&models.Comment{},
	); err != nil {
		return err
	}

	// Listing always sorts on created_at; AutoMigrate only indexes what the
	// model tags declare.
	stmt := `CREATE INDEX IF NOT EXISTS idx_posts_created_at ON posts (created_at)`
	if err := d.DB.Exec(stmt).Error; err != nil {
		return err
	}

	if d.Driver == "mysql" {
		// Natural-language search needs a FULLTEXT index; duplicate-key error
		// on re-run is expected and ignored.
		err := d.DB.Exec(
			"CREATE FULLTEXT INDEX idx_posts_fulltext ON posts (post_title, post_text)",
		).Error
		if err != nil {
			log.Printf("fulltext index: %v", err)
		}
	}

	return nil
}

func (d *Database) Ping() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
