package database

import (
	"fmt"
	"log"
	"net"
	"strings"
	"time"

	embeddedpostgres "github.com/fergusstrange/embedded-postgres"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"backend/internal/models"
)

const (
	embeddedDataPath = "./db_data"
	embeddedPort     = 5433
)

// DB wraps gorm.DB and keeps a handle on the embedded process if one is active.
type DB struct {
	*gorm.DB
	embedded *embeddedpostgres.EmbeddedPostgres
}

func isPortInUse(port int) bool {
	conn, err := net.DialTimeout("tcp", fmt.Sprintf("127.0.0.1:%d", port), time.Second)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

// ConnectPostgres opens the relational store. When the DSN points at
// localhost without a password, an embedded PostgreSQL instance is started
// instead so the service runs without any external database (dev mode).
func ConnectPostgres(dsn string) (*DB, error) {
	var embedded *embeddedpostgres.EmbeddedPostgres

	isEmbedded := strings.Contains(dsn, "host=localhost") && !strings.Contains(dsn, "password=")

	if isEmbedded {
		log.Println("[DB] [INFO] embedded postgres mode")

		if !isPortInUse(embeddedPort) {
			embedded = embeddedpostgres.NewDatabase(embeddedpostgres.DefaultConfig().
				Port(embeddedPort).
				DataPath(embeddedDataPath).
				Logger(nil))
			if err := embedded.Start(); err != nil {
				return nil, fmt.Errorf("embedded postgres start: %w", err)
			}
		} else {
			log.Printf("[DB] [INFO] port %d already in use, reusing running instance", embeddedPort)
		}

		dsn = fmt.Sprintf("host=127.0.0.1 port=%d user=postgres password=postgres dbname=postgres sslmode=disable", embeddedPort)
	}

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		if embedded != nil {
			embedded.Stop()
		}
		return nil, fmt.Errorf("postgres connect: %w", err)
	}

	return &DB{DB: gormDB, embedded: embedded}, nil
}

// Migrate creates or updates the relational schema.
func (db *DB) Migrate() error {
	return db.AutoMigrate(
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.Complaint{},
		&models.RefundRequest{},
		&models.VendorProfile{},
		&models.CustomerProfile{},
	)
}

// Close shuts down the pool and, if running, the embedded instance.
func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err == nil {
		sqlDB.Close()
	}
	if db.embedded != nil {
		return db.embedded.Stop()
	}
	return nil
}
