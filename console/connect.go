package console

import (
	"fmt"
	"os"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the shared console schema, which holds the owner and
// subscription registry for every location host. Location data itself
// lives in the per-location schemas; the console never touches those.
func Connect() (*gorm.DB, error) {
	dsn := os.Getenv("CONSOLE_DSN")
	if dsn == "" {
		return nil, fmt.Errorf("CONSOLE_DSN is required")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		// Logger: logger.Default.LogMode(logger.Info),
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	// Optional: configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}
