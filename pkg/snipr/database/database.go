package database

import (
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Connect initializes the database connection. Postgres is selected when the
// DSN looks like a postgres URL, otherwise the DSN is treated as a SQLite
// file path. TranslateError is enabled so unique-constraint violations come
// back as gorm.ErrDuplicatedKey regardless of driver.
func Connect(dsn string) error {
	var err error
	DB, err = gorm.Open(openDialector(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return err
	}
	return nil
}

func openDialector(dsn string) gorm.Dialector {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return postgres.Open(dsn)
	}
	return sqlite.Open(dsn)
}

// GetDB returns the database instance.
func GetDB() *gorm.DB {
	return DB
}
