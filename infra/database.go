// Package infra wires the persistence layer: the database connection and
// the gorm-backed unit of work.
package infra

import (
	"errors"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	auditrepo "github.com/geldtransfer/backoffice/infra/repository/audit"
	transferrepo "github.com/geldtransfer/backoffice/infra/repository/transfer"
	userrepo "github.com/geldtransfer/backoffice/infra/repository/user"
	"github.com/geldtransfer/backoffice/pkg/config"
)

// NewDBConnection opens the postgres connection with pooling tuned for a
// small back-office deployment. Query logging is verbose in development
// only.
func NewDBConnection(cnf config.DBConfig, appEnv string) (*gorm.DB, error) {
	if cnf.Url == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	logMode := logger.Silent
	if appEnv == "development" {
		logMode = logger.Info
	}

	conn, err := gorm.Open(postgres.Open(cnf.Url), &gorm.Config{
		Logger:                 logger.Default.LogMode(logMode),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(1 * time.Hour)

	return conn, nil
}

// AutoMigrate creates or updates the schema for all persisted models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userrepo.User{},
		&transferrepo.MoneyTransfer{},
		&auditrepo.AuditLog{},
	)
}
