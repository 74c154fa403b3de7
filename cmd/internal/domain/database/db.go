package database

import (
	"fmt"
	"jobboard/cmd/internal/config"
	"jobboard/cmd/internal/domain/entity"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Models lists every table managed by AutoMigrate.
var Models = []any{
	&entity.User{},
	&entity.Skill{},
	&entity.UserSkill{},
	&entity.Job{},
	&entity.Application{},
}

func Init(cfg *config.Config) (*gorm.DB, error) {
	return Open(cfg.DBDriver, cfg.DBDSN)
}

// Open connects to the database and migrates every model.
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case config.DriverPostgres:
		dialector = postgres.Open(dsn)
	case config.DriverSQLite:
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	if driver == config.DriverSQLite {
		// SQLite serializes writers anyway, a single long lived connection
		// also keeps ":memory:" databases alive.
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	} else {
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	if err = db.AutoMigrate(Models...); err != nil {
		return nil, err
	}
	return db, nil
}
