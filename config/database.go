package config

import (
	"fmt"
	"strings"

	"nextparkapi/pkg/logger"

	oracle "github.com/godoes/gorm-oracle"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
)

// DB is the global GORM database instance used throughout the application.
var DB *gorm.DB

// ConnectDB establishes the database connection for the configured provider.
// The provider string is matched by case-insensitive substring so richer
// identity strings such as "Oracle.EntityFrameworkCore" still resolve.
func ConnectDB() error {
	logger.Infof("Connecting to %s database %s@%s:%d/%s",
		Cfg.DBProvider, Cfg.DBUser, Cfg.DBHost, Cfg.DBPort, Cfg.DBName)

	dialector, err := openDialector()
	if err != nil {
		return err
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		logger.Errorf("GORM connection failed: %v", err)
		return err
	}
	logger.Infof("GORM connected successfully to database %s", Cfg.DBName)

	DB = db
	return nil
}

func openDialector() (gorm.Dialector, error) {
	provider := strings.ToLower(Cfg.DBProvider)
	switch {
	case strings.Contains(provider, "oracle"):
		dsn := Cfg.DBDsn
		if dsn == "" {
			dsn = oracle.BuildUrl(Cfg.DBHost, Cfg.DBPort, Cfg.DBService, Cfg.DBUser, Cfg.DBPass, nil)
		}
		return oracle.Open(dsn), nil
	case strings.Contains(provider, "sqlserver"):
		dsn := Cfg.DBDsn
		if dsn == "" {
			dsn = fmt.Sprintf("sqlserver://%s:%s@%s:%d?database=%s",
				Cfg.DBUser, Cfg.DBPass, Cfg.DBHost, Cfg.DBPort, Cfg.DBName)
		}
		return sqlserver.Open(dsn), nil
	case strings.Contains(provider, "mysql"):
		dsn := Cfg.DBDsn
		if dsn == "" {
			dsn = fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
				Cfg.DBUser, Cfg.DBPass, Cfg.DBHost, Cfg.DBPort, Cfg.DBName)
		}
		return mysql.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database provider %q", Cfg.DBProvider)
	}
}
