package bootstrap

import (
	"fmt"

	"nextparkapi/config"
	"nextparkapi/models"
	"nextparkapi/pkg/logger"
)

// Migrate creates or updates the schema for all entities at startup.
// Parents migrate before children so foreign key constraints resolve.
func Migrate() error {
	logger.Infof("Running schema migration...")

	if err := config.DB.AutoMigrate(
		&models.Vaga{},
		&models.Moto{},
		&models.Manutencao{},
		&models.Usuario{},
		&models.Login{},
	); err != nil {
		return fmt.Errorf("schema migration failed: %w", err)
	}

	logger.Infof("Schema migration complete")
	return nil
}
