package repository

import (
	"nextparkapi/config"
	"nextparkapi/models"

	"gorm.io/gorm"
)

// LoginRepository provides data access operations for stored credentials.
type LoginRepository interface {
	GetByEmail(tx *gorm.DB, email string) (*models.Login, error)
	Create(tx *gorm.DB, login *models.Login) error
}

type loginRepository struct {
	db *gorm.DB
}

// NewLoginRepository creates a new credential repository instance.
func NewLoginRepository() LoginRepository {
	return &loginRepository{
		db: config.DB,
	}
}

func (r *loginRepository) GetByEmail(tx *gorm.DB, email string) (*models.Login, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var login models.Login
	if err := db.Where("NR_EMAIL = ?", email).First(&login).Error; err != nil {
		return nil, err
	}
	return &login, nil
}

func (r *loginRepository) Create(tx *gorm.DB, login *models.Login) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Create(login).Error
}
