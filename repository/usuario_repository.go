package repository

import (
	"nextparkapi/config"
	"nextparkapi/models"

	"gorm.io/gorm"
)

// UsuarioRepository provides data access operations for user records.
type UsuarioRepository interface {
	GetByEmail(tx *gorm.DB, email string) (*models.Usuario, error)
	CountByEmail(tx *gorm.DB, email string) (int64, error)
	Create(tx *gorm.DB, usuario *models.Usuario) error
}

type usuarioRepository struct {
	db *gorm.DB
}

// NewUsuarioRepository creates a new user repository instance.
func NewUsuarioRepository() UsuarioRepository {
	return &usuarioRepository{
		db: config.DB,
	}
}

func (r *usuarioRepository) GetByEmail(tx *gorm.DB, email string) (*models.Usuario, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var usuario models.Usuario
	if err := db.Where("NR_EMAIL = ?", email).First(&usuario).Error; err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (r *usuarioRepository) CountByEmail(tx *gorm.DB, email string) (int64, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var count int64
	if err := db.Model(&models.Usuario{}).Where("NR_EMAIL = ?", email).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *usuarioRepository) Create(tx *gorm.DB, usuario *models.Usuario) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Create(usuario).Error
}
