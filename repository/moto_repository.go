package repository

import (
	"nextparkapi/config"
	"nextparkapi/models"

	"gorm.io/gorm"
)

// MotoRepository provides data access operations for motorcycle records.
type MotoRepository interface {
	GetPage(tx *gorm.DB, pageNumber, pageSize int) ([]models.Moto, int64, error)
	GetByID(tx *gorm.DB, id uint) (*models.Moto, error)
	Exists(tx *gorm.DB, id uint) (bool, error)
	Create(tx *gorm.DB, moto *models.Moto) error
	Save(tx *gorm.DB, moto *models.Moto) error
	Delete(tx *gorm.DB, id uint) error
}

type motoRepository struct {
	db *gorm.DB
}

// NewMotoRepository creates a new motorcycle repository instance.
func NewMotoRepository() MotoRepository {
	return &motoRepository{
		db: config.DB,
	}
}

func (r *motoRepository) GetPage(tx *gorm.DB, pageNumber, pageSize int) ([]models.Moto, int64, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var total int64
	if err := db.Model(&models.Moto{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var motos []models.Moto
	if err := db.Order("ID_MOTO").
		Offset((pageNumber - 1) * pageSize).
		Limit(pageSize).
		Find(&motos).Error; err != nil {
		return nil, 0, err
	}
	return motos, total, nil
}

func (r *motoRepository) GetByID(tx *gorm.DB, id uint) (*models.Moto, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var moto models.Moto
	if err := db.Where("ID_MOTO = ?", id).First(&moto).Error; err != nil {
		return nil, err
	}
	return &moto, nil
}

func (r *motoRepository) Exists(tx *gorm.DB, id uint) (bool, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var count int64
	if err := db.Model(&models.Moto{}).Where("ID_MOTO = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *motoRepository) Create(tx *gorm.DB, moto *models.Moto) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Create(moto).Error
}

func (r *motoRepository) Save(tx *gorm.DB, moto *models.Moto) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Save(moto).Error
}

func (r *motoRepository) Delete(tx *gorm.DB, id uint) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Delete(&models.Moto{}, "ID_MOTO = ?", id).Error
}
