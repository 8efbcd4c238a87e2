package repository

import (
	"nextparkapi/config"
	"nextparkapi/models"

	"gorm.io/gorm"
)

// VagaRepository provides data access operations for parking spot records.
type VagaRepository interface {
	GetPage(tx *gorm.DB, pageNumber, pageSize int) ([]models.Vaga, int64, error)
	GetByID(tx *gorm.DB, id uint) (*models.Vaga, error)
	Exists(tx *gorm.DB, id uint) (bool, error)
	Create(tx *gorm.DB, vaga *models.Vaga) error
	Save(tx *gorm.DB, vaga *models.Vaga) error
	Delete(tx *gorm.DB, id uint) error
}

type vagaRepository struct {
	db *gorm.DB
}

// NewVagaRepository creates a new parking spot repository instance.
func NewVagaRepository() VagaRepository {
	return &vagaRepository{
		db: config.DB,
	}
}

func (r *vagaRepository) GetPage(tx *gorm.DB, pageNumber, pageSize int) ([]models.Vaga, int64, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var total int64
	if err := db.Model(&models.Vaga{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var vagas []models.Vaga
	if err := db.Order("ID_VAGA").
		Offset((pageNumber - 1) * pageSize).
		Limit(pageSize).
		Find(&vagas).Error; err != nil {
		return nil, 0, err
	}
	return vagas, total, nil
}

func (r *vagaRepository) GetByID(tx *gorm.DB, id uint) (*models.Vaga, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var vaga models.Vaga
	if err := db.Where("ID_VAGA = ?", id).First(&vaga).Error; err != nil {
		return nil, err
	}
	return &vaga, nil
}

func (r *vagaRepository) Exists(tx *gorm.DB, id uint) (bool, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var count int64
	if err := db.Model(&models.Vaga{}).Where("ID_VAGA = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *vagaRepository) Create(tx *gorm.DB, vaga *models.Vaga) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Create(vaga).Error
}

func (r *vagaRepository) Save(tx *gorm.DB, vaga *models.Vaga) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Save(vaga).Error
}

func (r *vagaRepository) Delete(tx *gorm.DB, id uint) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Delete(&models.Vaga{}, "ID_VAGA = ?", id).Error
}
