package repository

import (
	"nextparkapi/config"
	"nextparkapi/models"

	"gorm.io/gorm"
)

// ManutencaoRepository provides data access operations for maintenance records.
type ManutencaoRepository interface {
	GetPage(tx *gorm.DB, pageNumber, pageSize int) ([]models.Manutencao, int64, error)
	GetByID(tx *gorm.DB, id uint) (*models.Manutencao, error)
	Exists(tx *gorm.DB, id uint) (bool, error)
	Create(tx *gorm.DB, manutencao *models.Manutencao) error
	Save(tx *gorm.DB, manutencao *models.Manutencao) error
	Delete(tx *gorm.DB, id uint) error
}

type manutencaoRepository struct {
	db *gorm.DB
}

// NewManutencaoRepository creates a new maintenance record repository instance.
func NewManutencaoRepository() ManutencaoRepository {
	return &manutencaoRepository{
		db: config.DB,
	}
}

func (r *manutencaoRepository) GetPage(tx *gorm.DB, pageNumber, pageSize int) ([]models.Manutencao, int64, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var total int64
	if err := db.Model(&models.Manutencao{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var manutencoes []models.Manutencao
	if err := db.Order("ID_MANUTENCAO").
		Offset((pageNumber - 1) * pageSize).
		Limit(pageSize).
		Find(&manutencoes).Error; err != nil {
		return nil, 0, err
	}
	return manutencoes, total, nil
}

func (r *manutencaoRepository) GetByID(tx *gorm.DB, id uint) (*models.Manutencao, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var manutencao models.Manutencao
	if err := db.Where("ID_MANUTENCAO = ?", id).First(&manutencao).Error; err != nil {
		return nil, err
	}
	return &manutencao, nil
}

func (r *manutencaoRepository) Exists(tx *gorm.DB, id uint) (bool, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var count int64
	if err := db.Model(&models.Manutencao{}).Where("ID_MANUTENCAO = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *manutencaoRepository) Create(tx *gorm.DB, manutencao *models.Manutencao) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Create(manutencao).Error
}

func (r *manutencaoRepository) Save(tx *gorm.DB, manutencao *models.Manutencao) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Save(manutencao).Error
}

func (r *manutencaoRepository) Delete(tx *gorm.DB, id uint) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Delete(&models.Manutencao{}, "ID_MANUTENCAO = ?", id).Error
}
