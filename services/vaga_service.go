package services

import (
	"context"
	"errors"

	"nextparkapi/config"
	"nextparkapi/models"
	"nextparkapi/repository"
	"nextparkapi/services/keygen"

	"gorm.io/gorm"
)

// VagaService provides business logic for parking spot records.
type VagaService interface {
	GetPage(ctx context.Context, pageNumber, pageSize int) ([]models.Vaga, int64, error)
	GetByID(ctx context.Context, id uint) (*models.Vaga, error)
	Create(ctx context.Context, vaga *models.Vaga) (*models.Vaga, error)
	Update(ctx context.Context, id uint, vaga *models.Vaga) error
	Delete(ctx context.Context, id uint) error
}

type vagaService struct {
	vagaRepo repository.VagaRepository
	baseRepo repository.BaseRepository
	keys     *keygen.Registry
}

// NewVagaService creates a new parking spot service instance.
func NewVagaService(keys *keygen.Registry) VagaService {
	return &vagaService{
		vagaRepo: repository.NewVagaRepository(),
		baseRepo: repository.NewBaseRepository(),
		keys:     keys,
	}
}

func (s *vagaService) GetPage(ctx context.Context, pageNumber, pageSize int) ([]models.Vaga, int64, error) {
	return s.vagaRepo.GetPage(nil, pageNumber, pageSize)
}

func (s *vagaService) GetByID(ctx context.Context, id uint) (*models.Vaga, error) {
	vaga, err := s.vagaRepo.GetByID(nil, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return vaga, err
}

func (s *vagaService) Create(ctx context.Context, vaga *models.Vaga) (*models.Vaga, error) {
	tx := s.baseRepo.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	key, err := s.keys.NextKey(ctx, config.Cfg.DBProvider,
		models.Vaga{}.TableName(), "ID_VAGA", "SEQ_NEXTPARK_VAGA")
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if key != nil {
		vaga.IdVaga = uint(*key)
	}

	if err := s.vagaRepo.Create(tx, vaga); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return vaga, nil
}

func (s *vagaService) Update(ctx context.Context, id uint, vaga *models.Vaga) error {
	if id != vaga.IdVaga {
		return ErrIDMismatch
	}
	exists, err := s.vagaRepo.Exists(nil, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}
	return s.vagaRepo.Save(nil, vaga)
}

func (s *vagaService) Delete(ctx context.Context, id uint) error {
	exists, err := s.vagaRepo.Exists(nil, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}
	return s.vagaRepo.Delete(nil, id)
}
