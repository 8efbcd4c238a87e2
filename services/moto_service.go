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

// MotoService provides business logic for motorcycle records.
type MotoService interface {
	GetPage(ctx context.Context, pageNumber, pageSize int) ([]models.Moto, int64, error)
	GetByID(ctx context.Context, id uint) (*models.Moto, error)
	Create(ctx context.Context, moto *models.Moto) (*models.Moto, error)
	Update(ctx context.Context, id uint, moto *models.Moto) error
	Delete(ctx context.Context, id uint) error
}

type motoService struct {
	motoRepo repository.MotoRepository
	vagaRepo repository.VagaRepository
	baseRepo repository.BaseRepository
	keys     *keygen.Registry
}

// NewMotoService creates a new motorcycle service instance.
func NewMotoService(keys *keygen.Registry) MotoService {
	return &motoService{
		motoRepo: repository.NewMotoRepository(),
		vagaRepo: repository.NewVagaRepository(),
		baseRepo: repository.NewBaseRepository(),
		keys:     keys,
	}
}

func (s *motoService) GetPage(ctx context.Context, pageNumber, pageSize int) ([]models.Moto, int64, error) {
	return s.motoRepo.GetPage(nil, pageNumber, pageSize)
}

func (s *motoService) GetByID(ctx context.Context, id uint) (*models.Moto, error) {
	moto, err := s.motoRepo.GetByID(nil, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return moto, err
}

func (s *motoService) Create(ctx context.Context, moto *models.Moto) (*models.Moto, error) {
	exists, err := s.vagaRepo.Exists(nil, moto.IdVaga)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrVagaNotFound
	}

	tx := s.baseRepo.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	key, err := s.keys.NextKey(ctx, config.Cfg.DBProvider,
		models.Moto{}.TableName(), "ID_MOTO", "SEQ_NEXTPARK_MOTO")
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if key != nil {
		moto.IdMoto = uint(*key)
	}

	if err := s.motoRepo.Create(tx, moto); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return moto, nil
}

func (s *motoService) Update(ctx context.Context, id uint, moto *models.Moto) error {
	if id != moto.IdMoto {
		return ErrIDMismatch
	}
	exists, err := s.motoRepo.Exists(nil, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}
	vagaExists, err := s.vagaRepo.Exists(nil, moto.IdVaga)
	if err != nil {
		return err
	}
	if !vagaExists {
		return ErrVagaNotFound
	}
	return s.motoRepo.Save(nil, moto)
}

func (s *motoService) Delete(ctx context.Context, id uint) error {
	exists, err := s.motoRepo.Exists(nil, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}
	return s.motoRepo.Delete(nil, id)
}
