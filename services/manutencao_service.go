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

// ManutencaoService provides business logic for maintenance records.
type ManutencaoService interface {
	GetPage(ctx context.Context, pageNumber, pageSize int) ([]models.Manutencao, int64, error)
	GetByID(ctx context.Context, id uint) (*models.Manutencao, error)
	Create(ctx context.Context, manutencao *models.Manutencao) (*models.Manutencao, error)
	Update(ctx context.Context, id uint, manutencao *models.Manutencao) error
	Delete(ctx context.Context, id uint) error
}

type manutencaoService struct {
	manutencaoRepo repository.ManutencaoRepository
	motoRepo       repository.MotoRepository
	baseRepo       repository.BaseRepository
	keys           *keygen.Registry
}

// NewManutencaoService creates a new maintenance record service instance.
func NewManutencaoService(keys *keygen.Registry) ManutencaoService {
	return &manutencaoService{
		manutencaoRepo: repository.NewManutencaoRepository(),
		motoRepo:       repository.NewMotoRepository(),
		baseRepo:       repository.NewBaseRepository(),
		keys:           keys,
	}
}

func (s *manutencaoService) GetPage(ctx context.Context, pageNumber, pageSize int) ([]models.Manutencao, int64, error) {
	return s.manutencaoRepo.GetPage(nil, pageNumber, pageSize)
}

func (s *manutencaoService) GetByID(ctx context.Context, id uint) (*models.Manutencao, error) {
	manutencao, err := s.manutencaoRepo.GetByID(nil, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return manutencao, err
}

func (s *manutencaoService) Create(ctx context.Context, manutencao *models.Manutencao) (*models.Manutencao, error) {
	exists, err := s.motoRepo.Exists(nil, manutencao.IdMoto)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrMotoNotFound
	}

	tx := s.baseRepo.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	key, err := s.keys.NextKey(ctx, config.Cfg.DBProvider,
		models.Manutencao{}.TableName(), "ID_MANUTENCAO", "SEQ_NEXTPARK_MANUTENCAO")
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if key != nil {
		manutencao.IdManutencao = uint(*key)
	}

	if err := s.manutencaoRepo.Create(tx, manutencao); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return manutencao, nil
}

func (s *manutencaoService) Update(ctx context.Context, id uint, manutencao *models.Manutencao) error {
	if id != manutencao.IdManutencao {
		return ErrIDMismatch
	}
	exists, err := s.manutencaoRepo.Exists(nil, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}
	motoExists, err := s.motoRepo.Exists(nil, manutencao.IdMoto)
	if err != nil {
		return err
	}
	if !motoExists {
		return ErrMotoNotFound
	}
	return s.manutencaoRepo.Save(nil, manutencao)
}

func (s *manutencaoService) Delete(ctx context.Context, id uint) error {
	exists, err := s.manutencaoRepo.Exists(nil, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}
	return s.manutencaoRepo.Delete(nil, id)
}
