package services

import (
	"context"
	"errors"

	"nextparkapi/config"
	"nextparkapi/models"
	"nextparkapi/pkg/logger"
	"nextparkapi/repository"
	"nextparkapi/services/keygen"
	"nextparkapi/utils"

	"gorm.io/gorm"
)

// AuthService provides user registration and credential verification.
type AuthService interface {
	Register(ctx context.Context, email, password string) (*models.Usuario, error)
	Login(ctx context.Context, email, password string) (*models.Login, error)
}

type authService struct {
	usuarioRepo repository.UsuarioRepository
	loginRepo   repository.LoginRepository
	baseRepo    repository.BaseRepository
	keys        *keygen.Registry
}

// NewAuthService creates a new authentication service instance.
func NewAuthService(keys *keygen.Registry) AuthService {
	return &authService{
		usuarioRepo: repository.NewUsuarioRepository(),
		loginRepo:   repository.NewLoginRepository(),
		baseRepo:    repository.NewBaseRepository(),
		keys:        keys,
	}
}

// Register creates the user row and its credential row in a single
// transaction; both inserts succeed or neither does. The original error is
// returned unmodified after rollback.
func (s *authService) Register(ctx context.Context, email, password string) (*models.Usuario, error) {
	count, err := s.usuarioRepo.CountByEmail(nil, email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	tx := s.baseRepo.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	usuarioKey, err := s.keys.NextKey(ctx, config.Cfg.DBProvider,
		models.Usuario{}.TableName(), "ID_USUARIO", "SEQ_NEXTPARK_USUARIO")
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	usuario := &models.Usuario{NrEmail: email}
	if usuarioKey != nil {
		usuario.IdUsuario = uint(*usuarioKey)
	}
	if err := s.usuarioRepo.Create(tx, usuario); err != nil {
		tx.Rollback()
		return nil, err
	}

	loginKey, err := s.keys.NextKey(ctx, config.Cfg.DBProvider,
		models.Login{}.TableName(), "ID_LOGIN", "SEQ_NEXTPARK_LOGIN")
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	login := &models.Login{
		IdUsuario: usuario.IdUsuario,
		NrEmail:   email,
		DsSenha:   hash,
	}
	if loginKey != nil {
		login.IdLogin = uint(*loginKey)
	}
	if err := s.loginRepo.Create(tx, login); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	logger.Infof("Registered new user %d", usuario.IdUsuario)
	return usuario, nil
}

// Login verifies the credential for the e-mail. Unknown e-mail and wrong
// password both come back as ErrInvalidCredentials.
func (s *authService) Login(ctx context.Context, email, password string) (*models.Login, error) {
	login, err := s.loginRepo.GetByEmail(nil, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !utils.VerifyPassword(password, login.DsSenha) {
		return nil, ErrInvalidCredentials
	}
	return login, nil
}
