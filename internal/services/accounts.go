package services

import (
	"errors"
	"log/slog"

	"github.com/wasishah33/Subscene-Clone/internal/auth"
	"github.com/wasishah33/Subscene-Clone/internal/models"
	"github.com/wasishah33/Subscene-Clone/pkg/utils"

	"gorm.io/gorm"
)

var (
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

type RegisterDTO struct {
	Username string
	Email    string
	Password string
	FullName string
}

type AccountService struct {
	db     *gorm.DB
	issuer *auth.Issuer
	logger *slog.Logger
}

func NewAccountService(db *gorm.DB, issuer *auth.Issuer, logger *slog.Logger) *AccountService {
	return &AccountService{db: db, issuer: issuer, logger: logger}
}

// Register creates a new account. The duplicate check covers username and
// email in a single lookup so the caller can be told which field collided.
func (s *AccountService) Register(dto RegisterDTO) (*models.User, error) {
	var existing models.User
	err := s.db.Where("username = ? OR email = ?", dto.Username, dto.Email).First(&existing).Error
	if err == nil {
		if existing.Username == dto.Username {
			return nil, ErrDuplicateUsername
		}
		return nil, ErrDuplicateEmail
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := utils.HashPassword(dto.Password)
	if err != nil {
		return nil, err
	}

	newUser := models.User{
		Username:     dto.Username,
		Email:        dto.Email,
		PasswordHash: hashedPassword,
		FullName:     dto.FullName,
	}

	if err := s.db.Create(&newUser).Error; err != nil {
		return nil, err
	}

	return &newUser, nil
}

// Authenticate verifies credentials and mints a session token. The
// identifier may be a username or an email. Unknown identifier and wrong
// password both come back as ErrInvalidCredentials so the response never
// leaks whether an account exists.
func (s *AccountService) Authenticate(identifier, password string) (string, *models.User, error) {
	var user models.User
	err := s.db.Where("username = ? OR email = ?", identifier, identifier).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.issuer.Mint(user.ID, user.Username, auth.TokenTTL)
	if err != nil {
		return "", nil, err
	}

	return token, &user, nil
}

// FetchByID hydrates a verified session into a full user record.
func (s *AccountService) FetchByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
