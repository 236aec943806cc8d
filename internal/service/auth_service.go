package service

import (
	"errors"

	"spareparts-backend/internal/model"
	"spareparts-backend/internal/repository"
	"spareparts-backend/pkg/jwt"
	"spareparts-backend/pkg/password"

	"gorm.io/gorm"
)

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAdminExists        = errors.New("admin already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrPasswordTooShort   = errors.New("new password must be at least 4 characters long")
)

type AuthService interface {
	Register(username, pass string) (*model.User, error)
	Login(username, pass string) (*LoginResponse, error)
	CreateAdmin(username, pass string) (*model.User, error)
	ChangePassword(username, newPassword string) error
	ListUsernames() ([]string, error)
}

type LoginResponse struct {
	Token string             `json:"token"`
	User  model.UserResponse `json:"user"`
}

type authService struct {
	userRepo  repository.UserRepository
	jwtSecret []byte
}

func NewAuthService(userRepo repository.UserRepository, jwtSecret []byte) AuthService {
	return &authService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
	}
}

// newCredential produces a fresh salt and the matching digest.
func newCredential(pass string) (digest, salt string, err error) {
	salt, err = password.NewSalt()
	if err != nil {
		return "", "", err
	}
	return password.Hash(pass, salt), salt, nil
}

func (s *authService) Register(username, pass string) (*model.User, error) {
	existing, err := s.userRepo.FindByUsername(username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	digest, salt, err := newCredential(pass)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username: username,
		Password: digest,
		Salt:     salt,
		Role:     model.RoleSupplier,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) Login(username, pass string) (*LoginResponse, error) {
	// Unknown username and wrong password collapse to the same error so the
	// response never signals which usernames exist.
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !password.Verify(pass, user.Salt, user.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := jwt.GenerateToken(s.jwtSecret, user.Username, string(user.Role))
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &LoginResponse{
		Token: token,
		User:  user.ToResponse(),
	}, nil
}

// CreateAdmin is a one-time bootstrap: it fails once any admin-role user
// exists, regardless of username.
func (s *authService) CreateAdmin(username, pass string) (*model.User, error) {
	count, err := s.userRepo.CountByRole(model.RoleAdmin)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrAdminExists
	}

	existing, err := s.userRepo.FindByUsername(username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	digest, salt, err := newCredential(pass)
	if err != nil {
		return nil, err
	}

	admin := &model.User{
		Username: username,
		Password: digest,
		Salt:     salt,
		Role:     model.RoleAdmin,
	}
	if err := s.userRepo.Create(admin); err != nil {
		return nil, err
	}
	return admin, nil
}

func (s *authService) ChangePassword(username, newPassword string) error {
	if len(newPassword) < 4 {
		return ErrPasswordTooShort
	}

	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	digest, salt, err := newCredential(newPassword)
	if err != nil {
		return err
	}
	return s.userRepo.UpdateCredential(user.ID, digest, salt)
}

func (s *authService) ListUsernames() ([]string, error) {
	return s.userRepo.ListUsernames()
}
