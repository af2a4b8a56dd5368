package services

import (
	"context"
	"errors"
	"strings"

	"hotelbooking/constants"
	"hotelbooking/dto"
	apperrors "hotelbooking/errors"
	"hotelbooking/models"
	"hotelbooking/repository"
	"hotelbooking/services/logger"
	"hotelbooking/validator"

	"golang.org/x/crypto/bcrypt"
)

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
}

type AuthService struct {
	users      UserStore
	tokens     *TokenService
	bcryptCost int
	logger     logger.Logger
}

type AuthServiceOptions struct {
	Users      UserStore
	Tokens     *TokenService
	BcryptCost int
	Logger     logger.Logger
}

func NewAuthService(opts AuthServiceOptions) *AuthService {
	cost := opts.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &AuthService{users: opts.Users, tokens: opts.Tokens, bcryptCost: cost, logger: opts.Logger}
}

func HashPassword(password string, cost int) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

func (s *AuthService) Register(ctx context.Context, input dto.RegisterInput) (*models.User, error) {
	if err := validator.ValidateRegister(&input); err != nil {
		return nil, err
	}

	if _, err := s.users.GetByEmail(ctx, input.Email); err == nil {
		return nil, apperrors.Conflict("email is already registered")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.Upstream("could not check email", err)
	}

	hashed, err := HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.Upstream("could not hash password", err)
	}

	user := &models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashed,
		Role:     constants.RoleUser,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperrors.Upstream("could not create user", err)
	}
	s.logger.Info("user registered", "user_id", user.ID)
	return user, nil
}

// Login answers bad email and bad password with the same error.
func (s *AuthService) Login(ctx context.Context, input dto.LoginInput) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" {
		return nil, apperrors.InvalidInput("email and password are required")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.Unauthenticated("invalid email or password")
	}
	if err != nil {
		return nil, apperrors.Upstream("could not load user", err)
	}
	if user.Password == "" || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)) != nil {
		return nil, apperrors.Unauthenticated("invalid email or password")
	}

	token, exp, err := s.tokens.GenerateToken(UserInfo{UserId: user.ID, Role: user.Role})
	if err != nil {
		return nil, apperrors.Upstream("could not issue token", err)
	}

	return &dto.LoginResponse{
		UserInfo: dto.UserLoginResponse{
			UserID:    user.ID,
			UserName:  user.Name,
			UserEmail: user.Email,
			UserRole:  user.Role,
			UserImage: user.Image,
			CreatedAt: user.CreatedAt,
		},
		AccessToken: token,
		ExpiresAt:   exp,
	}, nil
}
