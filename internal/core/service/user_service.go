package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/lightbnb/lightbnb-api/internal/core/domain"
	"github.com/lightbnb/lightbnb-api/internal/core/ports"
)

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

// UserService implements registration, login and user lookups.
type UserService struct {
	repo      ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewUserService(repo ports.UserRepository, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *UserService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &UserService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

func (s *UserService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}
	if len(password) > maxPasswordBytes {
		return nil, fmt.Errorf("%w: password too long", domain.ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, fmt.Errorf("%w: password too long", domain.ErrInvalidInput)
		}
		return nil, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.repo.Create(ctx, &domain.User{Name: name, Email: email, Password: string(hash)})
	if err != nil {
		if !errors.Is(err, domain.ErrUserExists) {
			s.logger.Error().Err(err).Str("email", email).Msg("create user failed")
		}
		return nil, err
	}

	s.logger.Info().Int64("user_id", created.ID).Msg("user registered")
	return created, nil
}

// Login verifies the password and returns a signed token for the user.
// An unknown email and a wrong password both yield ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		s.logLookupError(err, "email", email)
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logLookupError(err, "user_id", strconv.FormatInt(id, 10))
		return nil, err
	}
	return user, nil
}

func (s *UserService) logLookupError(err error, key, value string) {
	if errors.Is(err, domain.ErrUserNotFound) {
		s.logger.Debug().Str(key, value).Msg("user not found")
		return
	}
	s.logger.Error().Err(err).Str(key, value).Msg("user lookup failed")
}

func (s *UserService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   strconv.FormatInt(user.ID, 10),
		"email": user.Email,
		"name":  user.Name,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
