package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"restaurant/entity"
	"restaurant/repository"
	"restaurant/utils"
)

// AuthService owns server-side credentials: bcrypt hashes and signed session tokens.
type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup creates a customer account and signs the caller in.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (string, *entity.User, error) {
	u, err := s.create(ctx, name, email, password, entity.RoleCustomer)
	if err != nil {
		return "", nil, err
	}
	token, err := utils.GenerateToken(u.ID, u.Email, u.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

func (s *AuthService) create(ctx context.Context, name, email, password, role string) (*entity.User, error) {
	email = normalizeEmail(email)
	if email == "" || strings.TrimSpace(password) == "" {
		return nil, invalid("credentials", "email and password are required")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		ID:        utils.NewID(),
		Email:     email,
		Password:  string(hashed),
		Name:      strings.TrimSpace(name),
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.userRepo.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return u, nil
}

// Login checks the password and issues a JWT.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *entity.User, error) {
	u, err := s.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(u.ID, u.Email, u.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

func (s *AuthService) GetProfile(ctx context.Context, email string) (*entity.User, error) {
	return s.userRepo.FindByEmail(ctx, email)
}

// EnsureAdmin creates the admin account once; an existing email is left untouched.
func (s *AuthService) EnsureAdmin(ctx context.Context, email, password string) error {
	count, err := s.userRepo.CountByEmail(ctx, email)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Info().Str("email", normalizeEmail(email)).Msg("admin already exists")
		return nil
	}
	if _, err := s.create(ctx, "Admin", email, password, entity.RoleAdmin); err != nil {
		return err
	}
	log.Info().Str("email", normalizeEmail(email)).Msg("admin seeded")
	return nil
}
