package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/campusmind/campusmind/internal/config"
	"github.com/campusmind/campusmind/internal/domain"
	"github.com/campusmind/campusmind/internal/repository"
)

// AuthService issues and verifies bearer tokens for counsellors and admins.
// Students stay anonymous; only staff accounts authenticate.
type AuthService struct {
	cfg            *config.Config
	counsellorRepo *repository.CounsellorRepository
}

// Claims are the token claims for a counsellor/admin session
type Claims struct {
	Name  string `json:"name"`
	Admin bool   `json:"admin"`
	jwt.RegisteredClaims
}

// NewAuthService creates a new auth service
func NewAuthService(cfg *config.Config, counsellorRepo *repository.CounsellorRepository) *AuthService {
	return &AuthService{cfg: cfg, counsellorRepo: counsellorRepo}
}

// Login checks credentials and issues a token
func (s *AuthService) Login(ctx context.Context, req *domain.LoginRequest) (*domain.LoginResponse, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	counsellor, err := s.counsellorRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if counsellor == nil || len(counsellor.PasswordHash) == 0 {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword(counsellor.PasswordHash, []byte(req.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := s.sign(counsellor)
	if err != nil {
		return nil, err
	}

	return &domain.LoginResponse{
		Token:        token,
		CounsellorID: counsellor.ID,
		Name:         counsellor.Name,
		Admin:        counsellor.Admin,
	}, nil
}

// CreateCounsellor adds a counsellor account with a hashed password (admin)
func (s *AuthService) CreateCounsellor(ctx context.Context, req *domain.CreateCounsellorRequest) (*domain.Counsellor, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	existing, err := s.counsellorRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("counsellor already exists: %s", email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	counsellor := &domain.Counsellor{
		Name:         req.Name,
		Email:        email,
		Specialties:  req.Specialties,
		Languages:    req.Languages,
		Available:    true,
		Admin:        req.Admin,
		PasswordHash: hash,
	}
	if err := s.counsellorRepo.Create(counsellor); err != nil {
		return nil, err
	}

	return counsellor, nil
}

// ListCounsellors returns all counsellor accounts, including unavailable
// ones (admin)
func (s *AuthService) ListCounsellors(ctx context.Context) ([]*domain.Counsellor, error) {
	return s.counsellorRepo.List()
}

// EnsureAdmin creates the bootstrap admin account if configured and absent
func (s *AuthService) EnsureAdmin(ctx context.Context) error {
	if s.cfg.Admin.Email == "" || s.cfg.Admin.Password == "" {
		return nil
	}
	existing, err := s.counsellorRepo.GetByEmail(s.cfg.Admin.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	_, err = s.CreateCounsellor(ctx, &domain.CreateCounsellorRequest{
		Name:     "Administrator",
		Email:    s.cfg.Admin.Email,
		Password: s.cfg.Admin.Password,
		Admin:    true,
	})
	return err
}

// Verify parses and validates a bearer token
func (s *AuthService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.Auth.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrUnauthorized
	}
	return claims, nil
}

func (s *AuthService) sign(c *domain.Counsellor) (string, error) {
	if s.cfg.Auth.JWTSecret == "" {
		return "", fmt.Errorf("auth.jwt_secret not configured")
	}
	ttl := time.Duration(s.cfg.Auth.TokenTTL) * time.Hour
	claims := &Claims{
		Name:  c.Name,
		Admin: c.Admin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   c.ID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Auth.JWTSecret))
}
