package service

import (
	"errors"
	"log/slog"
	"time"

	"linha-viva/internal/model"
	"linha-viva/internal/repository"
	"linha-viva/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AdminRole is the only role a session can hold.
const AdminRole = "admin"

var (
	ErrInvalidCredentials = errors.New("invalid password")
	ErrSessionExpired     = errors.New("session expired")
)

type AuthService interface {
	Login(password string) (*LoginResponse, error)
	Logout() error
	ValidateToken(tokenString string) (*jwt.Claims, error)
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Role      string    `json:"role"`
}

type authService struct {
	settingRepo  repository.SettingRepository
	tokens       *jwt.Manager
	passwordHash []byte
	notifier     Notifier
	log          *slog.Logger
}

// NewAuthService hashes the shared admin password once; the plain value is
// not kept.
func NewAuthService(settingRepo repository.SettingRepository, tokens *jwt.Manager, adminPassword string, notifier Notifier, log *slog.Logger) (AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	if notifier == nil {
		notifier = nopNotifier{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &authService{
		settingRepo:  settingRepo,
		tokens:       tokens,
		passwordHash: hash,
		notifier:     notifier,
		log:          log,
	}, nil
}

func (s *authService) Login(password string) (*LoginResponse, error) {
	// 1. Verify password
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		s.log.Warn("admin login rejected")
		return nil, ErrInvalidCredentials
	}

	// 2. Bind the token to the current session version
	version, err := s.sessionVersion()
	if err != nil {
		return nil, err
	}

	// 3. Generate JWT token
	token, expiresAt, err := s.tokens.GenerateToken(AdminRole, version)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	s.log.Info("admin login")
	return &LoginResponse{Token: token, ExpiresAt: expiresAt, Role: AdminRole}, nil
}

// Logout rotates the session version, which invalidates every issued token.
func (s *authService) Logout() error {
	if err := s.settingRepo.Set(model.SettingSessionVersion, uuid.New().String()); err != nil {
		return err
	}
	s.log.Info("admin sessions revoked")
	s.notifier.Publish("auth", "logout", nil, "sessões administrativas encerradas")
	return nil
}

func (s *authService) ValidateToken(tokenString string) (*jwt.Claims, error) {
	// 1. Validate JWT token
	claims, err := s.tokens.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	// 2. Check against DB for the session version
	version, err := s.sessionVersion()
	if err != nil {
		return nil, err
	}
	if claims.SessionVersion != version || claims.Role != AdminRole {
		return nil, ErrSessionExpired
	}
	return claims, nil
}

func (s *authService) sessionVersion() (string, error) {
	v, ok, err := s.settingRepo.Get(model.SettingSessionVersion)
	if err != nil {
		return "", err
	}
	if ok && v != "" {
		return v, nil
	}
	v = uuid.New().String()
	if err := s.settingRepo.Set(model.SettingSessionVersion, v); err != nil {
		return "", err
	}
	return v, nil
}
