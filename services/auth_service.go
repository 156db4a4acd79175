package services

import (
	"context"
	"errors"
	"fmt"
	"gin-bomtracker/constants"
	"gin-bomtracker/dto"
	"gin-bomtracker/models"
	"gin-bomtracker/repositories"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type IAuthService interface {
	Status(ctx context.Context) (*dto.AuthStatusResponse, error)
	IsAuthEnabled(ctx context.Context) (bool, error)
	Setup(ctx context.Context, input dto.SetupInput) (*dto.SetupResponse, error)
	Login(ctx context.Context, username string, password string) (*dto.LoginResponse, error)
	GetUserFromToken(ctx context.Context, tokenString string) (*models.User, error)
	Logout(ctx context.Context, tokenString string) error
	Disable(ctx context.Context) error
}

type TokenConfig struct {
	SecretKey string
	TTL       time.Duration
}

// TokenClaims are the claims carried by access tokens. Subject is the username.
type TokenClaims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type AuthService struct {
	repository      repositories.IAuthRepository
	userRepository  repositories.IUserRepository
	tokenRepository repositories.ITokenRepository
	tokenConfig     TokenConfig
}

func NewAuthService(
	repository repositories.IAuthRepository,
	userRepository repositories.IUserRepository,
	tokenRepository repositories.ITokenRepository,
	tokenConfig TokenConfig,
) IAuthService {
	return &AuthService{
		repository:      repository,
		userRepository:  userRepository,
		tokenRepository: tokenRepository,
		tokenConfig:     tokenConfig,
	}
}

func (s *AuthService) Status(ctx context.Context) (*dto.AuthStatusResponse, error) {
	enabled, err := s.IsAuthEnabled(ctx)
	if err != nil {
		return nil, err
	}
	completed, err := s.repository.GetBool(ctx, constants.SettingSetupCompleted)
	if err != nil {
		return nil, fmt.Errorf("read setup state: %w", err)
	}
	return &dto.AuthStatusResponse{
		AuthEnabled:   enabled,
		RequiresSetup: !completed,
	}, nil
}

func (s *AuthService) IsAuthEnabled(ctx context.Context) (bool, error) {
	enabled, err := s.repository.GetBool(ctx, constants.SettingAuthEnabled)
	if err != nil {
		return false, fmt.Errorf("read auth state: %w", err)
	}
	return enabled, nil
}

func (s *AuthService) Setup(ctx context.Context, input dto.SetupInput) (*dto.SetupResponse, error) {
	enabled, err := s.IsAuthEnabled(ctx)
	if err != nil {
		return nil, err
	}
	if enabled {
		return nil, ErrAuthAlreadyConfigured
	}

	if !input.AuthEnabled {
		if err := s.repository.SetBools(ctx, map[string]bool{
			constants.SettingAuthEnabled:    false,
			constants.SettingSetupCompleted: true,
		}); err != nil {
			return nil, fmt.Errorf("save setup: %w", err)
		}
		return &dto.SetupResponse{AuthEnabled: false, AdminCreated: false}, nil
	}

	username := strings.TrimSpace(input.AdminUsername)
	if username == "" || input.AdminPassword == "" {
		return nil, ErrAdminCredentialsRequired
	}
	if err := checkUsername(username); err != nil {
		return nil, err
	}

	if _, err := s.userRepository.FindByUsername(ctx, username); err == nil {
		return nil, ErrUsernameExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin := models.User{
		Username:     username,
		PasswordHash: string(hashedPassword),
		Role:         constants.RoleAdmin,
		IsActive:     true,
	}
	if err := s.repository.CreateAdminAndEnable(ctx, &admin); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameExists
		}
		return nil, fmt.Errorf("create admin: %w", err)
	}

	zap.L().Info("Authentication enabled", zap.String("admin", admin.Username))
	return &dto.SetupResponse{AuthEnabled: true, AdminCreated: true}, nil
}

func (s *AuthService) Login(ctx context.Context, username string, password string) (*dto.LoginResponse, error) {
	enabled, err := s.IsAuthEnabled(ctx)
	if err != nil {
		return nil, err
	}
	if !enabled {
		return nil, ErrAuthNotEnabled
	}

	foundUser, err := s.userRepository.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIncorrectCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(password)); err != nil {
		return nil, ErrIncorrectCredentials
	}
	if !foundUser.IsActive {
		return nil, ErrUserInactive
	}

	token, err := s.CreateToken(foundUser)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   constants.TokenTypeBearer,
		User:        foundUser,
	}, nil
}

func (s *AuthService) CreateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenConfig.TTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.tokenConfig.SecretKey))
}

func (s *AuthService) parseToken(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected method: %v", token.Header["alg"])
		}
		return []byte(s.tokenConfig.SecretKey), nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.ID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// GetUserFromToken resolves the user behind a bearer token. The role comes
// from the users table, not from the token.
func (s *AuthService) GetUserFromToken(ctx context.Context, tokenString string) (*models.User, error) {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return nil, err
	}

	revoked, err := s.tokenRepository.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("check revocation: %w", err)
	}
	if revoked {
		return nil, ErrTokenRevoked
	}

	user, err := s.userRepository.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}
	return user, nil
}

func (s *AuthService) Logout(ctx context.Context, tokenString string) error {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return err
	}

	if err := s.tokenRepository.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	if err := s.tokenRepository.CleanExpired(ctx); err != nil {
		zap.L().Warn("Failed to clean expired revoked tokens", zap.Error(err))
	}
	return nil
}

func (s *AuthService) Disable(ctx context.Context) error {
	if err := s.repository.SetBools(ctx, map[string]bool{
		constants.SettingAuthEnabled: false,
	}); err != nil {
		return fmt.Errorf("disable auth: %w", err)
	}
	zap.L().Info("Authentication disabled")
	return nil
}
