package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/hasan13222/house-hunter-server/internal/models"
	"github.com/hasan13222/house-hunter-server/internal/repository"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailInUse         = errors.New("email already in use")
	ErrEmailNotRegistered = errors.New("email not registered")
	ErrWrongPassword      = errors.New("wrong password")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidToken       = errors.New("invalid token")
)

// SignupRequest carries the candidate record for a new account. Profile
// holds whatever extra fields the client submitted; they are persisted
// untouched.
type SignupRequest struct {
	Email    string
	Password string
	Profile  map[string]interface{}
}

// LoginResult is the outcome of a successful credential check.
type LoginResult struct {
	User  *models.User
	Token string
}

// AuthService orchestrates signup, login, logout, and session checks.
type AuthService interface {
	Signup(ctx context.Context, req *SignupRequest) (*models.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Logout(ctx context.Context, token string) error
	ValidateSession(ctx context.Context, token string) (*Claims, error)
	CheckSession(ctx context.Context, email string) (*models.User, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService JWTService
	redis      *redis.Client
	bcryptCost int
}

// NewAuthService creates a new AuthService instance. redisClient may be nil,
// in which case logout revocation is disabled and tokens stay valid until
// their natural expiry.
func NewAuthService(userRepo repository.UserRepository, jwtService JWTService, redisClient *redis.Client, bcryptCost int) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		redis:      redisClient,
		bcryptCost: bcryptCost,
	}
}

func (s *authService) Signup(ctx context.Context, req *SignupRequest) (*models.User, error) {
	_, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err == nil {
		return nil, ErrEmailInUse
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("lookup email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Profile:      req.Profile,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEmailNotRegistered
		}
		return nil, fmt.Errorf("lookup email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrWrongPassword
	}

	token, err := s.jwtService.GenerateSessionToken(user.Email)
	if err != nil {
		return nil, fmt.Errorf("generate session token: %w", err)
	}

	return &LoginResult{User: user, Token: token}, nil
}

// Logout denylists a still-valid token for its remaining lifetime when Redis
// is configured. Without Redis the token simply ages out; clearing the cookie
// is the caller's job either way.
func (s *authService) Logout(ctx context.Context, token string) error {
	if s.redis == nil || token == "" {
		return nil
	}

	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		// Already invalid or expired; nothing to revoke.
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}

	if err := s.redis.Set(ctx, denylistKey(token), "1", ttl).Err(); err != nil {
		return fmt.Errorf("denylist token: %w", err)
	}
	return nil
}

// ValidateSession verifies a token's signature and expiry, and rejects
// tokens revoked by a prior logout.
func (s *authService) ValidateSession(ctx context.Context, token string) (*Claims, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if s.redis != nil {
		revoked, err := s.redis.Exists(ctx, denylistKey(token)).Result()
		if err != nil {
			return nil, fmt.Errorf("check denylist: %w", err)
		}
		if revoked > 0 {
			return nil, ErrInvalidToken
		}
	}

	return claims, nil
}

func (s *authService) CheckSession(ctx context.Context, email string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("lookup email: %w", err)
	}
	return user, nil
}

func denylistKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "denylist:" + hex.EncodeToString(sum[:])
}
