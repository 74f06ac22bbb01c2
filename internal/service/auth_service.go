package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/blogfolio-api/internal/config"
	"github.com/blogfolio-api/internal/models"
	"github.com/blogfolio-api/internal/repository"
	"github.com/blogfolio-api/internal/validation"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// Claims is the access token payload. Subject carries the user ID.
type Claims struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// authService is the concrete implementation of AuthService
type authService struct {
	users        repository.UserRepository
	cfg          config.AuthConfig
	validate     *validation.Validator
	queryTimeout time.Duration
	log          zerolog.Logger
}

func newAuthService(users repository.UserRepository, cfg config.AuthConfig, validate *validation.Validator, queryTimeout time.Duration, log zerolog.Logger) AuthService {
	return &authService{
		users:        users,
		cfg:          cfg,
		validate:     validate,
		queryTimeout: queryTimeout,
		log:          log.With().Str("service", "auth").Logger(),
	}
}

// Signup registers a new account with a bcrypt-hashed password
func (s *authService) Signup(ctx context.Context, in *models.SignupInput) error {
	if err := validationErr(s.validate.ValidateSignup(in)); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         "user",
		CreatedAt:    time.Now(),
	}

	qctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	if err := s.users.Create(qctx, user); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return fmt.Errorf("username %s already taken: %w", in.Username, ErrConflict)
		}
		return storeErr("create user", err)
	}

	s.log.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("User registered")
	return nil
}

// Login verifies credentials and issues an access token plus a persisted
// refresh token. Bad username and bad password return the same error so the
// response does not reveal which accounts exist.
func (s *authService) Login(ctx context.Context, in *models.LoginInput) (*models.LoginResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, fmt.Errorf("username and password are required: %w", ErrInvalidArgument)
	}

	qctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	user, err := s.users.GetByUsername(qctx, in.Username)
	if err != nil {
		return nil, storeErr("get user", err)
	}
	if user == nil {
		return nil, fmt.Errorf("invalid credentials: %w", ErrInvalidArgument)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, fmt.Errorf("invalid credentials: %w", ErrInvalidArgument)
	}

	access, err := s.signToken(user, s.cfg.AccessSecret, s.cfg.AccessTTL)
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	// Refresh tokens have no expiry claim; revocation happens by deleting
	// the stored row
	refresh, err := s.signToken(user, s.cfg.RefreshSecret, 0)
	if err != nil {
		return nil, fmt.Errorf("sign refresh token: %w", err)
	}
	if err := s.users.StoreRefreshToken(qctx, refresh, user.ID); err != nil {
		return nil, storeErr("store refresh token", err)
	}

	s.log.Info().Str("user_id", user.ID).Msg("User logged in")
	return &models.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		Name:         user.Name,
		Username:     user.Username,
		Role:         user.Role,
		ID:           user.ID,
	}, nil
}

// ListUsers returns all accounts without password hashes
func (s *authService) ListUsers(ctx context.Context) ([]models.User, error) {
	qctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	users, err := s.users.List(qctx)
	if err != nil {
		return nil, storeErr("list users", err)
	}
	return users, nil
}

func (s *authService) signToken(user *models.User, secret string, ttl time.Duration) (string, error) {
	claims := Claims{
		Username: user.Username,
		Name:     user.Name,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  user.ID,
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAccessToken verifies a bearer token and returns the authenticated
// user it represents
func ParseAccessToken(secret, tokenString string) (*models.AuthUser, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return &models.AuthUser{
		ID:       claims.Subject,
		Username: claims.Username,
		Name:     claims.Name,
		Role:     claims.Role,
	}, nil
}
