package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	autherrors "github.com/lFelipelalves/Crm-Wsc-Clean/internal/auth/errors"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/middleware"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/apperror"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/contextutil"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
	MinPasswordLen  = 6

	tokenAccess  = "access"
	tokenRefresh = "refresh"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, email, password string) (TokenPair, AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (TokenPair, AuthResponse, error)
	Me(ctx context.Context, authID string) (AuthResponse, error)
	CreateIdentity(ctx context.Context, email, password string) (string, error)
}

type service struct {
	repo     Repository
	profiles middleware.ActorLookup
	secret   []byte
	validate *validator.Validate
	logger   *zap.Logger
}

func NewService(repo Repository, profiles middleware.ActorLookup, secret string, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		repo:     repo,
		profiles: profiles,
		secret:   []byte(secret),
		validate: validator.New(),
		logger:   l,
	}
}

func (s *service) Login(ctx context.Context, email, password string) (TokenPair, AuthResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	identity, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidCredentials
		}
		return TokenPair{}, AuthResponse{}, apperror.WithCause(apperror.ErrUpstream, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(password)); err != nil {
		log.Info("login rejected", zap.String("auth_id", identity.ID.String()))
		return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	actor, err := s.activeProfile(ctx, identity.ID.String())
	if err != nil {
		return TokenPair{}, AuthResponse{}, err
	}

	pair, err := s.issuePair(actor)
	if err != nil {
		return TokenPair{}, AuthResponse{}, err
	}

	log.Info("login", zap.String("auth_id", actor.AuthID), zap.String("role", actor.Role))
	return pair, toResponse(actor), nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (TokenPair, AuthResponse, error) {
	claims, err := s.parse(refreshToken)
	if err != nil || claims["typ"] != tokenRefresh {
		return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	authID, _ := claims["user_id"].(string)
	if _, err := uuid.Parse(authID); err != nil {
		return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidToken
	}

	actor, err := s.activeProfile(ctx, authID)
	if err != nil {
		return TokenPair{}, AuthResponse{}, err
	}

	pair, err := s.issuePair(actor)
	if err != nil {
		return TokenPair{}, AuthResponse{}, err
	}
	return pair, toResponse(actor), nil
}

func (s *service) Me(ctx context.Context, authID string) (AuthResponse, error) {
	actor, err := s.activeProfile(ctx, authID)
	if err != nil {
		return AuthResponse{}, err
	}
	return toResponse(actor), nil
}

func (s *service) CreateIdentity(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := s.validate.Var(email, "required,email"); err != nil {
		return "", autherrors.ErrInvalidEmail
	}
	if len(password) < MinPasswordLen {
		return "", autherrors.ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", apperror.WithCause(apperror.ErrInternal, err)
	}

	identity := &Identity{ID: uuid.New(), Email: email, PasswordHash: string(hash)}
	if err := s.repo.Create(ctx, identity); err != nil {
		return "", err
	}

	contextutil.GetLogger(ctx, s.logger).Info("identity created", zap.String("auth_id", identity.ID.String()))
	return identity.ID.String(), nil
}

// activeProfile resolves the profile behind an identity. A missing profile
// reads as bad credentials so callers cannot probe which emails exist.
func (s *service) activeProfile(ctx context.Context, authID string) (contextutil.Actor, error) {
	actor, err := s.profiles.ResolveActor(ctx, authID)
	if err != nil {
		if apperror.ToHTTP(err).Status == http.StatusNotFound || errors.Is(err, gorm.ErrRecordNotFound) {
			return contextutil.Actor{}, autherrors.ErrInvalidCredentials
		}
		return contextutil.Actor{}, err
	}
	if !actor.Active {
		return contextutil.Actor{}, autherrors.ErrInactiveProfile
	}
	return actor, nil
}

func (s *service) issuePair(actor contextutil.Actor) (TokenPair, error) {
	access, err := s.generateToken(actor.AuthID, actor.Role, tokenAccess, AccessTokenTTL)
	if err != nil {
		return TokenPair{}, autherrors.ErrTokenGenerationFailed
	}
	refresh, err := s.generateToken(actor.AuthID, actor.Role, tokenRefresh, RefreshTokenTTL)
	if err != nil {
		return TokenPair{}, autherrors.ErrTokenGenerationFailed
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *service) generateToken(authID, role, kind string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": authID,
		"role":    role,
		"typ":     kind,
		"iat":     now.Unix(),
		"exp":     now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *service) parse(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, autherrors.ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, autherrors.ErrInvalidToken
	}
	return claims, nil
}

func toResponse(a contextutil.Actor) AuthResponse {
	return AuthResponse{
		AuthID: a.AuthID,
		UserID: a.UserID,
		Email:  a.Email,
		Name:   a.Name,
		Role:   a.Role,
	}
}
