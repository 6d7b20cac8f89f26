package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"job-board-api/internal/auth"
	"job-board-api/internal/metrics"
	"job-board-api/internal/models"
	"job-board-api/internal/storage"
	"job-board-api/internal/transport/dto"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type authService struct {
	userRepo    storage.UserRepository
	profileRepo storage.ProfileRepository
	tokens      *auth.TokenManager
	denylist    storage.TokenDenylist
	bcryptCost  int
	log         *zap.Logger
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(
	userRepo storage.UserRepository,
	profileRepo storage.ProfileRepository,
	tokens *auth.TokenManager,
	denylist storage.TokenDenylist,
	log *zap.Logger,
) AuthService {
	return &authService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		tokens:      tokens,
		denylist:    denylist,
		bcryptCost:  bcrypt.DefaultCost,
		log:         log.Named("auth_service"),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*AuthResult, error) {
	role := models.Role(req.Role)
	if !role.IsValid() {
		return nil, invalidField("role", "role must be job_seeker or employer")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.CreateWithProfile(ctx,
		&models.User{
			Email:        normalizeEmail(req.Email),
			PasswordHash: string(hashedPassword),
			Role:         role,
		},
		&models.ProfileBase{FirstName: req.FirstName, LastName: req.LastName},
	)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) || errors.Is(err, storage.ErrConflict) {
			return nil, ErrEmailTaken
		}
		s.log.Error("Register: repository error", zap.Error(err))
		return nil, mapRepoError(err, "registering user")
	}

	token, _, err := s.tokens.Generate(user)
	if err != nil {
		return nil, err
	}

	metrics.ObserveRegistration(string(role))
	s.log.Info("Register: user created", zap.Int64("user_id", user.ID), zap.String("role", string(role)))
	return &AuthResult{User: user, Token: token}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*AuthResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			metrics.ObserveLogin("failure")
			return nil, ErrInvalidCredentials
		}
		return nil, mapRepoError(err, "fetching user for login")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		metrics.ObserveLogin("failure")
		return nil, ErrInvalidCredentials
	}

	token, _, err := s.tokens.Generate(user)
	if err != nil {
		return nil, err
	}
	metrics.ObserveLogin("success")
	return &AuthResult{User: user, Token: token}, nil
}

// CurrentUser returns the caller and its profile; the profile is nil when
// none has been created yet.
func (s *authService) CurrentUser(ctx context.Context, actor models.Actor) (*models.User, *models.Profile, error) {
	user, err := s.userRepo.GetByID(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: user no longer exists", ErrUnauthenticated)
		}
		return nil, nil, mapRepoError(err, "fetching current user")
	}

	profile, err := s.profileRepo.GetByUserID(ctx, actor.ID)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			return nil, nil, mapRepoError(err, "fetching current user profile")
		}
		profile = nil
	}
	return user, profile, nil
}

// Logout revokes the presented token for the rest of its lifetime.
func (s *authService) Logout(ctx context.Context, claims *auth.Claims) error {
	if claims == nil || claims.RegisteredClaims.ID == "" {
		return ErrUnauthenticated
	}
	if err := s.denylist.Revoke(ctx, claims.RegisteredClaims.ID, s.tokens.Remaining(claims)); err != nil {
		if errors.Is(err, storage.ErrRevocationUnavailable) {
			return ErrLogoutUnavailable
		}
		s.log.Error("Logout: revoke failed", zap.Int64("user_id", claims.ID), zap.Error(err))
		return fmt.Errorf("internal error revoking token: %w", err)
	}
	return nil
}
