package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/Mayursuryawanshi23/CodeX-backend/internal/api/metrics"
	"github.com/Mayursuryawanshi23/CodeX-backend/internal/core/domain"
	"github.com/Mayursuryawanshi23/CodeX-backend/internal/core/ports"
)

// passwordHashCost matches the salt rounds the original service used.
const passwordHashCost = 12

// LoginThrottle abstracts the failed-attempt counter (Redis).
type LoginThrottle interface {
	TooManyFailures(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

// AuthService implements sign-up, login, and token-scoped account lookup.
type AuthService struct {
	users    ports.UserRepository
	issuer   *TokenIssuer
	identity ports.IdentityVerifier
	throttle LoginThrottle
	log      zerolog.Logger
}

// NewAuthService wires the auth use cases. throttle may be nil, which
// disables login throttling.
func NewAuthService(users ports.UserRepository, issuer *TokenIssuer, identity ports.IdentityVerifier, throttle LoginThrottle, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, issuer: issuer, identity: identity, throttle: throttle, log: log}
}

func (s *AuthService) SignUp(ctx context.Context, email, password, name string) (*domain.User, error) {
	if email == "" || password == "" || name == "" {
		return nil, domain.ErrMissingCredentials
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailRegistered
	} else if err != domain.ErrUserNotFound {
		return nil, err
	}

	// Hash before anything is persisted.
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		CreatedAt:    now,
		LastActiveAt: now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	metrics.SignupsTotal.Inc()
	s.log.Info().Str("user_id", created.ID).Msg("user created")
	return created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrMissingCredentials
	}

	if s.throttle != nil {
		blocked, err := s.throttle.TooManyFailures(ctx, email)
		if err != nil {
			s.log.Warn().Err(err).Msg("throttle check failed, continuing")
		} else if blocked {
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
			return "", nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		if s.throttle != nil {
			if recErr := s.throttle.RecordFailure(ctx, email); recErr != nil {
				s.log.Warn().Err(recErr).Msg("failed to record login failure")
			}
		}
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrInvalidPassword
	}

	now := time.Now().UTC()
	if err := s.users.TouchLastActive(ctx, user.ID, now); err != nil {
		return "", nil, err
	}
	user.LastActiveAt = now

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, email); err != nil {
			s.log.Warn().Err(err).Msg("failed to reset login throttle")
		}
	}

	token, err := s.issuer.Issue(user.ID)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("user_id", user.ID).Msg("user logged in")
	return token, user, nil
}

func (s *AuthService) GetUser(ctx context.Context, token string) (*domain.User, error) {
	userID, err := s.identity.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}
	return s.users.FindByID(ctx, userID)
}
