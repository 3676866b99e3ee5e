package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Mayursuryawanshi23/CodeX-backend/internal/core/domain"
	"github.com/Mayursuryawanshi23/CodeX-backend/internal/core/ports"
)

const claimUserID = "user_id"

const defaultTokenTTL = 7 * 24 * time.Hour

// TokenConfig is passed explicitly to the issuer and verifier at
// construction; neither reads ambient process state.
type TokenConfig struct {
	Secret string
	TTL    time.Duration
}

// TokenIssuer signs HS256 tokens carrying the user id claim.
type TokenIssuer struct {
	cfg TokenConfig
}

func NewTokenIssuer(cfg TokenConfig) *TokenIssuer {
	if cfg.TTL <= 0 {
		cfg.TTL = defaultTokenTTL
	}
	return &TokenIssuer{cfg: cfg}
}

func (i *TokenIssuer) Issue(userID string) (string, error) {
	claims := jwt.MapClaims{
		claimUserID: userID,
		"exp":       time.Now().Add(i.cfg.TTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(i.cfg.Secret))
}

// IdentityVerifier validates a bearer token and confirms the claimed
// account exists. Every project operation calls Resolve before touching
// any state.
type IdentityVerifier struct {
	users ports.UserRepository
	cfg   TokenConfig
}

func NewIdentityVerifier(users ports.UserRepository, cfg TokenConfig) *IdentityVerifier {
	return &IdentityVerifier{users: users, cfg: cfg}
}

// Resolve parses and validates the token, then checks the claimed user
// still exists. No side effects.
func (v *IdentityVerifier) Resolve(ctx context.Context, token string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(v.cfg.Secret), nil
	})
	if err != nil || !tkn.Valid {
		return "", domain.ErrInvalidToken
	}

	userID, _ := claims[claimUserID].(string)
	if userID == "" {
		return "", domain.ErrInvalidToken
	}

	user, err := v.users.FindByID(ctx, userID)
	if err != nil {
		return "", err
	}
	return user.ID, nil
}
