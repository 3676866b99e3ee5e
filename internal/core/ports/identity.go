package ports

import "context"

// IdentityVerifier resolves a bearer token to the id of an existing user.
// It fails with domain.ErrInvalidToken when the token is malformed,
// expired, or carries a bad signature, and with domain.ErrUserNotFound
// when the token is valid but no matching account exists. It has no
// side effects.
type IdentityVerifier interface {
	Resolve(ctx context.Context, token string) (string, error)
}
