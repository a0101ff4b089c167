package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenService defines the interface for validating access tokens issued by
// the external auth service. Token issuance happens outside this system; we
// only verify signatures against the shared secret.
type TokenService interface {
	// ValidateToken checks the validity of a token string and returns the
	// parsed token on success.
	ValidateToken(tokenString string) (*jwt.Token, error)
}
