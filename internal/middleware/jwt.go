package middleware

import (
	"crypto/rsa"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Role claim values. Every token carries exactly one.
const (
	RoleLandlord        = "landlord"
	RolePropertyManager = "property_manager"
	RoleTenant          = "tenant"
)

var ErrUnexpectedSigningMethod = errors.New("unexpected signing method")

// ValidateToken parses and verifies an RS256 access token.
func ValidateToken(tokenStr string, pub *rsa.PublicKey) (*jwt.Token, error) {
	return jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, ErrUnexpectedSigningMethod
		}
		return pub, nil
	})
}

// GenerateAccessToken mints an RS256 token with the subject and role
// claims the middleware expects. Used by the auth peer service and by
// tests.
func GenerateAccessToken(priv *rsa.PrivateKey, userID uuid.UUID, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  userID.String(),
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(priv)
}
