// Package auth signs and verifies the HS256 access tokens that carry a
// caller's identity.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/keysafe-protocol/keysafe/internal/common"
)

// Claims holds the registered claims plus the caller identity.
type Claims struct {
	jwt.RegisteredClaims
	Identity string `json:"identity"`
}

// GenerateToken signs a token for identity valid for validityDuration.
func GenerateToken(identity string, secretKey []byte, validityDuration time.Duration) (string, error) {
	jti, err := common.MakeRandHexString(16)
	if err != nil {
		return "", err
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
			Issuer:    common.ServiceName,
		},
		Identity: identity,
	})

	return token.SignedString(secretKey)
}

// IdentityFromToken verifies tokenString and returns its identity claim.
// Expired tokens yield common.ErrTokenExpired; any other defect yields
// common.ErrInvalidToken.
func IdentityFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid || claims.Identity == "" {
		return "", common.ErrInvalidToken
	}

	return claims.Identity, nil
}
