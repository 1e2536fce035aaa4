// Package auth signs and verifies the session cookie tokens. The token only
// carries the session id; the session itself lives in the database.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/litoraledu/gestordoc/internal/common"
)

// Claims includes the registered claims plus the server-side session id.
type Claims struct {
	jwt.RegisteredClaims
	SessionID string
}

// GenerateToken signs an HS256 token carrying sessionID, expiring together
// with the session itself.
func GenerateToken(sessionID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		SessionID: sessionID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetSessionIDFromToken verifies tokenString and extracts the session id.
func GetSessionIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return "", err
	}

	if !token.Valid {
		return "", common.ErrorInvalidToken
	}

	return claims.SessionID, nil
}
