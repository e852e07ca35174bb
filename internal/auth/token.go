package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Tokens are stateless; there is no server-side session table and no
// revocation before expiry.
const tokenTTL = 72 * time.Hour

// IssueToken signs a bearer token carrying the user id and role.
func IssueToken(secret, userID, role string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
