package secure

import (
	"errors"
	"os"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	signingKey     []byte
	signingKeyOnce sync.Once
	signingKeyErr  error
)

const signingKeyEnv = "JWT_SECRET"

// TokenTTL is how long an issued admin token stays valid.
const TokenTTL = 24 * time.Hour

// Claims carried inside an admin session token.
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	jwt.RegisteredClaims
}

// getSigningKey lazily loads and validates the JWT secret from environment variables.
func getSigningKey() ([]byte, error) {
	signingKeyOnce.Do(func() {
		keyStr := os.Getenv(signingKeyEnv)
		if keyStr == "" {
			signingKeyErr = errors.New("JWT_SECRET is not set")
			return
		}
		if len(keyStr) < 32 {
			signingKeyErr = errors.New("JWT_SECRET must be at least 32 bytes long")
			return
		}
		signingKey = []byte(keyStr)
	})

	return signingKey, signingKeyErr
}

// GenerateToken issues a signed HS256 token for an authenticated admin user.
func GenerateToken(userID uuid.UUID, email string) (string, error) {
	key, err := getSigningKey()
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
}

// ParseToken validates a token string and returns its claims.
func ParseToken(tokenStr string) (*Claims, error) {
	key, err := getSigningKey()
	if err != nil {
		return nil, err
	}

	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return key, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
