package common

import (
	"errors"
	"time"

	"agilefinance/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims represents the data stored in a JWT token
type Claims struct {
	UserID    uint64  `json:"user_id"`
	Email     string  `json:"email"`
	LicenseID *uint64 `json:"license_id,omitempty"`
	jwt.RegisteredClaims
}

type JWTManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewJWTManager falls back to a random per-process secret when none is
// configured, so tokens do not survive a restart.
func NewJWTManager(cfg config.JWTConfig) *JWTManager {
	secret := cfg.Secret
	if secret == "" {
		secret = uuid.NewString()
	}
	ttl := time.Duration(cfg.ExpirationHrs) * time.Hour
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTManager{secret: []byte(secret), issuer: cfg.Issuer, ttl: ttl}
}

func (m *JWTManager) GenerateToken(userID uint64, email string, licenseID *uint64) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:    userID,
		Email:     email,
		LicenseID: licenseID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    m.issuer,
			Subject:   "user-auth",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *JWTManager) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}
