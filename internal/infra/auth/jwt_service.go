package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"guardian/config"
	"guardian/internal/domain/service"
)

const parentMode = "parent"

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret string // Secret key for signing parent session tokens.
	issuer string // Service name placed in the iss claim.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.ParentSession == "" {
		return nil, errors.New("parent session secret must be provided")
	}

	return &jwtService{
		secret: cfg.SecretKey.ParentSession,
		issuer: cfg.Env.ServiceName,
	}, nil
}

// GenerateParentToken creates a parent mode token that expires together with the session.
func (s *jwtService) GenerateParentToken(expiresAt time.Time) (string, error) {
	claims := service.ParentClaims{
		Mode: parentMode,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// ValidateToken checks the validity of a token string against the secret.
func (s *jwtService) ValidateToken(tokenString string) (*service.ParentClaims, error) {
	claims := &service.ParentClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.Mode != parentMode {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}
