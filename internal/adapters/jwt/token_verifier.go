package token_adapter

import (
	"context"
	"errors"
	"fmt"

	"real-estate-agency/internal/contextkeys"
	"real-estate-agency/internal/core/domain"
	"real-estate-agency/internal/core/port"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenVerifier проверяет HS256-токены, подписанные общим секретом
type TokenVerifier struct {
	signingKey []byte
}

func NewTokenVerifier(signingKey string) (*TokenVerifier, error) {
	if signingKey == "" {
		return nil, fmt.Errorf("JWT signing key cannot be empty")
	}
	return &TokenVerifier{signingKey: []byte(signingKey)}, nil
}

// JWTClaims - формат claims сервиса аутентификации
type JWTClaims struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
	jwt.RegisteredClaims
}

func (v *TokenVerifier) Verify(ctx context.Context, tokenString string) (*domain.Claims, error) {
	verifierLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "TokenVerifier",
		"method":    "Verify",
	})

	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.signingKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			verifierLogger.Info("Token has expired", nil)
		} else {
			verifierLogger.Warn("Invalid token format or signature", port.Fields{"error": err.Error()})
		}
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid || claims.UserID == uuid.Nil {
		verifierLogger.Warn("Token claims are incomplete", nil)
		return nil, domain.ErrTokenInvalid
	}

	switch claims.Role {
	case domain.RoleClient, domain.RoleAgent, domain.RoleAdmin:
	default:
		verifierLogger.Warn("Token carries unknown role", port.Fields{"role": claims.Role})
		return nil, domain.ErrTokenInvalid
	}

	return &domain.Claims{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}
