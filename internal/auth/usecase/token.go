package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"invoice-assistant/internal/auth"
)

func (uc *implUseCase) issueToken(u auth.User) (string, error) {
	now := uc.now()
	claims := auth.Claims{
		Username: u.Username,
		Role:     u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(uc.cfg.JWTExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        strings.ReplaceAll(uuid.NewString(), "-", ""),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(uc.cfg.SecretKey))
}

// Verify parses an HS256 token and checks the user still holds that role.
func (uc *implUseCase) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if token == "" {
		return auth.Claims{}, auth.ErrTokenMissing
	}

	var claims auth.Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return []byte(uc.cfg.SecretKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(uc.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return auth.Claims{}, auth.ErrTokenExpired
		}
		return auth.Claims{}, auth.ErrTokenInvalid
	}

	u, ok := uc.repo.GetUser(ctx, claims.Username)
	if !ok || u.Role != claims.Role {
		return auth.Claims{}, auth.ErrUserNoLongerValid
	}
	return claims, nil
}
