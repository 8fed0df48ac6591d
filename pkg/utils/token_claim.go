package utils

import (
	"errors"
	"os"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

var ValidRoles = []string{RoleUser, RoleAdmin}

func parseBearerToken(authHeader string) (jwt.MapClaims, error) {
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, errors.New("missing or invalid Authorization header")
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT secret not set")
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) { return []byte(secret), nil })
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// ExtractUserIDFromHeader parses the Authorization header (Bearer <token>) and
// returns the user_id UUID from the JWT claims.
func ExtractUserIDFromHeader(authHeader string) (uuid.UUID, error) {
	claims, err := parseBearerToken(authHeader)
	if err != nil {
		return uuid.Nil, err
	}

	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return uuid.Nil, errors.New("invalid token payload")
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, errors.New("invalid user id in token")
	}
	return userID, nil
}

// ExtractUserAndRoleFromHeader parses the bearer token once and returns both
// the user_id and user_role claims.
func ExtractUserAndRoleFromHeader(authHeader string) (uuid.UUID, string, error) {
	claims, err := parseBearerToken(authHeader)
	if err != nil {
		return uuid.Nil, "", err
	}

	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return uuid.Nil, "", errors.New("invalid token payload")
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, "", errors.New("invalid user id in token")
	}

	role, ok := claims["user_role"].(string)
	if !ok {
		return uuid.Nil, "", errors.New("invalid token payload")
	}
	return userID, role, nil
}
