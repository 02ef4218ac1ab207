package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const (
	RoleAdmin   = "admin"
	RoleStaff   = "staff"
	RoleStudent = "student"
)

// JWTKey signs and verifies HS256 tokens. It is replaced from config at startup.
var JWTKey = []byte("facility-dev-secret")

type Profile struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

type Claims struct {
	Profile Profile `json:"profile"`
	Email   string  `json:"email,omitempty"`
	jwt.RegisteredClaims
}

type ctxKey int

const (
	userNameKey ctxKey = iota + 1
	userRoleKey
)

var ErrNoUserName = errors.New("username is missing in request context")

func SetAuthContext(ctx context.Context, userName, role string) context.Context {
	ctx = context.WithValue(ctx, userNameKey, userName)
	return context.WithValue(ctx, userRoleKey, role)
}

func GetUserName(ctx context.Context) (string, error) {
	name, ok := ctx.Value(userNameKey).(string)
	if !ok || name == "" {
		return "", ErrNoUserName
	}
	return name, nil
}

func GetRole(ctx context.Context) string {
	role, _ := ctx.Value(userRoleKey).(string)
	return role
}

// IsAdmin reports whether the caller carries the admin or staff role.
func IsAdmin(ctx context.Context) bool {
	switch GetRole(ctx) {
	case RoleAdmin, RoleStaff:
		return true
	}
	return false
}

// NewToken issues a signed HS256 token for username.
func NewToken(username, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Profile: Profile{Username: username, Role: role},
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Subject:   username,
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(JWTKey)
}
