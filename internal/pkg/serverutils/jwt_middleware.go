package serverutils

import (
	"errors"
	"strings"
	"time"

	"character-chat-be/internal/entity"
	"character-chat-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// UserIdKey is the fiber.Ctx locals key holding the authenticated user id.
const UserIdKey = "user_id"

var errMissingToken = errors.New("missing bearer token")

type Claims struct {
	UserId string `json:"user_id"`
	jwt.RegisteredClaims
}

// GenerateToken signs an HS256 access token for userId.
func GenerateToken(secret string, userId string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserId: userId,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userId,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func parseBearer(ctx *fiber.Ctx, secret string) (string, error) {
	authHeader := ctx.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", errMissingToken
	}
	tokenStr := strings.TrimSpace(authHeader[len("Bearer "):])
	if tokenStr == "" {
		return "", errMissingToken
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", apperror.ErrUnauthenticated
	}
	if claims.UserId == "" {
		return "", apperror.ErrUnauthenticated
	}
	return claims.UserId, nil
}

// JwtMiddleware rejects requests without a valid bearer token.
func JwtMiddleware(secret string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		userId, err := parseBearer(ctx, secret)
		if err != nil {
			return apperror.ErrUnauthenticated
		}
		ctx.Locals(UserIdKey, userId)
		return ctx.Next()
	}
}

// OptionalJwtMiddleware lets anonymous requests through. A token that is present but
// invalid is still rejected.
func OptionalJwtMiddleware(secret string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		userId, err := parseBearer(ctx, secret)
		if errors.Is(err, errMissingToken) {
			return ctx.Next()
		}
		if err != nil {
			return apperror.ErrUnauthenticated
		}
		ctx.Locals(UserIdKey, userId)
		return ctx.Next()
	}
}

// IdentityFromCtx returns the caller set by one of the JWT middlewares, or nil.
func IdentityFromCtx(ctx *fiber.Ctx) *entity.Identity {
	userId, _ := ctx.Locals(UserIdKey).(string)
	return entity.NewIdentity(userId)
}
