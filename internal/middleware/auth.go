package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ContextVoterID is the gin context key private handlers read the
// resolved voter identity from.
const ContextVoterID = "voterID"

var ErrInvalidToken = errors.New("invalid token")

// Identity resolves an opaque bearer token to a stable voter id. The
// identity provider itself lives outside this service.
type Identity interface {
	Resolve(token string) (int64, error)
}

// JWTIdentity validates HS256 tokens issued by the identity provider and
// extracts the voter id from the uid claim.
type JWTIdentity struct {
	secret []byte
}

func NewJWTIdentity(secret string) *JWTIdentity {
	return &JWTIdentity{secret: []byte(secret)}
}

func (j *JWTIdentity) Resolve(token string) (int64, error) {
	const op = "middleware.JWTIdentity.Resolve"

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return j.secret, nil
	})
	if err != nil || !parsed.Valid {
		return 0, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return 0, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	uid, ok := claims["uid"].(float64)
	if !ok || uid <= 0 {
		return 0, fmt.Errorf("%s: missing uid claim: %w", op, ErrInvalidToken)
	}

	return int64(uid), nil
}

type AuthMiddleware struct {
	identity Identity
}

func NewAuthMiddleware(identity Identity) *AuthMiddleware {
	return &AuthMiddleware{identity: identity}
}

// Middleware rejects requests without a resolvable voter identity before
// any handler runs; mutating routes are registered behind it.
func (m *AuthMiddleware) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		accessToken := extractTokenFromHeader(c.GetHeader("Authorization"))
		if accessToken == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing access token"})
			return
		}

		voterID, err := m.identity.Resolve(accessToken)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Set(ContextVoterID, voterID)
		c.Next()
	}
}

func extractTokenFromHeader(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
