package middleware

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	domain "github.com/BruksfildServices01/gym-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/gym-scheduler/internal/httperr"
)

const (
	ContextActorID   = "actorID"
	ContextActorRole = "actorRole"
)

// AuthMiddleware validates an HS256 bearer token whose claims carry the
// actor id in "sub" and one of member, trainer or admin in "role".
func AuthMiddleware(secret string) gin.HandlerFunc {
	key := []byte(secret)

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "authorization header is required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "expected a bearer token")
			return
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (any, error) {
			return key, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			httperr.Unauthorized(c, "invalid_token", "token is invalid or expired")
			return
		}

		actorID, ok := subject(claims)
		role, _ := claims["role"].(string)
		if !ok || !validRole(domain.Role(role)) {
			httperr.Unauthorized(c, "invalid_token_payload", "token does not identify an actor")
			return
		}

		c.Set(ContextActorID, actorID)
		c.Set(ContextActorRole, domain.Role(role))

		c.Next()
	}
}

// subject accepts "sub" both as a JSON number and as a decimal string.
func subject(claims jwt.MapClaims) (uint, bool) {
	switch v := claims["sub"].(type) {
	case float64:
		if v <= 0 || v != float64(uint(v)) {
			return 0, false
		}
		return uint(v), true
	case string:
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil || n == 0 {
			return 0, false
		}
		return uint(n), true
	}
	return 0, false
}

func validRole(r domain.Role) bool {
	return r == domain.RoleMember || r == domain.RoleTrainer || r == domain.RoleAdmin
}

// ActorFrom returns the authenticated actor. Only valid behind AuthMiddleware.
func ActorFrom(c *gin.Context) domain.Actor {
	return domain.Actor{
		ID:   c.MustGet(ContextActorID).(uint),
		Role: c.MustGet(ContextActorRole).(domain.Role),
	}
}

// RequireRole lets only the listed roles through.
func RequireRole(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get(ContextActorRole)
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		httperr.Forbidden(c, "forbidden", "this action is not available for your role")
	}
}
