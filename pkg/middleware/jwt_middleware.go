package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"voyago/pkg/memcache"
	"voyago/pkg/utils"
)

const (
	ctxUserID    = "user_id"
	ctxRole      = "Role"
	ctxEmail     = "email"
	ctxTokenID   = "token_id"
	ctxTokenExp  = "token_exp"
	bearerPrefix = "Bearer "
)

func JWTAuthMiddleware(tokens *utils.TokenManager, revoked memcache.RevokedTokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, bearerPrefix) {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, bearerPrefix)
		claims, err := tokens.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}
		if revoked != nil && revoked.IsRevoked(claims.ID) {
			utils.RespondError(c, http.StatusUnauthorized, "Token is logged out")
			c.Abort()
			return
		}
		if _, err := uuid.Parse(claims.UserID); err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxRole, claims.Role)
		c.Set(ctxEmail, claims.Email)
		c.Set(ctxTokenID, claims.ID)
		if claims.ExpiresAt != nil {
			c.Set(ctxTokenExp, claims.ExpiresAt.Time)
		}
		c.Next()
	}
}

// RequireRole lets the request through when the caller holds any of roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		if _, ok := allowed[c.GetString(ctxRole)]; !ok {
			utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentIdentity returns the caller set by JWTAuthMiddleware.
func CurrentIdentity(c *gin.Context) (utils.Identity, bool) {
	id, err := uuid.Parse(c.GetString(ctxUserID))
	if err != nil {
		return utils.Identity{}, false
	}
	return utils.Identity{
		UserID: id,
		Email:  c.GetString(ctxEmail),
		Role:   c.GetString(ctxRole),
	}, true
}

// CurrentToken returns the jti and expiry of the presented token.
func CurrentToken(c *gin.Context) (string, time.Time) {
	return c.GetString(ctxTokenID), c.GetTime(ctxTokenExp)
}
