package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyago/pkg/memcache"
	"voyago/pkg/utils"
)

func init() { gin.SetMode(gin.TestMode) }

func newAuthRouter(tm *utils.TokenManager, revoked memcache.RevokedTokenStore) *gin.Engine {
	r := gin.New()
	r.Use(TraceIDMiddleware())
	auth := r.Group("/", JWTAuthMiddleware(tm, revoked))
	auth.GET("/me", func(c *gin.Context) {
		id, ok := CurrentIdentity(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		utils.RespondSuccess(c, gin.H{"id": id.UserID.String(), "role": id.Role}, "ok")
	})
	auth.GET("/admin", RequireRole("ADMIN", "MANAGER"), func(c *gin.Context) {
		utils.RespondSuccess(c, nil, "ok")
	})
	return r
}

func do(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestJWTAuthMiddleware(t *testing.T) {
	tm := utils.NewTokenManager("secret", time.Hour)
	revoked := memcache.NewRevokedTokens()
	r := newAuthRouter(tm, revoked)

	uid := uuid.New()
	userToken, err := tm.CreateToken(uid, "u@example.com", "USER")
	require.NoError(t, err)

	t.Run("missing header", func(t *testing.T) {
		rec := do(r, "/me", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		var body utils.APIResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "error", body.Status)
		assert.NotEmpty(t, body.TraceID)
	})

	t.Run("garbage token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, do(r, "/me", "abc.def.ghi").Code)
	})

	t.Run("valid token", func(t *testing.T) {
		rec := do(r, "/me", userToken)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), uid.String())
	})

	t.Run("role mismatch", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, do(r, "/admin", userToken).Code)
	})

	t.Run("manager allowed", func(t *testing.T) {
		tok, err := tm.CreateToken(uuid.New(), "m@example.com", "MANAGER")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, do(r, "/admin", tok).Code)
	})

	t.Run("revoked token", func(t *testing.T) {
		claims, err := tm.ValidateToken(userToken)
		require.NoError(t, err)
		revoked.Revoke(claims.ID, claims.ExpiresAt.Time)
		assert.Equal(t, http.StatusUnauthorized, do(r, "/me", userToken).Code)
	})
}

func TestTraceIDMiddlewareReusesInboundID(t *testing.T) {
	r := gin.New()
	r.Use(TraceIDMiddleware())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("trace_id")) })

	inbound := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TraceHeader, inbound)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, inbound, rec.Body.String())
	assert.Equal(t, inbound, rec.Header().Get(TraceHeader))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TraceHeader, "not-a-uuid")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.NotEqual(t, "not-a-uuid", rec.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware(""))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
