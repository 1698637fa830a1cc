package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voyago/pkg/middleware"
	"voyago/pkg/utils"
)

// callerOrAbort reads the authenticated caller; it answers 401 itself when
// the route was mounted without the auth middleware.
func callerOrAbort(c *gin.Context) (utils.Identity, bool) {
	id, ok := middleware.CurrentIdentity(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		c.Abort()
		return utils.Identity{}, false
	}
	return id, true
}
