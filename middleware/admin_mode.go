package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quicklink/store"
)

// AdminModeMiddleware rejects admin endpoints while the admin surface is
// switched off. It mirrors the app's admin toggle; it is not authentication.
func AdminModeMiddleware(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !st.AdminMode() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin mode is disabled"})
			return
		}
		c.Next()
	}
}
