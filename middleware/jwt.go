package middleware

import (
	"net/http"
	"strings"

	"github.com/docusage/docusage-be/types"
	"github.com/docusage/docusage-be/utils"
	"github.com/gin-gonic/gin"
)

const AdminContextKey = "admin"

// AdminAuthMiddleware guards write routes behind a Bearer token issued by the
// login handler.
func AdminAuthMiddleware(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, types.DataResponse{
			Status:  "error",
			Message: "Authorization header is required",
		})
		return
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, types.DataResponse{
			Status:  "error",
			Message: "Authorization header format must be Bearer {token}",
		})
		return
	}

	claims, err := utils.ParseAdminToken(parts[1])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, types.DataResponse{
			Status:  "error",
			Message: "Invalid admin token",
		})
		return
	}
	if claims.Role != "admin" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, types.DataResponse{
			Status:  "error",
			Message: "Admin role required",
		})
		return
	}

	c.Set(AdminContextKey, claims)
	c.Next()
}
