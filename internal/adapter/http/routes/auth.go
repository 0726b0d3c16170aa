package routes

import (
	"crypto/subtle"
	"net/http"
	"os"
	"strings"

	"machine_shop_suite/pkg"

	"github.com/gin-gonic/gin"
)

// requireAdmin guards the elevated endpoints with a bearer token compared
// against ADMIN_TOKEN. An unset token denies everything rather than opening
// the endpoints up.
func requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		expected := os.Getenv("ADMIN_TOKEN")
		provided := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")

		if expected == "" || subtle.ConstantTimeCompare([]byte(expected), []byte(provided)) != 1 {
			appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Unauthorized", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Next()
	}
}
