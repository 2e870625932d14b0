package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupCORS builds the cross-origin policy for every path under prefix. It is
// meant to be installed on the engine rather than on a route group so that
// preflight requests reach it even though no OPTIONS routes are registered.
func SetupCORS(allowedOrigins []string, prefix string) gin.HandlerFunc {
	handler := cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowHeaders:     []string{"*"},
		ExposeHeaders:    []string{"Content-Length", RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	})

	return func(ctx *gin.Context) {
		if !underPrefix(ctx.Request.URL.Path, prefix) {
			ctx.Next()
			return
		}
		handler(ctx)
	}
}

func underPrefix(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, strings.TrimSuffix(prefix, "/")+"/")
}
