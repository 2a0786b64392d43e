package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS は指定されたオリジンからのクロスオリジンリクエストを許可する
// Ginミドルウェアを返す。許可リストに "*" が含まれる場合は
// すべてのオリジンを許可するワイルドカードポリシーとなる。
func CORS(allowedOrigins []string) gin.HandlerFunc {
	wildcard := false
	originsSet := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		if o == "*" {
			wildcard = true
			continue
		}
		originsSet[o] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		_, allowed := originsSet[origin]

		switch {
		case wildcard:
			c.Header("Access-Control-Allow-Origin", "*")
		case allowed:
			c.Header("Access-Control-Allow-Origin", origin)
		}
		if wildcard || allowed {
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
			c.Header("Access-Control-Max-Age", "86400")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
