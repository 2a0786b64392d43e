package server

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nao1215/flowgate/pkg/middleware"
)

// accessLog は処理済みリクエストをSQLiteへ記録するGinミドルウェアを返す。
// 記録の失敗はログ出力のみでクライアントへの応答には影響させない。
func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		latency := time.Since(start).Milliseconds()
		_, err := s.db.Exec(
			`INSERT INTO access_log (id, request_id, method, path, status, latency_ms) VALUES (?, ?, ?, ?, ?, ?)`,
			uuid.New().String(),
			middleware.GetRequestID(c),
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			latency,
		)
		if err != nil {
			log.Printf("アクセスログの記録に失敗: %v", err)
		}
	}
}
