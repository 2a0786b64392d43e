package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// adminCredential は管理者ゲートが要求するauthorizationヘッダーの値。
// トークン検証ではなく文字列の完全一致で判定する。
const adminCredential = "admin"

// AuthRequired はauthorizationヘッダーの存在を検証するGinミドルウェアを返す。
// ヘッダーが欠落または空の場合は401を返してリクエストを中断する。
// ヘッダー値の内容は一切解釈しない。
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Unauthorized",
			})
			return
		}
		c.Next()
	}
}

// AdminOnly はauthorizationヘッダーの値が管理者資格情報と完全一致するか
// 検証するGinミドルウェアを返す。一致しない場合（ヘッダー欠落を含む）は
// 403を返してリクエストを中断する。
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") != adminCredential {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"message": "Forbidden",
			})
			return
		}
		c.Next()
	}
}
