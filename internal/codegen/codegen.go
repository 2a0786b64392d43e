package codegen

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/nao1215/flowgate/internal/flow"
)

// serverTemplate は生成するサーバーソースのテンプレート。
// ゲート関数はテーブル内のいずれかのルートが必要とする場合のみ出力する。
const serverTemplate = `// Code generated by flowgate. DO NOT EDIT.
package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)
{{- if .NeedAuth}}

func authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		c.Next()
	}
}
{{- end}}
{{- if .NeedAdmin}}

func adminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
			return
		}
		c.Next()
	}
}
{{- end}}
{{- if .CORS}}

func corsAll() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
{{- end}}

func main() {
	router := gin.Default()
{{- if .CORS}}
	router.Use(corsAll())
{{- end}}
{{- range .Routes}}
	router.{{.Method}}({{printf "%q" .Path}}, {{gates .}}func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": {{printf "%q" .Message}}})
	})
{{- end}}

	log.Println("Server running on port 3000")
	if err := router.Run(":3000"); err != nil {
		log.Fatal(err)
	}
}
`

// templateData はテンプレートへ渡すデータ。
type templateData struct {
	// Routes はルートの一覧（テーブル上の順序を維持）。
	Routes []flow.Route
	// NeedAuth は認証ゲート関数の出力要否。
	NeedAuth bool
	// NeedAdmin は管理者ゲート関数の出力要否。
	NeedAdmin bool
	// CORS はワイルドカードCORSミドルウェアの出力要否。
	CORS bool
}

// Generate はルートテーブルからGinサーバーのソースコードを生成しwへ書き込む。
func Generate(w io.Writer, table *flow.Table) error {
	data := templateData{
		Routes: table.Routes,
		CORS:   table.CORS,
	}
	for _, r := range table.Routes {
		if r.Auth {
			data.NeedAuth = true
		}
		if r.Admin {
			data.NeedAdmin = true
		}
	}

	tmpl, err := template.New("server").Funcs(template.FuncMap{
		"gates": gateArgs,
	}).Parse(serverTemplate)
	if err != nil {
		return fmt.Errorf("テンプレートのパースに失敗: %w", err)
	}

	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("サーバーコードの生成に失敗: %w", err)
	}
	return nil
}

// WriteFile はルートテーブルから生成したサーバーソースを指定パスへ書き出す。
func WriteFile(path string, table *flow.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("出力ファイルの作成に失敗: %w", err)
	}
	defer f.Close()

	if err := Generate(f, table); err != nil {
		return err
	}
	return nil
}

// gateArgs はルートのハンドラチェーンに前置するゲート関数呼び出しを返す。
func gateArgs(r flow.Route) string {
	var args string
	if r.Auth {
		args += "authRequired(), "
	}
	if r.Admin {
		args += "adminOnly(), "
	}
	return args
}
