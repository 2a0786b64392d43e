package server

import (
	"database/sql"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	_ "modernc.org/sqlite"

	"github.com/nao1215/flowgate/internal/flow"
	"github.com/nao1215/flowgate/pkg/middleware"
)

// Server はルートテーブル駆動のHTTPサーバー。
type Server struct {
	// router はGinのHTTPルーター。
	router *gin.Engine
	// port はサーバーのリッスンポート。
	port string
	// table は起動時に構築された不変のルートテーブル。
	table *flow.Table
	// db はアクセスログ記録用のSQLiteデータベース接続。無効時はnil。
	db *sql.DB
}

// NewServer は新しいサーバーを生成する。
// テーブルのLoggingフラグが有効かつdbPathが指定されている場合のみ、
// アクセスログ用のSQLiteデータベースを開く。
func NewServer(port string, table *flow.Table, dbPath string) (*Server, error) {
	s := &Server{
		router: gin.New(),
		port:   port,
		table:  table,
	}

	if table.Logging && dbPath != "" {
		sqlDB, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
		if err != nil {
			return nil, fmt.Errorf("データベース接続に失敗: %w", err)
		}
		if err := initSchema(sqlDB); err != nil {
			sqlDB.Close()
			return nil, fmt.Errorf("スキーマ初期化に失敗: %w", err)
		}
		s.db = sqlDB
	}

	s.setupRoutes()
	return s, nil
}

// Run はHTTPサーバーを起動する。
func (s *Server) Run() error {
	return s.router.Run(fmt.Sprintf(":%s", s.port))
}

// Close はサーバーが保持するリソースを解放する。
func (s *Server) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// setupRoutes はルートテーブルの内容をGinルーターへ登録する。
// テーブルに無い(メソッド, パス)の組はGinのデフォルト挙動（404）に落ちる。
func (s *Server) setupRoutes() {
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.Recovery())
	s.router.Use(gin.Logger())

	if s.table.CORS {
		s.router.Use(middleware.CORS([]string{"*"}))
	}
	if s.db != nil {
		s.router.Use(s.accessLog())
	}

	for _, route := range s.table.Routes {
		handlers := make([]gin.HandlerFunc, 0, 3)
		if route.Auth {
			handlers = append(handlers, middleware.AuthRequired())
		}
		if route.Admin {
			handlers = append(handlers, middleware.AdminOnly())
		}
		handlers = append(handlers, s.handleMessage(route.Message))
		s.router.Handle(route.Method, route.Path, handlers...)
	}

	// ヘルスチェック
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "flowgate"})
	})
}

// handleMessage は固定メッセージを返すハンドラを返す。
// ハンドラはリクエストボディを読まず、ヘッダー以外の入力に依存しない。
func (s *Server) handleMessage(message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": message})
	}
}
