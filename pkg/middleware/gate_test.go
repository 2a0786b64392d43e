package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newGateRouter はゲートミドルウェアを適用したテスト用ルーターを生成する。
func newGateRouter(t *testing.T, gate gin.HandlerFunc) *gin.Engine {
	t.Helper()

	router := gin.New()
	router.GET("/test", gate, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	return router
}

// TestAuthRequired は認証ゲート（存在チェック）を検証する。
func TestAuthRequired(t *testing.T) {
	t.Parallel()

	t.Run("authorizationヘッダーが無い場合は401を返すこと", func(t *testing.T) {
		t.Parallel()

		router := newGateRouter(t, AuthRequired())

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("ステータスコード = %d, want %d", w.Code, http.StatusUnauthorized)
		}
		if got := w.Body.String(); got != `{"message":"Unauthorized"}` {
			t.Errorf("ボディ = %s, want %s", got, `{"message":"Unauthorized"}`)
		}
	})

	t.Run("authorizationヘッダーが空文字の場合は401を返すこと", func(t *testing.T) {
		t.Parallel()

		router := newGateRouter(t, AuthRequired())

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Authorization", "")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("ステータスコード = %d, want %d", w.Code, http.StatusUnauthorized)
		}
	})

	t.Run("authorizationヘッダーがあれば値に関わらず通過すること", func(t *testing.T) {
		t.Parallel()

		router := newGateRouter(t, AuthRequired())

		for _, value := range []string{"admin", "user1", "Bearer something", "x"} {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req.Header.Set("Authorization", value)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Errorf("authorization=%q: ステータスコード = %d, want %d", value, w.Code, http.StatusOK)
			}
		}
	})
}

// TestAdminOnly は管理者ゲート（値チェック）を検証する。
func TestAdminOnly(t *testing.T) {
	t.Parallel()

	t.Run("authorizationヘッダーが無い場合は403を返すこと", func(t *testing.T) {
		t.Parallel()

		router := newGateRouter(t, AdminOnly())

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Errorf("ステータスコード = %d, want %d", w.Code, http.StatusForbidden)
		}
		if got := w.Body.String(); got != `{"message":"Forbidden"}` {
			t.Errorf("ボディ = %s, want %s", got, `{"message":"Forbidden"}`)
		}
	})

	t.Run("admin以外の値は有効なユーザーでも403を返すこと", func(t *testing.T) {
		t.Parallel()

		router := newGateRouter(t, AdminOnly())

		for _, value := range []string{"user1", "Admin", "ADMIN", "admin ", "Bearer admin"} {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req.Header.Set("Authorization", value)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusForbidden {
				t.Errorf("authorization=%q: ステータスコード = %d, want %d", value, w.Code, http.StatusForbidden)
			}
		}
	})

	t.Run("adminと完全一致する場合のみ通過すること", func(t *testing.T) {
		t.Parallel()

		router := newGateRouter(t, AdminOnly())

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Authorization", "admin")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("ステータスコード = %d, want %d", w.Code, http.StatusOK)
		}
	})

	t.Run("ゲートで中断された場合は後続ハンドラが実行されないこと", func(t *testing.T) {
		t.Parallel()

		handlerCalled := false
		router := gin.New()
		router.GET("/test", AdminOnly(), func(c *gin.Context) {
			handlerCalled = true
			c.JSON(http.StatusOK, gin.H{"message": "ok"})
		})

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Authorization", "user1")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if handlerCalled {
			t.Error("ゲートで拒否されたのにハンドラが実行された")
		}
	})
}
