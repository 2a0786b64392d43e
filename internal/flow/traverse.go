package flow

import (
	"fmt"
	"strings"
)

// Route はルートテーブルの1エントリ。
// (Method, Path) の組はテーブル内で一意である。
type Route struct {
	// Method はHTTPメソッド（大文字、例: "GET"）。
	Method string
	// Path はルートのパス（例: "/user"）。
	Path string
	// Name はルートを定義したノードの表示名。
	Name string
	// Message は成功時に返却する固定メッセージ。
	Message string
	// Auth は認証ゲート（authorizationヘッダーの存在チェック）の要否。
	Auth bool
	// Admin は管理者ゲート（authorizationヘッダーの値チェック)の要否。
	Admin bool
}

// Table はグラフ走査の結果得られるルートテーブル。
// プロセス起動時に一度だけ構築され、以後は不変。
type Table struct {
	// Routes はルートの一覧（走査での初回到達順）。
	Routes []Route
	// CORS はワイルドカードCORSミドルウェアの有効化フラグ。
	CORS bool
	// Logging はリクエストログの有効化フラグ。
	Logging bool
}

// publicEndpoints は認証系エンドポイント。経路上の認証フラグに関わらず
// 常に公開ルートとして扱う。
var publicEndpoints = map[string]struct{}{
	"/login":   {},
	"/signup":  {},
	"/signout": {},
}

// gateFlags はBFS中に経路ごとへ伝播させるゲートフラグの組。
type gateFlags struct {
	auth  bool
	admin bool
}

// Traverse はエントリノードからグラフをBFS走査し、ルートテーブルを生成する。
//
// 各ノードで auth_required / admin_required が明示されていれば継承値を
// 上書きし、子ノードへはフラグのコピーを渡す（分岐ごとに独立）。
// 同一エンドポイントに複数経路から到達した場合はフラグをORで統合し、
// メソッドと名前は初回到達時の値を維持する。
func (g *Graph) Traverse() *Table {
	table := &Table{}
	index := make(map[string]int) // エンドポイント -> table.Routes上の位置

	type queueItem struct {
		id    string
		flags gateFlags
	}
	queue := make([]queueItem, 0, len(g.entries))
	for _, id := range g.entries {
		queue = append(queue, queueItem{id: id})
	}

	// 同一ノードが複数経路上に現れ得るため、訪問回数はノード数×ノード数で打ち切る。
	// 設定グラフは小規模である前提で、循環があっても停止する。
	limit := len(g.nodes) * len(g.nodes)
	visited := 0

	for len(queue) > 0 && visited < limit {
		item := queue[0]
		queue = queue[1:]
		visited++

		node, ok := g.nodes[item.id]
		if !ok {
			continue
		}
		props := node.Properties
		flags := item.flags

		if props.AllowedOrigins != nil {
			table.CORS = true
		}
		if props.LogRequests {
			table.Logging = true
		}

		if props.AuthRequired != nil {
			flags.auth = *props.AuthRequired
		}
		if props.AdminRequired != nil {
			flags.admin = *props.AdminRequired
		}

		if props.definesRoute() {
			applied := flags
			if _, public := publicEndpoints[props.Endpoint]; public {
				applied = gateFlags{}
			}

			if i, ok := index[props.Endpoint]; ok {
				table.Routes[i].Auth = table.Routes[i].Auth || applied.auth
				table.Routes[i].Admin = table.Routes[i].Admin || applied.admin
			} else {
				name := node.Name
				if name == "" {
					name = "Unnamed Route"
				}
				index[props.Endpoint] = len(table.Routes)
				table.Routes = append(table.Routes, Route{
					Method:  strings.ToUpper(props.Method),
					Path:    props.Endpoint,
					Name:    name,
					Message: messageFor(props.Endpoint, name),
					Auth:    applied.auth,
					Admin:   applied.admin,
				})
			}
		}

		for _, child := range g.children[item.id] {
			queue = append(queue, queueItem{id: child, flags: flags})
		}
	}

	return table
}

// messageFor はエンドポイントに対応する固定の応答メッセージを返す。
// 既知のエンドポイント以外はノード名から生成する。
func messageFor(endpoint, name string) string {
	switch endpoint {
	case "/login":
		return "Login successful"
	case "/signup":
		return "Signup successful"
	case "/signout":
		return "Signout successful"
	case "/user":
		return "User data"
	case "/admin":
		return "Admin data"
	case "/home":
		return "Welcome to Home Page"
	case "/about":
		return "About us"
	case "/news":
		return "Latest news"
	case "/blogs":
		return "Blogs list"
	default:
		return fmt.Sprintf("Response from %s", name)
	}
}

// DefaultTable は設定ファイルなしで起動した場合の組み込みルートテーブルを返す。
func DefaultTable() *Table {
	return &Table{
		CORS: true,
		Routes: []Route{
			{Method: "POST", Path: "/login", Name: "Login", Message: "Login successful"},
			{Method: "POST", Path: "/signup", Name: "Signup", Message: "Signup successful"},
			{Method: "POST", Path: "/signout", Name: "Signout", Message: "Signout successful"},
			{Method: "GET", Path: "/user", Name: "User", Message: "User data", Auth: true},
			{Method: "GET", Path: "/admin", Name: "Admin", Message: "Admin data", Auth: true, Admin: true},
			{Method: "GET", Path: "/about", Name: "About", Message: "About us"},
			{Method: "GET", Path: "/news", Name: "News", Message: "Latest news", Admin: true},
			{Method: "GET", Path: "/blogs", Name: "Blogs", Message: "Blogs list", Admin: true},
		},
	}
}
