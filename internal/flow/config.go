package flow

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrNoNodes は設定にノードが1つも含まれていない場合のエラー。
var ErrNoNodes = errors.New("設定にノードが存在しません")

// Config はフローグラフ設定ファイルのルート構造。
type Config struct {
	// Nodes はグラフを構成するノードの一覧。
	Nodes []Node `json:"nodes"`
}

// Node はフローグラフの1ノードを表す。
// ルート定義、ミドルウェア指定、またはその両方を担う。
type Node struct {
	// ID はノードの一意識別子。
	ID string `json:"id"`
	// Name はノードの表示名。固定メッセージが無いルートの応答文に使用する。
	Name string `json:"name"`
	// Source は接続元ノードのID。空の場合はエントリノードとみなす。
	Source string `json:"source"`
	// Target は接続先ノードのID。単一文字列または文字列配列を受け付ける。
	Target TargetList `json:"target"`
	// Properties はノードの属性（エンドポイント、認証要件など）。
	Properties Properties `json:"properties"`
}

// TargetList はノードの接続先ID一覧。
// JSON上は "t1" のような単一文字列と ["t1", "t2"] のような配列の
// 両方の表記を許容する。
type TargetList []string

// UnmarshalJSON は単一文字列・文字列配列・nullのいずれも受け付ける。
func (t *TargetList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*t = nil
			return nil
		}
		*t = TargetList{single}
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("targetは文字列または文字列配列である必要があります: %w", err)
	}
	*t = TargetList(list)
	return nil
}

// Properties はノードに付与される属性の集合。
// AuthRequired / AdminRequired はポインタであり、nilは「未指定（継承）」、
// 非nilは「明示指定（継承値を上書き）」を意味する。
type Properties struct {
	// Type はノードの種別。"entry" の場合はエントリノードとして扱う。
	Type string `json:"type,omitempty"`
	// Endpoint はルートのパス（例: "/user"）。空ならルートを定義しない。
	Endpoint string `json:"endpoint,omitempty"`
	// Method はHTTPメソッド（例: "GET"）。大文字小文字は区別しない。
	Method string `json:"method,omitempty"`
	// AuthRequired は認証ゲートの要否。nilなら経路から継承する。
	AuthRequired *bool `json:"auth_required,omitempty"`
	// AdminRequired は管理者ゲートの要否。nilなら経路から継承する。
	AdminRequired *bool `json:"admin_required,omitempty"`
	// AllowedOrigins はCORSの許可オリジン。キーの存在自体がCORS有効化を意味する。
	AllowedOrigins []string `json:"allowed_origins,omitempty"`
	// LogRequests はリクエストログの有効化フラグ。
	LogRequests bool `json:"log_requests,omitempty"`
}

// definesRoute はこのノードがルートを定義するかどうかを返す。
// エンドポイントとメソッドの両方が指定されている場合のみルートとみなす。
func (p Properties) definesRoute() bool {
	return p.Endpoint != "" && p.Method != ""
}

// Load は指定されたパスからフローグラフ設定を読み込み検証する。
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("設定ファイルの読み込みに失敗: %w", err)
	}
	return Parse(data)
}

// Parse はJSONバイト列からフローグラフ設定を解析し検証する。
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("設定のJSONパースに失敗: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate はノードIDの重複と接続先の存在を検証する。
func (c *Config) validate() error {
	if len(c.Nodes) == 0 {
		return ErrNoNodes
	}

	seen := make(map[string]struct{}, len(c.Nodes))
	for _, n := range c.Nodes {
		if n.ID == "" {
			return fmt.Errorf("IDが空のノードが存在します（name=%q）", n.Name)
		}
		if _, ok := seen[n.ID]; ok {
			return fmt.Errorf("ノードIDが重複しています: %q", n.ID)
		}
		seen[n.ID] = struct{}{}
	}

	for _, n := range c.Nodes {
		for _, target := range n.Target {
			if _, ok := seen[target]; !ok {
				return fmt.Errorf("ノード %q の接続先 %q が存在しません", n.ID, target)
			}
		}
	}
	return nil
}
