// flowgateのエントリポイント。
// フローグラフ設定からのHTTPサーバー起動（serve）と、
// 自己完結したサーバーソースの生成（generate）を担当するCLI。
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/nao1215/flowgate/internal/codegen"
	"github.com/nao1215/flowgate/internal/flow"
	"github.com/nao1215/flowgate/internal/server"
)

var (
	// configPath はフローグラフ設定ファイルのパス。空なら組み込みテーブルを使用する。
	configPath string
	// port はサーバーのリッスンポート。空ならPORT環境変数、次いで3000を使用する。
	port string
	// dbPath はアクセスログ用SQLiteデータベースのパス。
	dbPath string
	// outputPath は生成するサーバーソースの出力先。
	outputPath string
)

// rootCmd はflowgate CLIのベースコマンド。
var rootCmd = &cobra.Command{
	Use:   "flowgate",
	Short: "フローグラフ設定からHTTPサーバーを構築・生成するツール",
	Long: `flowgateはノードとその接続で表現されたJSON設定（フローグラフ）を走査し、
認証ゲート付きのルートテーブルを構築するツールです。

テーブルはそのままHTTPサーバーとして起動（serve）できるほか、
自己完結したGinサーバーのソースコードとして出力（generate）できます。`,
}

// serveCmd はルートテーブルに基づいてHTTPサーバーを起動する。
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "ルートテーブルに基づいてHTTPサーバーを起動する",
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := loadTable(configPath)
		if err != nil {
			return err
		}

		listenPort := port
		if listenPort == "" {
			listenPort = getEnvOr("PORT", "3000")
		}

		srv, err := server.NewServer(listenPort, table, dbPath)
		if err != nil {
			return fmt.Errorf("サーバーの初期化に失敗: %w", err)
		}
		defer srv.Close()

		log.Printf("サーバーを起動します: :%s (ルート数=%d)", listenPort, len(table.Routes))
		return srv.Run()
	},
}

// generateCmd はルートテーブルからサーバーソースを生成する。
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "ルートテーブルから自己完結したサーバーソースを生成する",
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := loadTable(configPath)
		if err != nil {
			return err
		}

		if err := codegen.WriteFile(outputPath, table); err != nil {
			return err
		}
		log.Printf("%s を生成しました (ルート数=%d)", outputPath, len(table.Routes))
		return nil
	},
}

// loadTable は設定ファイルからルートテーブルを構築する。
// パスが空の場合は組み込みのデフォルトテーブルを返す。
func loadTable(path string) (*flow.Table, error) {
	if path == "" {
		return flow.DefaultTable(), nil
	}

	cfg, err := flow.Load(path)
	if err != nil {
		return nil, err
	}
	return flow.NewGraph(cfg).Traverse(), nil
}

// getEnvOr は環境変数を取得し、設定されていない場合はデフォルト値を返す。
func getEnvOr(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func init() {
	serveCmd.Flags().StringVar(&configPath, "config", "", "フローグラフ設定ファイルのパス（省略時は組み込みテーブル）")
	serveCmd.Flags().StringVar(&port, "port", "", "リッスンポート（省略時はPORT環境変数、次いで3000）")
	serveCmd.Flags().StringVar(&dbPath, "db", "", "アクセスログ用SQLiteデータベースのパス")

	generateCmd.Flags().StringVar(&configPath, "config", "", "フローグラフ設定ファイルのパス（省略時は組み込みテーブル）")
	generateCmd.Flags().StringVar(&outputPath, "output", "server_gen.go", "生成するサーバーソースの出力先")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(generateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("flowgateの実行に失敗: %v", err)
	}
}
