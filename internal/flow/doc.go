// Package flow はフローグラフ形式のJSON設定からHTTPルートテーブルを構築する。
//
// 設定はノード（ルートやミドルウェアの宣言）とノード間の接続（target）で
// 構成されるグラフであり、エントリノードからのBFS走査によって
// 認証フラグを各経路に伝播させながらルートを収集する。
//
// 主な処理:
//   - 設定ファイルの読み込みと検証（Load）
//   - ノードマップと隣接リストの構築（NewGraph）
//   - グラフ走査によるルートテーブルの生成（Traverse）
package flow
