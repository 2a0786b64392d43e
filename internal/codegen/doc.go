// Package codegen はルートテーブルから自己完結したGinサーバーのソースコードを生成する。
//
// 生成されるファイルは単一のmainパッケージであり、テーブルが必要とする
// ゲート関数（authRequired / adminOnly）とCORSミドルウェアのみを含む。
// ルート登録はテーブル上の順序をそのまま維持するため、同一テーブルからの
// 生成結果は常に同一となる。
package codegen
