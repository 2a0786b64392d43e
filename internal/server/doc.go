// Package server はルートテーブルからHTTPサーバーを構築する内部実装を提供する。
//
// ルートテーブルの各エントリに対し、認証ゲート・管理者ゲートを順に適用した
// ハンドラチェーンをGinルーターへ登録する。テーブルは起動時に一度だけ
// 読み込まれ、以後は不変として扱う。
//
// 主な機能:
//   - ルートテーブルに基づくルーティング登録
//   - ワイルドカードCORS（テーブルで有効な場合）
//   - リクエストログのSQLiteへの記録（テーブルで有効な場合）
package server
