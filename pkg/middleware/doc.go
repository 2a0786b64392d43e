// Package middleware はGinベースのHTTP APIで使用する共通ミドルウェアを提供する。
//
// authorizationヘッダーによるアクセスゲート、リクエストID付与、
// パニックリカバリ、CORS設定など、サーバー全体で共通して使用する
// ミドルウェアを含む。
package middleware
