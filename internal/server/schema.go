package server

import (
	"database/sql"
	"fmt"
)

// スキーマ定義。アクセスログは追記のみで運用する。
const schema = `
CREATE TABLE IF NOT EXISTS access_log (
    id TEXT PRIMARY KEY,
    request_id TEXT NOT NULL,
    method TEXT NOT NULL,
    path TEXT NOT NULL,
    status INTEGER NOT NULL,
    latency_ms INTEGER NOT NULL,
    created_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_access_log_path
    ON access_log(path);

CREATE INDEX IF NOT EXISTS idx_access_log_created_at
    ON access_log(created_at);
`

// initSchema はSQLiteデータベースにスキーマを適用する。
func initSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("スキーマの適用に失敗: %w", err)
	}
	return nil
}
