// File: internal/store/errors.go
package store

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// 約束違反的穩定對應，handler 依 errors.Is 轉成 HTTP 狀態碼，
// 原始資料庫錯誤不會出現在回應中。
var (
	ErrNotFound  = errors.New("resource not found")
	ErrDuplicate = errors.New("duplicate resource")
	ErrInvalid   = errors.New("invalid value")
)

// Postgres error codes
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

// translate 將底層 pgx 錯誤轉成套件內的 sentinel 錯誤。
// 唯一約束是併發寫入下的最終防線，輸掉競爭的一方在這裡拿到 ErrDuplicate。
func translate(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return ErrDuplicate
		case codeForeignKeyViolation:
			return ErrNotFound
		case codeCheckViolation:
			return ErrInvalid
		}
	}
	return err
}
