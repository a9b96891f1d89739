package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

var (
	// ErrTagNotFound タグが存在しない
	ErrTagNotFound = errors.New("タグが見つかりません")
	// ErrTagConflict 同じラベルのタグが既に存在する
	ErrTagConflict = errors.New("このタグは既に存在します")
	// ErrUserNotFound ユーザーが存在しない
	ErrUserNotFound = errors.New("ユーザーが見つかりません")
	// ErrEmailConflict メールアドレスが既に使用されている
	ErrEmailConflict = errors.New("このメールアドレスは既に使用されています")
)

// mysqlErrDuplicateEntry 一意制約違反
const mysqlErrDuplicateEntry = 1062

func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry
}
