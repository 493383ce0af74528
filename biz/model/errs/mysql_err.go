package errs

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// ErrDuplicated is returned by stores that enforce uniqueness themselves.
var ErrDuplicated = errors.New("record duplicated")

func IsDuplicatedErr(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, ErrDuplicated) || errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}

	return false
}
