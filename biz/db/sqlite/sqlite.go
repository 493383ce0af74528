package sqlite

import (
	"gymweb/biz/config"
	"gymweb/biz/db/gormlog"
	"gymweb/biz/model/storage"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

const defaultPath = "gymweb.db"

var dbConn *gorm.DB

func Init() {
	path := config.GetStorageConf().SQLitePath
	if path == "" {
		path = defaultPath
	}

	db, err := Open(path)
	if err != nil {
		panic(err)
	}

	hlog.Infof("sqlite opened: %s", path)
	dbConn = db
}

// Open opens and migrates a sqlite database. A single connection is kept so
// that ":memory:" databases are shared by every caller.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         gormlog.New(),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&storage.UserRecord{}); err != nil {
		return nil, err
	}
	return db, nil
}

func GetDbConn() *gorm.DB {
	return dbConn
}
