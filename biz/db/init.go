package db

import (
	"gymweb/biz/config"
	"gymweb/biz/db/mysql"
	"gymweb/biz/db/redis"
	"gymweb/biz/db/sqlite"

	"gorm.io/gorm"
)

// Init connects the store selected by storage.driver.
func Init() {
	switch config.GetStorageConf().Driver {
	case config.StorageDriverRedis:
		redis.Init()
	case config.StorageDriverSQLite:
		sqlite.Init()
	default:
		mysql.Init()
	}
}

// GetDbConn returns the gorm connection of the sql driver in use.
func GetDbConn() *gorm.DB {
	if config.GetStorageConf().Driver == config.StorageDriverSQLite {
		return sqlite.GetDbConn()
	}
	return mysql.GetDbConn()
}
