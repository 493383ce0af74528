package mysql

import (
	"fmt"
	"time"

	"gymweb/biz/config"
	"gymweb/biz/db/gormlog"
	"gymweb/biz/model/storage"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	driver "github.com/go-sql-driver/mysql"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var dbConn *gorm.DB

func Init() {
	conf := config.GetMySQLConf()

	db, err := gorm.Open(gormmysql.Open(dsn(conf)), &gorm.Config{
		Logger:         gormlog.New(),
		TranslateError: true,
	})
	if err != nil {
		panic(err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		panic(err)
	}
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(&storage.UserRecord{}); err != nil {
		panic(err)
	}

	hlog.Infof("mysql connected: %s:%d/%s", conf.IP, conf.Port, conf.DBName)
	dbConn = db
}

func GetDbConn() *gorm.DB {
	return dbConn
}

func dsn(conf config.MySQLConf) string {
	c := driver.NewConfig()
	c.User = conf.Username
	c.Passwd = conf.Password
	c.Net = "tcp"
	c.Addr = fmt.Sprintf("%s:%d", conf.IP, conf.Port)
	c.DBName = conf.DBName
	c.ParseTime = true
	c.Loc = time.Local
	c.Params = map[string]string{"charset": "utf8mb4"}
	return c.FormatDSN()
}
