package storage

import (
	"time"
)

type GormModel struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type UserRecord struct {
	GormModel
	UserId   string `gorm:"size:64;not null;uniqueIndex"`  // 用户唯一索引
	Username string `gorm:"size:64;not null;uniqueIndex"`  // 用户名
	Email    string `gorm:"size:128;not null;uniqueIndex"` // 邮箱
	Password string `gorm:"size:128;not null"`             // 密码哈希
}

func (UserRecord) TableName() string {
	return "users"
}
