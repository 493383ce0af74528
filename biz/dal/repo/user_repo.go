package repo

import (
	"context"

	"gymweb/biz/config"
	"gymweb/biz/db"
	"gymweb/biz/db/redis"
	"gymweb/biz/model/domain"
)

// UserRepository is the user store. Lookups return (nil, nil) when nothing matches.
type UserRepository interface {
	FindAll(ctx context.Context) ([]*domain.User, error)
	FindByUserID(ctx context.Context, userID string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Save inserts u or overwrites the user with the same ID.
	Save(ctx context.Context, u *domain.User) (*domain.User, error)
	DeleteByUserID(ctx context.Context, userID string) error
}

// NewDefaultUserRepository picks the implementation matching storage.driver.
func NewDefaultUserRepository() UserRepository {
	if config.GetStorageConf().Driver == config.StorageDriverRedis {
		return NewUserRepositoryRedis(redis.GetRedisClient(), config.GetRedisConf().KeyPrefix)
	}
	return NewUserRepositoryGorm(db.GetDbConn())
}
