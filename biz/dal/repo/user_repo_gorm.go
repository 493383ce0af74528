package repo

import (
	"context"
	"errors"

	"gymweb/biz/model/convert"
	"gymweb/biz/model/domain"
	"gymweb/biz/model/storage"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepositoryGorm struct {
	db *gorm.DB
}

var _ UserRepository = (*UserRepositoryGorm)(nil)

func NewUserRepositoryGorm(db *gorm.DB) *UserRepositoryGorm {
	return &UserRepositoryGorm{db: db}
}

func (r *UserRepositoryGorm) FindAll(ctx context.Context) ([]*domain.User, error) {
	var ms []*storage.UserRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&ms).Error; err != nil {
		return nil, err
	}

	users := make([]*domain.User, 0, len(ms))
	for _, m := range ms {
		users = append(users, convert.UserRecordToDomain(m))
	}
	return users, nil
}

func (r *UserRepositoryGorm) FindByUserID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findOne(ctx, "user_id = ?", userID)
}

func (r *UserRepositoryGorm) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, "username = ?", username)
}

func (r *UserRepositoryGorm) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r *UserRepositoryGorm) findOne(ctx context.Context, query string, arg string) (*domain.User, error) {
	var m storage.UserRecord
	err := r.db.WithContext(ctx).Where(query, arg).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return convert.UserRecordToDomain(&m), nil
}

func (r *UserRepositoryGorm) Save(ctx context.Context, u *domain.User) (*domain.User, error) {
	rec := convert.UserDomainToRecord(u)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing storage.UserRecord
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", u.ID).First(&existing).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return tx.Create(rec).Error
			}
			return err
		}

		rec.ID = existing.ID
		rec.CreatedAt = existing.CreatedAt
		return tx.Save(rec).Error
	})
	if err != nil {
		return nil, err
	}
	return convert.UserRecordToDomain(rec), nil
}

func (r *UserRepositoryGorm) DeleteByUserID(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&storage.UserRecord{}).Error
}
