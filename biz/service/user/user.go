package user

import (
	"context"
	"fmt"

	"gymweb/biz/dal/repo"
	"gymweb/biz/model/convert"
	"gymweb/biz/model/domain"
	"gymweb/biz/model/errs"
	"gymweb/biz/util/encode"

	"github.com/google/uuid"
)

type Service struct {
	users   repo.UserRepository
	encoder encode.PasswordEncoder
}

func New(users repo.UserRepository, encoder encode.PasswordEncoder) *Service {
	return &Service{users: users, encoder: encoder}
}

func NewDefault() *Service {
	return New(repo.NewDefaultUserRepository(), encode.NewDefault())
}

func (s *Service) FindAll(ctx context.Context) ([]*domain.UserRO, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	ros := make([]*domain.UserRO, 0, len(users))
	for _, u := range users {
		ros = append(ros, convert.UserToRO(u))
	}
	return ros, nil
}

func (s *Service) FindByID(ctx context.Context, id string) (*domain.UserRO, error) {
	u, err := s.mustFindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return convert.UserToRO(u), nil
}

// FindByUsername returns the stored entity, password hash included.
func (s *Service) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, notFound("username", username)
	}
	return u, nil
}

func (s *Service) FindByUsernameRO(ctx context.Context, username string) (*domain.UserRO, error) {
	u, err := s.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return convert.UserToRO(u), nil
}

func (s *Service) FindByEmailRO(ctx context.Context, email string) (*domain.UserRO, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, notFound("email", email)
	}
	return convert.UserToRO(u), nil
}

func (s *Service) CreateUser(ctx context.Context, in *domain.UserRegister) (*domain.UserRO, error) {
	hash, err := s.encoder.Encode(in.Password)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		ID:       uuid.NewString(),
		Username: in.Username,
		Email:    in.Email,
		Password: hash,
	}
	saved, err := s.users.Save(ctx, u)
	if err != nil {
		return nil, err
	}
	return convert.UserToRO(saved), nil
}

// UpdateUser replaces username, email and password as a whole; there is no
// version check, so concurrent updates resolve as last write wins.
func (s *Service) UpdateUser(ctx context.Context, id string, in *domain.UserRegister) (*domain.UserRO, error) {
	u, err := s.mustFindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	hash, err := s.encoder.Encode(in.Password)
	if err != nil {
		return nil, err
	}
	u.Username = in.Username
	u.Password = hash
	u.Email = in.Email

	saved, err := s.users.Save(ctx, u)
	if err != nil {
		return nil, err
	}
	return convert.UserToRO(saved), nil
}

func (s *Service) DeleteUser(ctx context.Context, id string) error {
	u, err := s.mustFindByID(ctx, id)
	if err != nil {
		return err
	}
	return s.users.DeleteByUserID(ctx, u.ID)
}

func (s *Service) mustFindByID(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.users.FindByUserID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, notFound("id", id)
	}
	return u, nil
}

func notFound(key, value string) errs.Error {
	return errs.UserNotFound.SetMsg(fmt.Sprintf("user with %s %s was not found", key, value))
}
