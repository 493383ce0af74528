package repo

import (
	"context"
	"testing"

	"gymweb/biz/model/domain"
	"gymweb/biz/model/errs"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *UserRepositoryRedis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, NewUserRepositoryRedis(client, "test:")
}

func TestUserRepositoryRedis_SaveAndFind(t *testing.T) {
	mr, r := setupTestRedis(t)
	ctx := context.Background()

	saved, err := r.Save(ctx, &domain.User{ID: "u1", Username: "alice", Email: "a@x.com", Password: "hash"})
	assert.NoError(t, err)
	assert.Equal(t, "u1", saved.ID)
	assert.False(t, saved.CreatedAt.IsZero())

	assert.Equal(t, "alice", mr.HGet("test:{users}:user:id:u1", "username"))
	got, err := mr.Get("test:{users}:user:username:alice")
	assert.NoError(t, err)
	assert.Equal(t, "u1", got)

	found, err := r.FindByUserID(ctx, "u1")
	assert.NoError(t, err)
	if assert.NotNil(t, found) {
		assert.Equal(t, "alice", found.Username)
		assert.Equal(t, "a@x.com", found.Email)
		assert.Equal(t, "hash", found.Password)
	}

	found, err = r.FindByUsername(ctx, "alice")
	assert.NoError(t, err)
	if assert.NotNil(t, found) {
		assert.Equal(t, "u1", found.ID)
	}

	found, err = r.FindByEmail(ctx, "a@x.com")
	assert.NoError(t, err)
	if assert.NotNil(t, found) {
		assert.Equal(t, "u1", found.ID)
	}
}

func TestUserRepositoryRedis_NotFound(t *testing.T) {
	_, r := setupTestRedis(t)
	ctx := context.Background()

	found, err := r.FindByUserID(ctx, "missing")
	assert.NoError(t, err)
	assert.Nil(t, found)

	found, err = r.FindByUsername(ctx, "missing")
	assert.NoError(t, err)
	assert.Nil(t, found)

	found, err = r.FindByEmail(ctx, "missing")
	assert.NoError(t, err)
	assert.Nil(t, found)

	users, err := r.FindAll(ctx)
	assert.NoError(t, err)
	assert.Empty(t, users)
}

func TestUserRepositoryRedis_SaveOverwritesAndReindexes(t *testing.T) {
	mr, r := setupTestRedis(t)
	ctx := context.Background()

	created, err := r.Save(ctx, &domain.User{ID: "u1", Username: "alice", Email: "a@x.com", Password: "h1"})
	assert.NoError(t, err)

	updated, err := r.Save(ctx, &domain.User{ID: "u1", Username: "bob", Email: "b@x.com", Password: "h2"})
	assert.NoError(t, err)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	assert.False(t, mr.Exists("test:{users}:user:username:alice"))
	assert.False(t, mr.Exists("test:{users}:user:email:a@x.com"))

	found, err := r.FindByUsername(ctx, "bob")
	assert.NoError(t, err)
	if assert.NotNil(t, found) {
		assert.Equal(t, "h2", found.Password)
	}

	users, err := r.FindAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserRepositoryRedis_SaveDuplicated(t *testing.T) {
	_, r := setupTestRedis(t)
	ctx := context.Background()

	_, err := r.Save(ctx, &domain.User{ID: "u1", Username: "alice", Email: "a@x.com", Password: "h"})
	assert.NoError(t, err)

	_, err = r.Save(ctx, &domain.User{ID: "u2", Username: "alice", Email: "b@x.com", Password: "h"})
	assert.True(t, errs.IsDuplicatedErr(err))

	_, err = r.Save(ctx, &domain.User{ID: "u2", Username: "bob", Email: "a@x.com", Password: "h"})
	assert.True(t, errs.IsDuplicatedErr(err))

	found, err := r.FindByUserID(ctx, "u2")
	assert.NoError(t, err)
	assert.Nil(t, found)
}

func TestUserRepositoryRedis_FindAllKeepsInsertionOrder(t *testing.T) {
	_, r := setupTestRedis(t)
	ctx := context.Background()

	for _, name := range []string{"carol", "alice", "bob"} {
		_, err := r.Save(ctx, &domain.User{ID: "id-" + name, Username: name, Email: name + "@x.com", Password: "h"})
		assert.NoError(t, err)
	}
	// Updating must not move a user
	_, err := r.Save(ctx, &domain.User{ID: "id-carol", Username: "carol", Email: "c@x.com", Password: "h"})
	assert.NoError(t, err)

	users, err := r.FindAll(ctx)
	assert.NoError(t, err)
	if assert.Len(t, users, 3) {
		assert.Equal(t, "carol", users[0].Username)
		assert.Equal(t, "alice", users[1].Username)
		assert.Equal(t, "bob", users[2].Username)
	}
}

func TestUserRepositoryRedis_DeleteByUserID(t *testing.T) {
	mr, r := setupTestRedis(t)
	ctx := context.Background()

	_, err := r.Save(ctx, &domain.User{ID: "u1", Username: "alice", Email: "a@x.com", Password: "h"})
	assert.NoError(t, err)

	assert.NoError(t, r.DeleteByUserID(ctx, "u1"))

	assert.False(t, mr.Exists("test:{users}:user:id:u1"))
	assert.False(t, mr.Exists("test:{users}:user:username:alice"))
	assert.False(t, mr.Exists("test:{users}:user:email:a@x.com"))

	users, err := r.FindAll(ctx)
	assert.NoError(t, err)
	assert.Empty(t, users)
}

func TestUserRepositoryRedis_KeysShareHashTag(t *testing.T) {
	mr, r := setupTestRedis(t)
	ctx := context.Background()

	_, err := r.Save(ctx, &domain.User{ID: "u1", Username: "alice", Email: "a@x.com", Password: "hash"})
	assert.NoError(t, err)

	keys := mr.Keys()
	assert.NotEmpty(t, keys)
	for _, k := range keys {
		assert.Contains(t, k, "test:{users}:")
	}
}
