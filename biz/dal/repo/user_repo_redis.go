package repo

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gymweb/biz/model/domain"
	"gymweb/biz/model/errs"

	"github.com/redis/go-redis/v9"
)

// saveScript writes the user hash and its indexes atomically.
// KEYS[1]: user hash, KEYS[2]: username index, KEYS[3]: email index,
// KEYS[4]: insertion order zset, KEYS[5]: order sequence.
// ARGV: id, username, email, password, now (unix ms), username index prefix, email index prefix.
// Returns 0 when the username or email belongs to another user, else created_at.
const saveScript = `
local id = ARGV[1]

local nameOwner = redis.call("GET", KEYS[2])
if nameOwner and nameOwner ~= id then
    return 0
end
local emailOwner = redis.call("GET", KEYS[3])
if emailOwner and emailOwner ~= id then
    return 0
end

local oldName = redis.call("HGET", KEYS[1], "username")
if oldName and oldName ~= ARGV[2] then
    redis.call("DEL", ARGV[6] .. oldName)
end
local oldEmail = redis.call("HGET", KEYS[1], "email")
if oldEmail and oldEmail ~= ARGV[3] then
    redis.call("DEL", ARGV[7] .. oldEmail)
end

local createdAt = redis.call("HGET", KEYS[1], "created_at") or ARGV[5]
redis.call("HSET", KEYS[1],
    "id", id,
    "username", ARGV[2],
    "email", ARGV[3],
    "password", ARGV[4],
    "created_at", createdAt,
    "updated_at", ARGV[5])
redis.call("SET", KEYS[2], id)
redis.call("SET", KEYS[3], id)

if not redis.call("ZSCORE", KEYS[4], id) then
    redis.call("ZADD", KEYS[4], redis.call("INCR", KEYS[5]), id)
end
return createdAt
`

// deleteScript removes the user hash, its indexes and its order entry.
// KEYS[1]: user hash, KEYS[2]: insertion order zset.
// ARGV: id, username index prefix, email index prefix.
const deleteScript = `
local id = ARGV[1]

local name = redis.call("HGET", KEYS[1], "username")
if name and redis.call("GET", ARGV[2] .. name) == id then
    redis.call("DEL", ARGV[2] .. name)
end
local email = redis.call("HGET", KEYS[1], "email")
if email and redis.call("GET", ARGV[3] .. email) == id then
    redis.call("DEL", ARGV[3] .. email)
end

redis.call("DEL", KEYS[1])
redis.call("ZREM", KEYS[2], id)
return 1
`

// slotTag is a cluster hash tag shared by every key of the store, so the
// index keys the scripts derive from stored fields live in the same slot as
// the declared KEYS.
const slotTag = "{users}:"

type UserRepositoryRedis struct {
	client *redis.Client
	prefix string
}

var _ UserRepository = (*UserRepositoryRedis)(nil)

func NewUserRepositoryRedis(client *redis.Client, prefix string) *UserRepositoryRedis {
	return &UserRepositoryRedis{client: client, prefix: prefix + slotTag}
}

func (r *UserRepositoryRedis) userKey(userID string) string {
	return r.prefix + "user:id:" + userID
}

func (r *UserRepositoryRedis) usernamePrefix() string {
	return r.prefix + "user:username:"
}

func (r *UserRepositoryRedis) emailPrefix() string {
	return r.prefix + "user:email:"
}

func (r *UserRepositoryRedis) orderKey() string {
	return r.prefix + "users"
}

func (r *UserRepositoryRedis) seqKey() string {
	return r.prefix + "users:seq"
}

func (r *UserRepositoryRedis) FindAll(ctx context.Context) ([]*domain.User, error) {
	ids, err := r.client.ZRange(ctx, r.orderKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*domain.User{}, nil
	}

	cmds := make([]*redis.MapStringStringCmd, 0, len(ids))
	_, err = r.client.Pipelined(ctx, func(p redis.Pipeliner) error {
		for _, id := range ids {
			cmds = append(cmds, p.HGetAll(ctx, r.userKey(id)))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	users := make([]*domain.User, 0, len(cmds))
	for _, cmd := range cmds {
		u, err := parseUser(cmd.Val())
		if err != nil {
			return nil, err
		}
		if u != nil {
			users = append(users, u)
		}
	}
	return users, nil
}

func (r *UserRepositoryRedis) FindByUserID(ctx context.Context, userID string) (*domain.User, error) {
	fields, err := r.client.HGetAll(ctx, r.userKey(userID)).Result()
	if err != nil {
		return nil, err
	}
	return parseUser(fields)
}

func (r *UserRepositoryRedis) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findByIndex(ctx, r.usernamePrefix()+username)
}

func (r *UserRepositoryRedis) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findByIndex(ctx, r.emailPrefix()+email)
}

func (r *UserRepositoryRedis) findByIndex(ctx context.Context, indexKey string) (*domain.User, error) {
	userID, err := r.client.Get(ctx, indexKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return r.FindByUserID(ctx, userID)
}

func (r *UserRepositoryRedis) Save(ctx context.Context, u *domain.User) (*domain.User, error) {
	now := time.Now()
	result, err := r.client.Eval(ctx, saveScript,
		[]string{
			r.userKey(u.ID),
			r.usernamePrefix() + u.Username,
			r.emailPrefix() + u.Email,
			r.orderKey(),
			r.seqKey(),
		},
		u.ID, u.Username, u.Email, u.Password,
		strconv.FormatInt(now.UnixMilli(), 10),
		r.usernamePrefix(), r.emailPrefix(),
	).Result()
	if err != nil {
		return nil, err
	}

	createdAt, ok := result.(string)
	if !ok {
		return nil, fmt.Errorf("save user %s: %w", u.ID, errs.ErrDuplicated)
	}
	createdMs, err := strconv.ParseInt(createdAt, 10, 64)
	if err != nil {
		return nil, err
	}

	return &domain.User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Password:  u.Password,
		CreatedAt: time.UnixMilli(createdMs),
		UpdatedAt: time.UnixMilli(now.UnixMilli()),
	}, nil
}

func (r *UserRepositoryRedis) DeleteByUserID(ctx context.Context, userID string) error {
	return r.client.Eval(ctx, deleteScript,
		[]string{r.userKey(userID), r.orderKey()},
		userID, r.usernamePrefix(), r.emailPrefix(),
	).Err()
}

func parseUser(fields map[string]string) (*domain.User, error) {
	if len(fields) == 0 {
		return nil, nil
	}

	createdMs, err := strconv.ParseInt(fields["created_at"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse created_at of user %s: %w", fields["id"], err)
	}
	updatedMs, err := strconv.ParseInt(fields["updated_at"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse updated_at of user %s: %w", fields["id"], err)
	}

	return &domain.User{
		ID:        fields["id"],
		Username:  fields["username"],
		Email:     fields["email"],
		Password:  fields["password"],
		CreatedAt: time.UnixMilli(createdMs),
		UpdatedAt: time.UnixMilli(updatedMs),
	}, nil
}
