package encode

import (
	"gymweb/biz/config"

	"golang.org/x/crypto/bcrypt"
)

// PasswordEncoder turns a plaintext password into a one-way hash.
type PasswordEncoder interface {
	Encode(raw string) (string, error)
}

type BcryptEncoder struct {
	cost int
}

var _ PasswordEncoder = (*BcryptEncoder)(nil)

// NewBcryptEncoder falls back to bcrypt.DefaultCost when cost is out of range.
func NewBcryptEncoder(cost int) *BcryptEncoder {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptEncoder{cost: cost}
}

func NewDefault() *BcryptEncoder {
	return NewBcryptEncoder(config.GetPasswordConf().BcryptCost)
}

func (e *BcryptEncoder) Encode(raw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), e.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
