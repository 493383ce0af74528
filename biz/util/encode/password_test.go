package encode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptEncoder_Encode(t *testing.T) {
	e := NewBcryptEncoder(bcrypt.MinCost)

	h1, err := e.Encode("secret")
	assert.NoError(t, err)
	assert.NotEqual(t, "secret", h1)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(h1), []byte("secret")))

	h2, err := e.Encode("secret")
	assert.NoError(t, err)
	assert.NotEqual(t, h1, h2)

	cost, err := bcrypt.Cost([]byte(h1))
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestBcryptEncoder_DefaultCost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptEncoder(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptEncoder(bcrypt.MaxCost+1).cost)
}

func TestBcryptEncoder_TooLong(t *testing.T) {
	e := NewBcryptEncoder(bcrypt.MinCost)
	_, err := e.Encode(strings.Repeat("a", 73))
	assert.ErrorIs(t, err, bcrypt.ErrPasswordTooLong)
}
