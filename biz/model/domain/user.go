package domain

import "time"

// User is the persisted user entity. Password only ever holds an encoded hash.
type User struct {
	ID        string
	Username  string
	Email     string
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserRegister carries caller supplied fields for create and update.
type UserRegister struct {
	Username string
	Email    string
	Password string
}

// UserRO is the read-only projection of a User handed back to callers.
type UserRO struct {
	ID       string
	Username string
	Email    string
}
