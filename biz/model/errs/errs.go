package errs

import (
	"errors"
	"fmt"
)

type Error interface {
	Error() string
	Code() int32
	Msg() string
	SetErr(err error) Error
	SetMsg(msg string) Error
}

type bizError struct {
	code int32
	msg  string
}

func (bizErr *bizError) Error() string {
	return fmt.Sprintf("%d:%s", bizErr.code, bizErr.msg)
}

func (bizErr *bizError) Code() int32 {
	return bizErr.code
}

func (bizErr *bizError) Msg() string {
	return bizErr.msg
}

// SetErr keeps the code and takes err's text as the message.
func (bizErr *bizError) SetErr(err error) Error {
	return New(bizErr.Code(), err.Error())
}

func (bizErr *bizError) SetMsg(msg string) Error {
	return New(bizErr.Code(), msg)
}

func New(code int32, msg string) Error {
	return &bizError{
		code: code,
		msg:  msg,
	}
}

func ErrorEqual(err1, err2 Error) bool {
	// 都为空
	if err1 == nil && err2 == nil {
		return true
	}

	// 只有一个不为空
	if err1 == nil || err2 == nil {
		return false
	}

	// 都不为空
	return err1.Code() == err2.Code()
}

// As reports whether err carries an Error and returns it.
func As(err error) (Error, bool) {
	var bizErr Error
	if errors.As(err, &bizErr) {
		return bizErr, true
	}
	return nil, false
}

// Is reports whether err carries an Error with the same code as target.
func Is(err error, target Error) bool {
	bizErr, ok := As(err)
	if !ok {
		return false
	}
	return ErrorEqual(bizErr, target)
}

var (
	Success     = New(0, "success")
	ServerError = New(1_0001, "internal server error")
	ParamError  = New(1_0002, "param error")

	UserNotFound   = New(2_0001, "user not found")
	UserDuplicated = New(2_0003, "username or email duplicated")
)
