package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrPasswordMismatch   = errors.New("password confirmation does not match")
	ErrForbidden          = errors.New("not allowed to perform this action on user")
)

func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrProfileNotFound)
}
