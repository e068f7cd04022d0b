package auth

import (
	"errors"
	"fmt"
)

var (
	ErrMissingCredentials     = errors.New("username and password are required")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrRateLimited            = errors.New("too many login attempts")
	ErrAccountLocked          = errors.New("account temporarily locked")
	ErrMissingFields          = errors.New("missing required fields")
	ErrUserNotFound           = errors.New("user not found")
	ErrInvalidCurrentPassword = errors.New("invalid current password")
	ErrTokenMissing           = errors.New("token is missing")
	ErrTokenFormat            = errors.New("invalid token format")
	ErrTokenExpired           = errors.New("token has expired")
	ErrTokenInvalid           = errors.New("invalid token")
	ErrUserNoLongerValid      = errors.New("user no longer valid")
)

// WaitError is a throttled login. Wait is the number of seconds the client
// should back off.
type WaitError struct {
	Err  error
	Wait int
}

func (e *WaitError) Error() string {
	return fmt.Sprintf("%v (retry in %ds)", e.Err, e.Wait)
}

func (e *WaitError) Unwrap() error {
	return e.Err
}
