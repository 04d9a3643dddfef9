package user

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailExists         = errors.New("email already registered")
	ErrAdminAccessRequired = errors.New("admin access required")
	ErrCannotDeleteSelf    = errors.New("cannot delete own account")
)
