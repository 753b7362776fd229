package repositories

import "errors"

// ErrNotFound is returned when a row does not exist or is not owned by the
// requesting user. The two cases are deliberately indistinguishable.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateUsername is returned when a username unique constraint fires.
var ErrDuplicateUsername = errors.New("username already exists")
