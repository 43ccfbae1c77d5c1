package account

import "errors"

// User-facing failure modes. These surface as inline notices in the UI;
// none of them is retried or logged-and-swallowed.
var (
	ErrMissingField       = errors.New("please fill in all fields")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNoSession          = errors.New("not logged in")
)
