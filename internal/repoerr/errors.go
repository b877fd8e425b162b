package repoerr

import "github.com/pkg/errors"

var (
	// ErrUsernameTaken indicates a unique violation on username.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrEmailTaken indicates a unique violation on email.
	ErrEmailTaken = errors.New("email already taken")

	// ErrUUIDTaken indicates a unique violation on the user UUID.
	ErrUUIDTaken = errors.New("user uuid already taken")

	// ErrUserNotFound indicates that no user row was affected or matched.
	ErrUserNotFound = errors.New("user not found")

	// ErrUnexpectedSchema indicates the store does not have the expected tables or columns.
	ErrUnexpectedSchema = errors.New("unexpected users schema")

	// ErrSessionNotFound indicates a missing or expired refresh token.
	ErrSessionNotFound = errors.New("session not found")
)
