package repositories

import (
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"

	"github.com/sbilibin2017/gw-user-service/internal/repoerr"
)

// Unique constraint and index names as created by the users migration.
// Usernames are unique regardless of case.
const (
	usernameConstraint = "users_username_lower_key"
	emailConstraint    = "users_email_key"
	uuidConstraint     = "users_user_uuid_key"
)

// classify maps a driver error onto the repoerr faults. Anything it does
// not recognize is returned wrapped with op for context.
func classify(err error, op string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return errors.Wrap(err, op)
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		switch pgErr.ConstraintName {
		case usernameConstraint:
			return errors.WithMessage(repoerr.ErrUsernameTaken, pgErr.Detail)
		case emailConstraint:
			return errors.WithMessage(repoerr.ErrEmailTaken, pgErr.Detail)
		case uuidConstraint:
			return errors.WithMessage(repoerr.ErrUUIDTaken, pgErr.Detail)
		}
	case pgerrcode.InvalidTextRepresentation:
		return errors.WithMessage(repoerr.ErrUserNotFound, pgErr.Message)
	case pgerrcode.UndefinedTable, pgerrcode.UndefinedColumn:
		return errors.WithMessage(repoerr.ErrUnexpectedSchema, pgErr.Message)
	}
	return errors.Wrap(err, op)
}
