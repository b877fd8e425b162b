package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/sbilibin2017/gw-user-service/internal/logger"
	"github.com/sbilibin2017/gw-user-service/internal/models"
	"github.com/sbilibin2017/gw-user-service/internal/repoerr"
)

const (
	publicColumns = `id, user_uuid::text AS user_uuid, username, COALESCE(email, '') AS email,
		first_name, last_name, created_at, updated_at`
	privateColumns = publicColumns + `, password`
)

// TxGetter returns the transaction bound to ctx, or nil.
type TxGetter func(ctx context.Context) *sqlx.Tx

func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

// oneLine collapses a query so it logs on a single line.
func oneLine(query string) string {
	return strings.Join(strings.Fields(query), " ")
}

// UserReadRepository handles user read operations
type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// ReadUsers returns the users selected by q ordered by id. The password
// column is only selected when requirePrivate is set. Usernames match
// case-insensitively unless precise is set.
func (r *UserReadRepository) ReadUsers(ctx context.Context, q models.ReadQualifier, requirePrivate, precise bool) ([]models.User, error) {
	columns := publicColumns
	if requirePrivate {
		columns = privateColumns
	}

	var (
		where string
		args  []any
	)
	switch q.Kind {
	case models.QualifierUsername:
		where = "LOWER(username) = LOWER($1)"
		if precise {
			where = "username = $1"
		}
		args = []any{q.Value}
	case models.QualifierUUID:
		if _, err := uuid.Parse(q.Value); err != nil {
			// not a UUID, so no row can match
			return []models.User{}, nil
		}
		where = "user_uuid = $1"
		args = []any{q.Value}
	case models.QualifierRange:
		where = "id BETWEEN $1 AND $2"
		args = []any{q.StartID, q.EndID}
	default:
		return nil, errors.Errorf("unsupported read qualifier kind %d", q.Kind)
	}

	query := fmt.Sprintf("SELECT %s FROM users WHERE %s ORDER BY id", columns, where)

	users := []models.User{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &users, query, args...)

	logger.FromContext(ctx).Infow("query",
		"sql", oneLine(query),
		"args", args,
		"rows", len(users),
		"error", err,
	)

	if err != nil {
		return nil, classify(err, "read users")
	}
	return users, nil
}

// UserWriteRepository handles user write operations
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// InsertUser stores a new user. The password must already be hashed.
func (r *UserWriteRepository) InsertUser(ctx context.Context, u models.UserInsert) error {
	const query = `
		INSERT INTO users (user_uuid, username, email, first_name, last_name, password, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, NOW(), NOW())
	`
	args := []any{u.UserUUID, u.Username, u.Email, u.FirstName, u.LastName, u.Password}

	_, err := r.exec(ctx, query, args, 5)
	if err != nil {
		return classify(err, "insert user")
	}
	return nil
}

// UpdateUser applies the non-nil fields of u to the user with u.UserUUID.
func (r *UserWriteRepository) UpdateUser(ctx context.Context, u models.UserUpdate) error {
	var (
		sets   []string
		args   []any
		secret = -1
	)
	set := func(column string, value *string, expr string) {
		if value == nil {
			return
		}
		args = append(args, *value)
		sets = append(sets, fmt.Sprintf("%s = "+expr, column, len(args)))
	}

	set("username", u.Username, "$%d")
	set("email", u.Email, "NULLIF($%d, '')")
	set("first_name", u.FirstName, "$%d")
	set("last_name", u.LastName, "$%d")
	if u.Password != nil {
		secret = len(args)
	}
	set("password", u.Password, "$%d")
	sets = append(sets, "updated_at = NOW()")

	args = append(args, u.UserUUID)
	query := fmt.Sprintf("UPDATE users SET %s WHERE user_uuid = $%d", strings.Join(sets, ", "), len(args))

	affected, err := r.exec(ctx, query, args, secret)
	if err != nil {
		return classify(err, "update user")
	}
	if affected == 0 {
		return repoerr.ErrUserNotFound
	}
	return nil
}

// DeleteUser removes the user with the given UUID.
func (r *UserWriteRepository) DeleteUser(ctx context.Context, userUUID string) error {
	const query = `DELETE FROM users WHERE user_uuid = $1`

	affected, err := r.exec(ctx, query, []any{userUUID}, -1)
	if err != nil {
		return classify(err, "delete user")
	}
	if affected == 0 {
		return repoerr.ErrUserNotFound
	}
	return nil
}

// exec runs query and logs it, masking the argument at index secret.
func (r *UserWriteRepository) exec(ctx context.Context, query string, args []any, secret int) (int64, error) {
	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logged := append([]any(nil), args...)
	if secret >= 0 && secret < len(logged) {
		logged[secret] = "***"
	}
	logger.FromContext(ctx).Infow("query",
		"sql", oneLine(query),
		"args", logged,
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
