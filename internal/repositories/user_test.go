package repositories

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sbilibin2017/gw-user-service/internal/models"
	"github.com/sbilibin2017/gw-user-service/internal/repoerr"
)

var userColumns = []string{"id", "user_uuid", "username", "email", "first_name", "last_name", "created_at", "updated_at"}

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestUserReadRepository_ReadUsers_QueryPaths(t *testing.T) {
	id := uuid.NewString()
	now := time.Now()

	tests := []struct {
		name           string
		qualifier      models.ReadQualifier
		requirePrivate bool
		precise        bool
		expectQuery    string
		args           []driver.Value
	}{
		{
			name:        "username case-insensitive",
			qualifier:   models.ByUsername("Alice"),
			expectQuery: `FROM users WHERE LOWER\(username\) = LOWER\(\$1\) ORDER BY id`,
			args:        []driver.Value{"Alice"},
		},
		{
			name:        "username precise",
			qualifier:   models.ByUsername("alice"),
			precise:     true,
			expectQuery: `FROM users WHERE username = \$1 ORDER BY id`,
			args:        []driver.Value{"alice"},
		},
		{
			name:        "uuid",
			qualifier:   models.ByUUID(id),
			expectQuery: `FROM users WHERE user_uuid = \$1 ORDER BY id`,
			args:        []driver.Value{id},
		},
		{
			name:           "range private",
			qualifier:      models.ByRange(1, 10),
			requirePrivate: true,
			expectQuery:    `, password FROM users WHERE id BETWEEN \$1 AND \$2 ORDER BY id`,
			args:           []driver.Value{int64(1), int64(10)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewUserReadRepository(db, nil)

			columns := userColumns
			row := []driver.Value{int64(1), id, "alice", "", "", "", now, now}
			if tt.requirePrivate {
				columns = append(append([]string(nil), userColumns...), "password")
				row = append(row, "digest")
			}

			mock.ExpectQuery(tt.expectQuery).
				WithArgs(tt.args...).
				WillReturnRows(sqlmock.NewRows(columns).AddRow(row...))

			users, err := repo.ReadUsers(context.Background(), tt.qualifier, tt.requirePrivate, tt.precise)
			require.NoError(t, err)
			require.Len(t, users, 1)
			assert.Equal(t, id, users[0].UserUUID)
			if tt.requirePrivate {
				assert.Equal(t, "digest", users[0].Password)
			} else {
				assert.Empty(t, users[0].Password)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserReadRepository_ReadUsers_InvalidUUIDIsEmpty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db, nil)

	users, err := repo.ReadUsers(context.Background(), models.ByUUID("not-a-uuid"), false, false)
	assert.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_ReadUsers_Errors(t *testing.T) {
	t.Run("undefined table", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserReadRepository(db, nil)
		mock.ExpectQuery(`FROM users`).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.UndefinedTable, Message: `relation "users" does not exist`})

		_, err := repo.ReadUsers(context.Background(), models.ByUsername("alice"), false, false)
		assert.ErrorIs(t, err, repoerr.ErrUnexpectedSchema)
	})

	t.Run("unknown driver error", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserReadRepository(db, nil)
		mock.ExpectQuery(`FROM users`).WillReturnError(sql.ErrConnDone)

		_, err := repo.ReadUsers(context.Background(), models.ByUsername("alice"), false, false)
		assert.ErrorIs(t, err, sql.ErrConnDone)
		assert.NotErrorIs(t, err, repoerr.ErrUserNotFound)
	})

	t.Run("unsupported qualifier", func(t *testing.T) {
		db, _ := newMockDB(t)
		repo := NewUserReadRepository(db, nil)

		_, err := repo.ReadUsers(context.Background(), models.ReadQualifier{}, false, false)
		assert.Error(t, err)
	})
}

func TestUserWriteRepository_InsertUser(t *testing.T) {
	insert := models.UserInsert{
		UserUUID: uuid.NewString(),
		Username: "alice",
		Password: "digest",
		Email:    "alice@example.com",
	}

	tests := []struct {
		name    string
		dbErr   error
		wantErr error
	}{
		{name: "success"},
		{
			name:    "duplicate username",
			dbErr:   &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: usernameConstraint},
			wantErr: repoerr.ErrUsernameTaken,
		},
		{
			name:    "duplicate email",
			dbErr:   &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: emailConstraint},
			wantErr: repoerr.ErrEmailTaken,
		},
		{
			name:    "duplicate uuid",
			dbErr:   &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: uuidConstraint},
			wantErr: repoerr.ErrUUIDTaken,
		},
		{
			name:    "unknown error passes through",
			dbErr:   sql.ErrConnDone,
			wantErr: sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewUserWriteRepository(db, nil)

			exp := mock.ExpectExec(`INSERT INTO users`).
				WithArgs(insert.UserUUID, insert.Username, insert.Email, insert.FirstName, insert.LastName, insert.Password)
			if tt.dbErr != nil {
				exp.WillReturnError(tt.dbErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(1, 1))
			}

			err := repo.InsertUser(context.Background(), insert)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserWriteRepository_UpdateUser(t *testing.T) {
	id := uuid.NewString()
	username := "bob"
	password := "digest"

	t.Run("sets only given fields", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserWriteRepository(db, nil)

		mock.ExpectExec(`UPDATE users SET username = \$1, password = \$2, updated_at = NOW\(\) WHERE user_uuid = \$3`).
			WithArgs(username, password, id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateUser(context.Background(), models.UserUpdate{UserUUID: id, Username: &username, Password: &password})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no rows is not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserWriteRepository(db, nil)

		mock.ExpectExec(`UPDATE users SET username = \$1, updated_at = NOW\(\) WHERE user_uuid = \$2`).
			WithArgs(username, id).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateUser(context.Background(), models.UserUpdate{UserUUID: id, Username: &username})
		assert.ErrorIs(t, err, repoerr.ErrUserNotFound)
	})

	t.Run("duplicate username", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserWriteRepository(db, nil)

		mock.ExpectExec(`UPDATE users`).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: usernameConstraint})

		err := repo.UpdateUser(context.Background(), models.UserUpdate{UserUUID: id, Username: &username})
		assert.ErrorIs(t, err, repoerr.ErrUsernameTaken)
	})
}

func TestUserWriteRepository_DeleteUser(t *testing.T) {
	id := uuid.NewString()

	tests := []struct {
		name     string
		affected int64
		dbErr    error
		wantErr  error
	}{
		{name: "deleted", affected: 1},
		{name: "missing", affected: 0, wantErr: repoerr.ErrUserNotFound},
		{
			name:    "malformed uuid",
			dbErr:   &pgconn.PgError{Code: pgerrcode.InvalidTextRepresentation},
			wantErr: repoerr.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewUserWriteRepository(db, nil)

			exp := mock.ExpectExec(`DELETE FROM users WHERE user_uuid = \$1`).WithArgs(id)
			if tt.dbErr != nil {
				exp.WillReturnError(tt.dbErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, tt.affected))
			}

			err := repo.DeleteUser(context.Background(), id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserWriteRepository_UsesTxFromContext(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM users`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Beginx()
	require.NoError(t, err)

	repo := NewUserWriteRepository(db, func(context.Context) *sqlx.Tx { return tx })
	require.NoError(t, repo.DeleteUser(context.Background(), uuid.NewString()))
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func setupUserPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)

	n, err := Migrate(db)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestUserRepositories_Postgres(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db, nil)
	readRepo := NewUserReadRepository(db, nil)
	ctx := context.Background()

	alice := models.UserInsert{UserUUID: uuid.NewString(), Username: "Alice", Password: "digest-a", Email: "alice@example.com"}
	bob := models.UserInsert{UserUUID: uuid.NewString(), Username: "bob", Password: "digest-b"}
	require.NoError(t, writeRepo.InsertUser(ctx, alice))
	require.NoError(t, writeRepo.InsertUser(ctx, bob))

	t.Run("duplicate username", func(t *testing.T) {
		err := writeRepo.InsertUser(ctx, models.UserInsert{UserUUID: uuid.NewString(), Username: "bob", Password: "x"})
		assert.ErrorIs(t, err, repoerr.ErrUsernameTaken)
	})

	t.Run("duplicate username differing in case", func(t *testing.T) {
		err := writeRepo.InsertUser(ctx, models.UserInsert{UserUUID: uuid.NewString(), Username: "ALICE", Password: "x"})
		assert.ErrorIs(t, err, repoerr.ErrUsernameTaken)

		name := "alice"
		err = writeRepo.UpdateUser(ctx, models.UserUpdate{UserUUID: bob.UserUUID, Username: &name})
		assert.ErrorIs(t, err, repoerr.ErrUsernameTaken)
	})

	t.Run("duplicate email", func(t *testing.T) {
		err := writeRepo.InsertUser(ctx, models.UserInsert{UserUUID: uuid.NewString(), Username: "carol", Password: "x", Email: "alice@example.com"})
		assert.ErrorIs(t, err, repoerr.ErrEmailTaken)
	})

	t.Run("empty emails do not collide", func(t *testing.T) {
		err := writeRepo.InsertUser(ctx, models.UserInsert{UserUUID: uuid.NewString(), Username: "dave", Password: "x"})
		assert.NoError(t, err)
	})

	t.Run("precise and imprecise username", func(t *testing.T) {
		users, err := readRepo.ReadUsers(ctx, models.ByUsername("alice"), false, false)
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, alice.UserUUID, users[0].UserUUID)
		assert.Empty(t, users[0].Password)

		users, err = readRepo.ReadUsers(ctx, models.ByUsername("alice"), false, true)
		require.NoError(t, err)
		assert.Empty(t, users)
	})

	t.Run("private read by uuid", func(t *testing.T) {
		users, err := readRepo.ReadUsers(ctx, models.ByUUID(bob.UserUUID), true, false)
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "digest-b", users[0].Password)
	})

	t.Run("range", func(t *testing.T) {
		users, err := readRepo.ReadUsers(ctx, models.ByRange(1, 2), false, false)
		require.NoError(t, err)
		assert.Len(t, users, 2)

		users, err = readRepo.ReadUsers(ctx, models.ByRange(1000, 2000), false, false)
		require.NoError(t, err)
		assert.Empty(t, users)
	})

	t.Run("update then delete", func(t *testing.T) {
		name := "robert"
		require.NoError(t, writeRepo.UpdateUser(ctx, models.UserUpdate{UserUUID: bob.UserUUID, Username: &name}))

		users, err := readRepo.ReadUsers(ctx, models.ByUUID(bob.UserUUID), false, false)
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "robert", users[0].Username)

		require.NoError(t, writeRepo.DeleteUser(ctx, bob.UserUUID))
		err = writeRepo.DeleteUser(ctx, bob.UserUUID)
		assert.True(t, errors.Is(err, repoerr.ErrUserNotFound))
	})
}
