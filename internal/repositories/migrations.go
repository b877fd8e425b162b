package repositories

import (
	"github.com/jmoiron/sqlx"
	migrate "github.com/rubenv/sql-migrate"
)

// Migration returns the schema migrations of the users service.
func Migration() *migrate.MemoryMigrationSource {
	return &migrate.MemoryMigrationSource{
		Migrations: []*migrate.Migration{
			{
				Id: "users_01",
				// constraint names must match the ones classify expects
				Up: []string{
					`CREATE TABLE IF NOT EXISTS users (
						id          BIGSERIAL PRIMARY KEY,
						user_uuid   UUID NOT NULL,
						username    VARCHAR(50) NOT NULL,
						email       VARCHAR(100),
						first_name  VARCHAR(100) NOT NULL DEFAULT '',
						last_name   VARCHAR(100) NOT NULL DEFAULT '',
						password    VARCHAR(255) NOT NULL,
						created_at  TIMESTAMP NOT NULL DEFAULT NOW(),
						updated_at  TIMESTAMP NOT NULL DEFAULT NOW(),
						CONSTRAINT users_user_uuid_key UNIQUE (user_uuid),
						CONSTRAINT users_email_key UNIQUE (email)
					)`,
					`CREATE UNIQUE INDEX IF NOT EXISTS users_username_lower_key ON users (LOWER(username))`,
				},
				Down: []string{
					`DROP TABLE IF EXISTS users`,
				},
			},
		},
	}
}

// Migrate applies all pending migrations and returns how many ran.
func Migrate(db *sqlx.DB) (int, error) {
	return migrate.Exec(db.DB, "postgres", Migration(), migrate.Up)
}
