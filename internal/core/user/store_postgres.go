package user

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/newsroomhq/newsroom/internal/platform/database/schema"
	"github.com/newsroomhq/newsroom/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListUsers(context context.Context) ([]User, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s ORDER BY %s ASC`,
		schema.Users.Username, schema.Users.Name, schema.Users.AvatarURL,
		schema.Users.Table, schema.Users.Username)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_users")
	}
	defer rows.Close()

	users := make([]User, 0)
	for rows.Next() {
		u := User{}
		if err := rows.Scan(&u.Username, &u.Name, &u.AvatarURL); err != nil {
			return nil, dberr.Wrap(err, "scan_user")
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "iterate_users")
	}

	return users, nil
}

func (repository *PostgresRepository) GetUserByUsername(context context.Context, username string) (*User, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s WHERE %s = $1`,
		schema.Users.Username, schema.Users.Name, schema.Users.AvatarURL,
		schema.Users.Table, schema.Users.Username)

	u := &User{}
	err := repository.db.QueryRow(context, query, username).
		Scan(&u.Username, &u.Name, &u.AvatarURL)
	if err != nil {
		return nil, dberr.Wrap(err, "get_user_by_username")
	}

	return u, nil
}
