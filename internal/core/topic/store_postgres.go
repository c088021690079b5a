package topic

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

func (repository *PostgresRepository) ListTopics(context context.Context) ([]Topic, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s ASC`,
		schema.Topics.Slug, schema.Topics.Description,
		schema.Topics.Table, schema.Topics.Slug)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_topics")
	}
	defer rows.Close()

	topics := make([]Topic, 0)
	for rows.Next() {
		t := Topic{}
		if err := rows.Scan(&t.Slug, &t.Description); err != nil {
			return nil, dberr.Wrap(err, "scan_topic")
		}
		topics = append(topics, t)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "iterate_topics")
	}

	return topics, nil
}

// CreateTopic inserts a topic. A duplicate slug surfaces as a unique
// violation, which dberr maps to a 400.
func (repository *PostgresRepository) CreateTopic(context context.Context, topic Topic) (*Topic, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		VALUES ($1, $2)
		RETURNING %s, %s
	`,
		schema.Topics.Table, schema.Topics.Slug, schema.Topics.Description,
		schema.Topics.Slug, schema.Topics.Description,
	)

	created := &Topic{}
	err := repository.db.QueryRow(context, query, topic.Slug, topic.Description).
		Scan(&created.Slug, &created.Description)
	if err != nil {
		return nil, dberr.Wrap(err, "create_topic")
	}

	return created, nil
}
