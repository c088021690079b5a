package comment

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/newsroomhq/newsroom/internal/platform/apperr"
	"github.com/newsroomhq/newsroom/internal/platform/database/schema"
	"github.com/newsroomhq/newsroom/internal/platform/dberr"
	"github.com/newsroomhq/newsroom/internal/platform/postgres"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func commentColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s",
		schema.Comments.ID, schema.Comments.ArticleID, schema.Comments.Author,
		schema.Comments.Body, schema.Comments.Votes, schema.Comments.CreatedAt,
	)
}

/*
ListCommentsByArticle returns a page of an article's comments, newest first.

The article existence check and the page fetch are independent reads, so they
run concurrently and join before the result is gated: a missing article is a
404 even when the page itself is empty, and an existing article with no
comments is an empty 200, never a 404.
*/
func (repository *PostgresRepository) ListCommentsByArticle(context context.Context, articleID int, limit, offset int) ([]Comment, error) {
	group, groupCtx := errgroup.WithContext(context)

	var articleExists bool
	var comments []Comment

	group.Go(func() error {
		found, err := postgres.Exists(groupCtx, repository.db, schema.ArticleByID, articleID)
		if err != nil {
			return err
		}
		articleExists = found
		return nil
	})

	group.Go(func() error {
		page, err := repository.fetchArticlePage(groupCtx, articleID, limit, offset)
		if err != nil {
			return err
		}
		comments = page
		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	if !articleExists {
		return nil, apperr.NotFound()
	}

	return comments, nil
}

func (repository *PostgresRepository) fetchArticlePage(context context.Context, articleID int, limit, offset int) ([]Comment, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE %s = $1
		ORDER BY %s DESC
		LIMIT $2 OFFSET $3
	`,
		commentColumns(), schema.Comments.Table,
		schema.Comments.ArticleID, schema.Comments.CreatedAt,
	)

	rows, err := repository.db.Query(context, query, articleID, limit, offset)
	if err != nil {
		return nil, dberr.Wrap(err, "list_article_comments")
	}
	defer rows.Close()

	comments := make([]Comment, 0)
	for rows.Next() {
		c := Comment{}
		if err := rows.Scan(&c.CommentID, &c.ArticleID, &c.Author, &c.Body, &c.Votes, &c.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_comment")
		}
		comments = append(comments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "iterate_comments")
	}

	return comments, nil
}

func (repository *PostgresRepository) ListComments(context context.Context, limit, offset int) ([]Comment, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		ORDER BY %s DESC
		LIMIT $1 OFFSET $2
	`,
		commentColumns(), schema.Comments.Table, schema.Comments.CreatedAt,
	)

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, dberr.Wrap(err, "list_comments")
	}
	defer rows.Close()

	comments := make([]Comment, 0)
	for rows.Next() {
		c := Comment{}
		if err := rows.Scan(&c.CommentID, &c.ArticleID, &c.Author, &c.Body, &c.Votes, &c.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_comment")
		}
		comments = append(comments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "iterate_comments")
	}

	return comments, nil
}

// CreateComment inserts a comment for an article. The parent article is
// existence-checked first so an unknown article is a clean 404; an unknown
// author still surfaces as a foreign-key violation, which maps to a 400.
func (repository *PostgresRepository) CreateComment(context context.Context, articleID int, input CreateInput) (*Comment, error) {
	articleExists, err := postgres.Exists(context, repository.db, schema.ArticleByID, articleID)
	if err != nil {
		return nil, err
	}
	if !articleExists {
		return nil, apperr.NotFound()
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		RETURNING %s
	`,
		schema.Comments.Table,
		schema.Comments.ArticleID, schema.Comments.Author, schema.Comments.Body,
		commentColumns(),
	)

	c := &Comment{}
	err = repository.db.QueryRow(context, query, articleID, input.Username, input.Body).
		Scan(&c.CommentID, &c.ArticleID, &c.Author, &c.Body, &c.Votes, &c.CreatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "create_comment")
	}

	return c, nil
}

// UpdateCommentVotes applies a signed delta in one atomic statement; no
// returned row means the comment is gone and maps to a 404.
func (repository *PostgresRepository) UpdateCommentVotes(context context.Context, id int, delta int) (*Comment, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = %s + $1
		WHERE %s = $2
		RETURNING %s
	`,
		schema.Comments.Table,
		schema.Comments.Votes, schema.Comments.Votes,
		schema.Comments.ID,
		commentColumns(),
	)

	c := &Comment{}
	err := repository.db.QueryRow(context, query, delta, id).
		Scan(&c.CommentID, &c.ArticleID, &c.Author, &c.Body, &c.Votes, &c.CreatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "update_comment_votes")
	}

	return c, nil
}

func (repository *PostgresRepository) DeleteComment(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.Comments.Table, schema.Comments.ID)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_comment")
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound()
	}

	return nil
}
