package article

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/newsroomhq/newsroom/internal/platform/apperr"
	"github.com/newsroomhq/newsroom/internal/platform/database/schema"
	"github.com/newsroomhq/newsroom/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// articleColumns is the SELECT list shared by every article read, alias "a"
// for articles and the aggregate comment count cast to int so it scans as a
// number, never a numeric string.
func articleColumns() string {
	return fmt.Sprintf(`a.%s, a.%s, a.%s, a.%s, a.%s, a.%s, a.%s, a.%s,
		COUNT(c.%s)::int AS comment_count`,
		schema.Articles.ID, schema.Articles.Author, schema.Articles.Title,
		schema.Articles.Body, schema.Articles.Topic, schema.Articles.CreatedAt,
		schema.Articles.Votes, schema.Articles.ArticleImgURL,
		schema.Comments.ID,
	)
}

func scanArticle(row interface{ Scan(dest ...any) error }, a *Article) error {
	return row.Scan(
		&a.ArticleID, &a.Author, &a.Title, &a.Body, &a.Topic,
		&a.CreatedAt, &a.Votes, &a.ArticleImgURL, &a.CommentCount,
	)
}

/*
ListArticles returns a filtered, sorted page of articles and the total count
of rows matching the topic filter before pagination.

The query joins comments once and aggregates per article, using a window
COUNT(*) OVER() so the pre-pagination total rides along with every row.
OrderBy and Direction come pre-validated from the allow-list in filter.go;
only the topic value and the pagination bounds travel as bind parameters.
*/
func (repository *PostgresRepository) ListArticles(context context.Context, options ListOptions) ([]Article, int, error) {

	var queryBuilder strings.Builder
	var args []any
	argID := 1

	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT %s,
			COUNT(*) OVER()::int AS total_count
		FROM %s a
		LEFT OUTER JOIN %s c ON c.%s = a.%s
	`,
		articleColumns(),
		schema.Articles.Table,
		schema.Comments.Table, schema.Comments.ArticleID, schema.Articles.ID,
	))

	if options.Topic != "" {
		queryBuilder.WriteString(fmt.Sprintf(" WHERE a.%s = $%d", schema.Articles.Topic, argID))
		args = append(args, options.Topic)
		argID++
	}

	queryBuilder.WriteString(fmt.Sprintf(" GROUP BY a.%s", schema.Articles.ID))

	// Secondary key keeps pagination stable when the sort column has ties.
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s %s, a.%s DESC",
		options.OrderBy, options.Direction, schema.Articles.ID))

	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argID, argID+1))
	args = append(args, options.Limit, options.Offset)

	rows, err := repository.db.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_articles")
	}
	defer rows.Close()

	articles := make([]Article, 0)
	totalCount := 0

	for rows.Next() {
		a := Article{}
		err := rows.Scan(
			&a.ArticleID, &a.Author, &a.Title, &a.Body, &a.Topic,
			&a.CreatedAt, &a.Votes, &a.ArticleImgURL, &a.CommentCount,
			&totalCount,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_article")
		}
		articles = append(articles, a)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "iterate_articles")
	}

	// A page past the end yields no rows, and with them no window total.
	// Re-count separately so total_count still reflects the filter.
	if len(articles) == 0 {
		total, err := repository.countArticles(context, options.Topic)
		if err != nil {
			return nil, 0, err
		}
		totalCount = total
	}

	return articles, totalCount, nil
}

func (repository *PostgresRepository) countArticles(context context.Context, topic string) (int, error) {
	query := fmt.Sprintf(`SELECT COUNT(*)::int FROM %s a`, schema.Articles.Table)
	var args []any

	if topic != "" {
		query += fmt.Sprintf(" WHERE a.%s = $1", schema.Articles.Topic)
		args = append(args, topic)
	}

	var total int
	if err := repository.db.QueryRow(context, query, args...).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, "count_articles")
	}
	return total, nil
}

func (repository *PostgresRepository) GetArticleByID(context context.Context, id int) (*Article, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s a
		LEFT OUTER JOIN %s c ON c.%s = a.%s
		WHERE a.%s = $1
		GROUP BY a.%s
	`,
		articleColumns(),
		schema.Articles.Table,
		schema.Comments.Table, schema.Comments.ArticleID, schema.Articles.ID,
		schema.Articles.ID, schema.Articles.ID,
	)

	a := &Article{}
	if err := scanArticle(repository.db.QueryRow(context, query, id), a); err != nil {
		return nil, dberr.Wrap(err, "get_article_by_id")
	}

	return a, nil
}

// CreateArticle inserts an article. Unknown author or topic surfaces as a
// foreign-key violation, which dberr maps to a 400. When no image URL is
// supplied the column is omitted so the schema default applies.
func (repository *PostgresRepository) CreateArticle(context context.Context, input CreateInput) (*Article, error) {
	returning := fmt.Sprintf("RETURNING %s, %s, %s, %s, %s, %s, %s, %s",
		schema.Articles.ID, schema.Articles.Author, schema.Articles.Title,
		schema.Articles.Body, schema.Articles.Topic, schema.Articles.CreatedAt,
		schema.Articles.Votes, schema.Articles.ArticleImgURL,
	)

	var query string
	var args []any

	if input.ArticleImgURL != nil {
		query = fmt.Sprintf(`
			INSERT INTO %s (%s, %s, %s, %s, %s)
			VALUES ($1, $2, $3, $4, $5)
			%s
		`,
			schema.Articles.Table,
			schema.Articles.Author, schema.Articles.Title, schema.Articles.Body,
			schema.Articles.Topic, schema.Articles.ArticleImgURL,
			returning,
		)
		args = []any{input.Author, input.Title, input.Body, input.Topic, *input.ArticleImgURL}
	} else {
		query = fmt.Sprintf(`
			INSERT INTO %s (%s, %s, %s, %s)
			VALUES ($1, $2, $3, $4)
			%s
		`,
			schema.Articles.Table,
			schema.Articles.Author, schema.Articles.Title, schema.Articles.Body,
			schema.Articles.Topic,
			returning,
		)
		args = []any{input.Author, input.Title, input.Body, input.Topic}
	}

	a := &Article{}
	err := repository.db.QueryRow(context, query, args...).Scan(
		&a.ArticleID, &a.Author, &a.Title, &a.Body, &a.Topic,
		&a.CreatedAt, &a.Votes, &a.ArticleImgURL,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "create_article")
	}

	// A brand new article cannot have comments.
	a.CommentCount = 0
	return a, nil
}

/*
UpdateArticleVotes applies a signed delta to the vote count in a single
atomic statement, so concurrent increments against the same article never
lose updates. A missing article produces no returned row, which maps to
a 404.
*/
func (repository *PostgresRepository) UpdateArticleVotes(context context.Context, id int, delta int) (*Article, error) {
	query := fmt.Sprintf(`
		UPDATE %s a
		SET %s = %s + $1
		WHERE a.%s = $2
		RETURNING a.%s, a.%s, a.%s, a.%s, a.%s, a.%s, a.%s, a.%s,
			(SELECT COUNT(*)::int FROM %s c WHERE c.%s = a.%s) AS comment_count
	`,
		schema.Articles.Table,
		schema.Articles.Votes, schema.Articles.Votes,
		schema.Articles.ID,
		schema.Articles.ID, schema.Articles.Author, schema.Articles.Title,
		schema.Articles.Body, schema.Articles.Topic, schema.Articles.CreatedAt,
		schema.Articles.Votes, schema.Articles.ArticleImgURL,
		schema.Comments.Table, schema.Comments.ArticleID, schema.Articles.ID,
	)

	a := &Article{}
	if err := scanArticle(repository.db.QueryRow(context, query, delta, id), a); err != nil {
		return nil, dberr.Wrap(err, "update_article_votes")
	}

	return a, nil
}

/*
DeleteArticle removes an article and its dependent comments.

Description: Executes within an ACID transaction to guarantee referential
cleanup order: comments are removed first, then the article row. If the
article does not exist the transaction rolls back and the caller sees a 404,
with no comments lost.
*/
func (repository *PostgresRepository) DeleteArticle(context context.Context, id int) error {

	// Establish Transactional Boundary
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_delete_article_tx")
	}
	defer transaction.Rollback(context)

	// Step 1: Remove dependent comments
	commentsQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.Comments.Table, schema.Comments.ArticleID)
	if _, err := transaction.Exec(context, commentsQuery, id); err != nil {
		return dberr.Wrap(err, "delete_article_comments")
	}

	// Step 2: Remove the article itself
	articleQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.Articles.Table, schema.Articles.ID)
	tag, err := transaction.Exec(context, articleQuery, id)
	if err != nil {
		return dberr.Wrap(err, "delete_article")
	}

	// No article row touched: roll back rather than silently succeeding.
	if tag.RowsAffected() == 0 {
		return apperr.NotFound()
	}

	return transaction.Commit(context)
}
