package article

import (
	"net/http"

	"github.com/newsroomhq/newsroom/internal/platform/apperr"
	"github.com/newsroomhq/newsroom/internal/platform/database/schema"
	"github.com/newsroomhq/newsroom/pkg/pagination"
)

// ListOptions is the validated query specification for the articles listing.
// OrderBy and Direction only ever hold values produced by ParseSort and
// ParseOrder, so they are safe to splice into SQL text.
type ListOptions struct {
	Topic     string
	OrderBy   string
	Direction string
	Limit     int
	Offset    int
}

// sortColumns is the allow-list mapping client-facing sort_by names to ORDER
// BY expressions. "comment_count" refers to the aggregate's output column;
// everything else is a qualified articles column. "date" is a legacy alias
// for created_at.
var sortColumns = map[string]string{
	"author":          "a." + schema.Articles.Author,
	"title":           "a." + schema.Articles.Title,
	"article_id":      "a." + schema.Articles.ID,
	"topic":           "a." + schema.Articles.Topic,
	"created_at":      "a." + schema.Articles.CreatedAt,
	"date":            "a." + schema.Articles.CreatedAt,
	"votes":           "a." + schema.Articles.Votes,
	"article_img_url": "a." + schema.Articles.ArticleImgURL,
	"comment_count":   "comment_count",
}

// ParseSort validates a sort_by value against the allow-list and returns the
// ORDER BY expression. Empty input selects the default, creation date.
func ParseSort(sortBy string) (string, error) {
	if sortBy == "" {
		return sortColumns["created_at"], nil
	}

	column, ok := sortColumns[sortBy]
	if !ok {
		return "", apperr.InvalidSortQuery()
	}
	return column, nil
}

// ParseOrder validates an order value. Only the exact strings "asc" and
// "desc" are accepted; empty input selects the default, descending.
func ParseOrder(order string) (string, error) {
	switch order {
	case "":
		return "DESC", nil
	case "asc":
		return "ASC", nil
	case "desc":
		return "DESC", nil
	default:
		return "", apperr.InvalidOrderQuery()
	}
}

// ParseListOptions assembles a [ListOptions] from a request's query string,
// rejecting anything outside the contract before a store round trip.
func ParseListOptions(request *http.Request) (ListOptions, error) {
	query := request.URL.Query()

	orderBy, err := ParseSort(query.Get("sort_by"))
	if err != nil {
		return ListOptions{}, err
	}

	direction, err := ParseOrder(query.Get("order"))
	if err != nil {
		return ListOptions{}, err
	}

	params, err := pagination.FromRequest(request)
	if err != nil {
		return ListOptions{}, err
	}

	return ListOptions{
		Topic:     query.Get("topic"),
		OrderBy:   orderBy,
		Direction: direction,
		Limit:     params.Limit,
		Offset:    params.Offset(),
	}, nil
}
