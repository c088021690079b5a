package article

import (
	"context"
	"log/slog"

	"github.com/newsroomhq/newsroom/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListArticles(context context.Context, options ListOptions) ([]Article, int, error) {
	return service.repo.ListArticles(context, options)
}

func (service *Service) GetArticle(context context.Context, id int) (*Article, error) {
	return service.repo.GetArticleByID(context, id)
}

// CreateArticle validates the required fields and persists the article.
// Unknown author or topic is rejected by the store's foreign keys; that
// failure reaches the client as a 400, the same as any malformed body.
func (service *Service) CreateArticle(context context.Context, input CreateInput) (*Article, error) {
	v := &validate.Validator{}
	v.Required("author", input.Author).
		Required("title", input.Title).
		Required("body", input.Body).
		Required("topic", input.Topic)
	if err := v.Err(); err != nil {
		return nil, err
	}

	return service.repo.CreateArticle(context, input)
}

// UpdateVotes applies the signed inc_votes delta. A body without inc_votes
// is a Bad Request, not a no-op.
func (service *Service) UpdateVotes(context context.Context, id int, input VotesInput) (*Article, error) {
	v := &validate.Validator{}
	v.Custom("inc_votes", input.IncVotes == nil, "This field is required")
	if err := v.Err(); err != nil {
		return nil, err
	}

	return service.repo.UpdateArticleVotes(context, id, *input.IncVotes)
}

func (service *Service) DeleteArticle(context context.Context, id int) error {
	return service.repo.DeleteArticle(context, id)
}
