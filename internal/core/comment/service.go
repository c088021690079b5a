package comment

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

func (service *Service) ListCommentsByArticle(context context.Context, articleID int, limit, offset int) ([]Comment, error) {
	return service.repo.ListCommentsByArticle(context, articleID, limit, offset)
}

func (service *Service) ListComments(context context.Context, limit, offset int) ([]Comment, error) {
	return service.repo.ListComments(context, limit, offset)
}

// CreateComment validates the body fields before handing off to the store,
// which separately guarantees the parent article exists.
func (service *Service) CreateComment(context context.Context, articleID int, input CreateInput) (*Comment, error) {
	v := &validate.Validator{}
	v.Required("username", input.Username).
		Required("body", input.Body)
	if err := v.Err(); err != nil {
		return nil, err
	}

	return service.repo.CreateComment(context, articleID, input)
}

// UpdateVotes applies the signed inc_votes delta. A body without inc_votes
// is a Bad Request, not a no-op.
func (service *Service) UpdateVotes(context context.Context, id int, input VotesInput) (*Comment, error) {
	v := &validate.Validator{}
	v.Custom("inc_votes", input.IncVotes == nil, "This field is required")
	if err := v.Err(); err != nil {
		return nil, err
	}

	return service.repo.UpdateCommentVotes(context, id, *input.IncVotes)
}

func (service *Service) DeleteComment(context context.Context, id int) error {
	return service.repo.DeleteComment(context, id)
}
