package topic

import (
	"context"
	"log/slog"

	"github.com/newsroomhq/newsroom/internal/platform/validate"
	"github.com/newsroomhq/newsroom/pkg/slug"
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

func (service *Service) ListTopics(context context.Context) ([]Topic, error) {
	return service.repo.ListTopics(context)
}

// CreateTopic validates and persists a new topic. The client-supplied slug is
// normalized (accent-stripped, lowercased, hyphenated) before the insert; an
// input that normalizes to nothing is rejected.
func (service *Service) CreateTopic(context context.Context, input CreateInput) (*Topic, error) {
	normalized := slug.From(input.Slug)

	v := &validate.Validator{}
	v.Required("slug", normalized).
		Required("description", input.Description).
		MaxLen("slug", normalized, 100)
	if err := v.Err(); err != nil {
		return nil, err
	}

	return service.repo.CreateTopic(context, Topic{
		Slug:        normalized,
		Description: input.Description,
	})
}
