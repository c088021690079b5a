package user

import (
	"context"
	"log/slog"
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

func (service *Service) ListUsers(context context.Context) ([]User, error) {
	return service.repo.ListUsers(context)
}

func (service *Service) GetUser(context context.Context, username string) (*User, error) {
	return service.repo.GetUserByUsername(context, username)
}
