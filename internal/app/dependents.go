package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

func (s Service) Dependents(ctx context.Context, req DependentsRequest) (DependentsResult, error) {
	repository := strings.TrimSpace(req.Repository)
	if repository == "" {
		return DependentsResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("repository is required")
	}
	dependents, err := s.API.FetchDependents(ctx, repository)
	if err != nil {
		return DependentsResult{}, err
	}
	return DependentsResult{
		Repository: repository,
		Dependents: dependents,
	}, nil
}
