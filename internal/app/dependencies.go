package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"migrator-deps/internal/core"
	"migrator-deps/internal/types"
)

// Dependencies fetches the raw detection records for a repository and
// returns one page of the merged, scope-filtered view. The summary is
// computed over the full merged list, before scope filtering, so the
// local/external split stays visible whatever scope is selected.
func (s Service) Dependencies(ctx context.Context, req DependenciesRequest) (DependenciesResult, error) {
	repository := strings.TrimSpace(req.Repository)
	if repository == "" {
		return DependenciesResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("repository is required")
	}
	scope, err := types.ParseScope(string(req.Scope))
	if err != nil {
		return DependenciesResult{}, err
	}

	records, err := s.API.FetchDependencies(ctx, repository)
	if err != nil {
		return DependenciesResult{}, err
	}

	merged := core.Aggregate(records)
	summary := core.Summarize(merged)
	filtered := core.FilterScope(merged, scope)

	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = core.DefaultPageSize
	}

	log.Ctx(ctx).Debug().
		Str("repository", repository).
		Int("records", len(records)).
		Int("merged", len(merged)).
		Msg("dependencies aggregated")

	return DependenciesResult{
		Repository:    repository,
		Scope:         scope,
		Page:          page,
		PageCount:     core.PageCount(len(filtered), pageSize),
		FilteredTotal: len(filtered),
		Dependencies:  core.Paginate(filtered, page, pageSize),
		Summary:       summary,
	}, nil
}
