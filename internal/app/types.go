package app

import (
	"time"

	"migrator-deps/internal/types"
)

type DependenciesRequest struct {
	Repository string
	Scope      types.Scope
	Page       int
	PageSize   int
}

type DependenciesResult struct {
	Repository    string
	Scope         types.Scope
	Page          int
	PageCount     int
	FilteredTotal int
	Dependencies  []types.MergedDependency
	Summary       types.DependencySummary
}

type DependentsRequest struct {
	Repository string
}

type DependentsResult struct {
	Repository string
	Dependents []types.Dependent
}

type ExportRequest struct {
	Repository string
	Scope      types.Scope
	Format     types.ExportFormat
	OutputPath string
}

type ExportResult struct {
	OutputPath string
	Format     types.ExportFormat
	Count      int
}

type WatchRequest struct {
	Repository string
	Scope      types.Scope
	Interval   time.Duration
}

type ValidateRequest struct {
	ProfilePath string
}

type ValidateResult struct {
	Endpoint string
}
