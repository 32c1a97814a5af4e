package ports

import (
	"context"

	"migrator-deps/internal/types"
)

type MigratorAPIPort interface {
	FetchDependencies(ctx context.Context, repository string) ([]types.RawDependencyRecord, error)
	FetchDependents(ctx context.Context, repository string) ([]types.Dependent, error)
}
