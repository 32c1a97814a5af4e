package ports

import "migrator-deps/internal/types"

type ExportPort interface {
	WriteCSV(path string, merged []types.MergedDependency) error
	WriteJSON(path string, merged []types.MergedDependency, summary types.DependencySummary) error
}
