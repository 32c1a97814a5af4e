package core

import "migrator-deps/internal/types"

// DefaultPageSize matches the page length used by the migrator operator
// views.
const DefaultPageSize = 20

// FilterScope returns the subsequence of merged entries matching the
// scope selector, preserving relative order.
func FilterScope(merged []types.MergedDependency, scope types.Scope) []types.MergedDependency {
	if scope == types.ScopeAll || scope == "" {
		return merged
	}
	wantLocal := scope == types.ScopeLocal
	filtered := make([]types.MergedDependency, 0, len(merged))
	for _, entry := range merged {
		if entry.IsLocal == wantLocal {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// Paginate slices merged into the requested fixed-size page. Page 1 is
// the first page; values below 1 are clamped to 1 and an out-of-range
// page yields an empty slice.
func Paginate(merged []types.MergedDependency, page int, pageSize int) []types.MergedDependency {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start >= len(merged) {
		return []types.MergedDependency{}
	}
	end := start + pageSize
	if end > len(merged) {
		end = len(merged)
	}
	return merged[start:end]
}

// PageCount returns ceil(total/pageSize); an empty list has zero pages.
func PageCount(total int, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if total <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
