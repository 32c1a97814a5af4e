package core

import (
	"encoding/json"
	"strings"

	"migrator-deps/internal/types"
)

// Aggregate folds a flat list of raw detection records into one merged
// entry per distinct target repository, keyed by DependencyFullName.
// Output order is the order of first appearance of each key.
//
// Merge rules:
//   - scalar fields come from the first-seen record;
//   - detection methods accumulate with set semantics (a method seen
//     twice for the same target is counted once);
//   - metadata accumulates additively, one parsed entry per record that
//     carried a parseable payload, duplicates included;
//   - locality is a monotonic OR: once any record reports local, the
//     merged entry stays local.
//
// The function is total: malformed metadata is skipped and never drops
// the record or aborts the transform.
func Aggregate(records []types.RawDependencyRecord) []types.MergedDependency {
	index := map[string]int{}
	merged := make([]types.MergedDependency, 0, len(records))

	for _, record := range records {
		position, seen := index[record.DependencyFullName]
		if !seen {
			entry := types.MergedDependency{
				ID:                 record.ID,
				RepositoryID:       record.RepositoryID,
				DependencyFullName: record.DependencyFullName,
				DependencyURL:      record.DependencyURL,
				DependencyType:     record.DependencyType,
				IsLocal:            record.IsLocal,
				DetectionMethods:   []types.DetectionMethod{record.DependencyType},
			}
			if metadata, ok := parseMetadata(record); ok {
				entry.AllMetadata = append(entry.AllMetadata, metadata)
			}
			index[record.DependencyFullName] = len(merged)
			merged = append(merged, entry)
			continue
		}

		entry := &merged[position]
		if !containsMethod(entry.DetectionMethods, record.DependencyType) {
			entry.DetectionMethods = append(entry.DetectionMethods, record.DependencyType)
		}
		if metadata, ok := parseMetadata(record); ok {
			entry.AllMetadata = append(entry.AllMetadata, metadata)
		}
		if record.IsLocal {
			entry.IsLocal = true
		}
	}
	return merged
}

// Summarize computes the rollup counts over a merged dependency list.
// ByType counts merged entries per contained method, so an entry with
// two methods increments both counters.
func Summarize(merged []types.MergedDependency) types.DependencySummary {
	summary := types.DependencySummary{
		Total:  len(merged),
		ByType: map[types.DetectionMethod]int{},
	}
	for _, entry := range merged {
		if entry.IsLocal {
			summary.Local++
		}
		for _, method := range entry.DetectionMethods {
			summary.ByType[method]++
		}
	}
	summary.External = summary.Total - summary.Local
	return summary
}

func parseMetadata(record types.RawDependencyRecord) (types.DependencyMetadata, bool) {
	raw := strings.TrimSpace(record.Metadata)
	if raw == "" {
		return types.DependencyMetadata{}, false
	}
	var metadata types.DependencyMetadata
	if err := json.Unmarshal([]byte(raw), &metadata); err != nil {
		return types.DependencyMetadata{}, false
	}
	metadata.Source = record.DependencyType
	return metadata, true
}

func containsMethod(methods []types.DetectionMethod, method types.DetectionMethod) bool {
	for _, existing := range methods {
		if existing == method {
			return true
		}
	}
	return false
}
