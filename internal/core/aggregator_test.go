package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"migrator-deps/internal/types"
)

func record(fullName string, method types.DetectionMethod, local bool, metadata string) types.RawDependencyRecord {
	return types.RawDependencyRecord{
		ID:                 "rec-" + fullName + "-" + string(method),
		RepositoryID:       "repo-1",
		DependencyFullName: fullName,
		DependencyURL:      "https://github.com/" + fullName,
		DependencyType:     method,
		IsLocal:            local,
		Metadata:           metadata,
	}
}

func TestAggregateMergesDuplicateTargets(t *testing.T) {
	records := []types.RawDependencyRecord{
		record("org/dep1", types.DetectionMethodSubmodule, false, ""),
		record("org/dep1", types.DetectionMethodWorkflow, true, ""),
	}

	merged := Aggregate(records)
	require.Len(t, merged, 1)

	entry := merged[0]
	assert.Equal(t, "org/dep1", entry.DependencyFullName)
	assert.True(t, entry.IsLocal, "local flag must stick once any record reports local")
	if diff := cmp.Diff(
		[]types.DetectionMethod{types.DetectionMethodSubmodule, types.DetectionMethodWorkflow},
		entry.DetectionMethods,
	); diff != "" {
		t.Fatalf("unexpected detection methods (-want +got):\n%s", diff)
	}
	// First-seen record supplies the scalar fields.
	assert.Equal(t, types.DetectionMethodSubmodule, entry.DependencyType)
	assert.Equal(t, "rec-org/dep1-submodule", entry.ID)
}

func TestAggregateSkipsMalformedMetadata(t *testing.T) {
	records := []types.RawDependencyRecord{
		record("org/dep1", types.DetectionMethodSubmodule, false, "{invalid"),
	}

	merged := Aggregate(records)
	require.Len(t, merged, 1)
	assert.Empty(t, merged[0].AllMetadata)
	// The malformed payload must not affect anything else.
	assert.Equal(t, []types.DetectionMethod{types.DetectionMethodSubmodule}, merged[0].DetectionMethods)
}

func TestAggregateEmptyInput(t *testing.T) {
	merged := Aggregate(nil)
	assert.Empty(t, merged)

	summary := Summarize(merged)
	assert.Equal(t, 0, summary.Total)
	assert.Equal(t, 0, summary.Local)
	assert.Equal(t, 0, summary.External)
	require.NotNil(t, summary.ByType)
	assert.Empty(t, summary.ByType)
}

func TestAggregatePreservesFirstSeenOrder(t *testing.T) {
	records := []types.RawDependencyRecord{
		record("org/b", types.DetectionMethodWorkflow, false, ""),
		record("org/a", types.DetectionMethodSubmodule, false, ""),
		record("org/b", types.DetectionMethodPackage, false, ""),
		record("org/c", types.DetectionMethodDependencyGraph, false, ""),
		record("org/a", types.DetectionMethodWorkflow, false, ""),
	}

	merged := Aggregate(records)
	names := make([]string, 0, len(merged))
	for _, entry := range merged {
		names = append(names, entry.DependencyFullName)
	}
	if diff := cmp.Diff([]string{"org/b", "org/a", "org/c"}, names); diff != "" {
		t.Fatalf("unexpected output order (-want +got):\n%s", diff)
	}
}

func TestAggregateMethodSetSemantics(t *testing.T) {
	// The same method detected twice is counted once; metadata from the
	// repeated detection is still appended.
	records := []types.RawDependencyRecord{
		record("org/dep1", types.DetectionMethodSubmodule, false, `{"path":"libs/dep1"}`),
		record("org/dep1", types.DetectionMethodSubmodule, false, `{"path":"vendor/dep1"}`),
	}

	merged := Aggregate(records)
	require.Len(t, merged, 1)
	entry := merged[0]
	assert.Equal(t, []types.DetectionMethod{types.DetectionMethodSubmodule}, entry.DetectionMethods)
	require.Len(t, entry.AllMetadata, 2)
	assert.Equal(t, "libs/dep1", entry.AllMetadata[0].Path)
	assert.Equal(t, "vendor/dep1", entry.AllMetadata[1].Path)
	for _, metadata := range entry.AllMetadata {
		assert.Equal(t, types.DetectionMethodSubmodule, metadata.Source)
	}
}

func TestAggregateLocalityMonotonicity(t *testing.T) {
	tests := []struct {
		name   string
		locals []bool
		want   bool
	}{
		{name: "all external", locals: []bool{false, false, false}, want: false},
		{name: "local first", locals: []bool{true, false, false}, want: true},
		{name: "local middle", locals: []bool{false, true, false}, want: true},
		{name: "local last", locals: []bool{false, false, true}, want: true},
	}
	methods := []types.DetectionMethod{
		types.DetectionMethodSubmodule,
		types.DetectionMethodWorkflow,
		types.DetectionMethodPackage,
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var records []types.RawDependencyRecord
			for i, local := range tc.locals {
				records = append(records, record("org/dep1", methods[i], local, ""))
			}
			merged := Aggregate(records)
			require.Len(t, merged, 1)
			assert.Equal(t, tc.want, merged[0].IsLocal)
		})
	}
}

func TestAggregateMetadataAccumulationCount(t *testing.T) {
	records := []types.RawDependencyRecord{
		record("org/dep1", types.DetectionMethodSubmodule, false, `{"path":"libs/dep1","branch":"main"}`),
		record("org/dep1", types.DetectionMethodWorkflow, false, ""),
		record("org/dep1", types.DetectionMethodPackage, false, "not json"),
		record("org/dep1", types.DetectionMethodDependencyGraph, false, `{"manifest":"go.mod","package_manager":"gomod"}`),
	}

	merged := Aggregate(records)
	require.Len(t, merged, 1)
	entry := merged[0]
	// Only the two parseable payloads contribute.
	require.Len(t, entry.AllMetadata, 2)
	assert.Equal(t, types.DetectionMethodSubmodule, entry.AllMetadata[0].Source)
	assert.Equal(t, "main", entry.AllMetadata[0].Branch)
	assert.Equal(t, types.DetectionMethodDependencyGraph, entry.AllMetadata[1].Source)
	assert.Equal(t, "gomod", entry.AllMetadata[1].PackageManager)
	// The unparseable record still contributed its detection method.
	assert.Len(t, entry.DetectionMethods, 4)
}

func TestAggregateGroupingIdempotence(t *testing.T) {
	records := []types.RawDependencyRecord{
		record("org/a", types.DetectionMethodSubmodule, false, ""),
		record("org/b", types.DetectionMethodWorkflow, true, ""),
		record("org/a", types.DetectionMethodPackage, false, ""),
		record("org/c", types.DetectionMethodPackage, false, ""),
		record("org/b", types.DetectionMethodSubmodule, false, ""),
		record("org/a", types.DetectionMethodSubmodule, false, ""),
	}
	distinct := map[string]struct{}{}
	for _, rec := range records {
		distinct[rec.DependencyFullName] = struct{}{}
	}

	merged := Aggregate(records)
	assert.Equal(t, len(distinct), len(merged))
}

func TestSummarizeCounts(t *testing.T) {
	records := []types.RawDependencyRecord{
		record("org/a", types.DetectionMethodSubmodule, true, ""),
		record("org/a", types.DetectionMethodWorkflow, false, ""),
		record("org/b", types.DetectionMethodWorkflow, false, ""),
		record("org/c", types.DetectionMethodPackage, true, ""),
	}

	summary := Summarize(Aggregate(records))
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 2, summary.Local)
	assert.Equal(t, 1, summary.External)
	// org/a carries two methods and increments both counters.
	want := map[types.DetectionMethod]int{
		types.DetectionMethodSubmodule: 1,
		types.DetectionMethodWorkflow:  2,
		types.DetectionMethodPackage:   1,
	}
	if diff := cmp.Diff(want, summary.ByType); diff != "" {
		t.Fatalf("unexpected by_type counts (-want +got):\n%s", diff)
	}
}
