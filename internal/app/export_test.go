package app

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"migrator-deps/internal/types"
)

// stubExporter satisfies ports.ExportPort and captures what was written.
type stubExporter struct {
	csvPath    string
	csvMerged  []types.MergedDependency
	jsonPath   string
	jsonMerged []types.MergedDependency
	summary    types.DependencySummary
	err        error
}

func (s *stubExporter) WriteCSV(path string, merged []types.MergedDependency) error {
	s.csvPath = path
	s.csvMerged = merged
	return s.err
}

func (s *stubExporter) WriteJSON(path string, merged []types.MergedDependency, summary types.DependencySummary) error {
	s.jsonPath = path
	s.jsonMerged = merged
	s.summary = summary
	return s.err
}

func TestExport_CSVWritesFilteredList(t *testing.T) {
	api := &stubAPI{records: []types.RawDependencyRecord{
		rawRecord("org/l1", types.DetectionMethodSubmodule, true),
		rawRecord("org/e1", types.DetectionMethodWorkflow, false),
		rawRecord("org/l1", types.DetectionMethodWorkflow, true),
	}}
	exporter := &stubExporter{}
	svc := Service{API: api, Exporter: exporter}

	result, err := svc.Export(t.Context(), ExportRequest{
		Repository: "org/app",
		Scope:      types.ScopeLocal,
		Format:     types.ExportFormatCSV,
		OutputPath: "out/deps.csv",
	})
	require.NoError(t, err)

	assert.Equal(t, "out/deps.csv", result.OutputPath)
	assert.Equal(t, types.ExportFormatCSV, result.Format)
	assert.Equal(t, 1, result.Count)
	require.Len(t, exporter.csvMerged, 1)
	assert.Equal(t, "org/l1", exporter.csvMerged[0].DependencyFullName)
	assert.Empty(t, exporter.jsonPath)
}

func TestExport_JSONCarriesSummaryOverExportedEntries(t *testing.T) {
	api := &stubAPI{records: []types.RawDependencyRecord{
		rawRecord("org/l1", types.DetectionMethodSubmodule, true),
		rawRecord("org/e1", types.DetectionMethodWorkflow, false),
	}}
	exporter := &stubExporter{}
	svc := Service{API: api, Exporter: exporter}

	result, err := svc.Export(t.Context(), ExportRequest{
		Repository: "org/app",
		Scope:      types.ScopeExternal,
		Format:     types.ExportFormatJSON,
		OutputPath: "out/deps.json",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Count)
	require.Len(t, exporter.jsonMerged, 1)
	assert.Equal(t, "org/e1", exporter.jsonMerged[0].DependencyFullName)
	assert.Equal(t, 1, exporter.summary.Total)
	assert.Equal(t, 1, exporter.summary.External)
	assert.Equal(t, 0, exporter.summary.Local)
}

func TestExport_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		req  ExportRequest
	}{
		{name: "missing repository", req: ExportRequest{OutputPath: "out.csv"}},
		{name: "missing output path", req: ExportRequest{Repository: "org/app"}},
		{name: "bad scope", req: ExportRequest{Repository: "org/app", OutputPath: "out.csv", Scope: "nearby"}},
		{name: "bad format", req: ExportRequest{Repository: "org/app", OutputPath: "out.csv", Format: "xml"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			api := &stubAPI{}
			svc := Service{API: api, Exporter: &stubExporter{}}
			_, err := svc.Export(t.Context(), tc.req)
			require.Error(t, err)
			assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
			assert.Zero(t, api.calls, "validation must fail before any fetch")
		})
	}
}
