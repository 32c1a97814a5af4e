package adapters

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"migrator-deps/internal/ports"
	"migrator-deps/internal/types"
)

type ExportFileAdapter struct{}

func NewExportFileAdapter() ExportFileAdapter {
	return ExportFileAdapter{}
}

var exportCSVHeader = []string{"full_name", "url", "detection_methods", "is_local", "metadata_count"}

// WriteCSV renders the merged dependency list as a CSV download. Rows
// keep the merged list's order; detection methods are joined with ';'
// inside a single cell.
func (a ExportFileAdapter) WriteCSV(path string, merged []types.MergedDependency) error {
	file, err := createExportFile(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(exportCSVHeader); err != nil {
		return exportWriteError(err)
	}
	for _, entry := range merged {
		methods := make([]string, 0, len(entry.DetectionMethods))
		for _, method := range entry.DetectionMethods {
			methods = append(methods, string(method))
		}
		row := []string{
			entry.DependencyFullName,
			entry.DependencyURL,
			strings.Join(methods, ";"),
			strconv.FormatBool(entry.IsLocal),
			strconv.Itoa(len(entry.AllMetadata)),
		}
		if err := writer.Write(row); err != nil {
			return exportWriteError(err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return exportWriteError(err)
	}
	return nil
}

// WriteJSON renders the merged list together with its summary, matching
// the shape of the backend's JSON export.
func (a ExportFileAdapter) WriteJSON(path string, merged []types.MergedDependency, summary types.DependencySummary) error {
	payload := struct {
		Dependencies []types.MergedDependency `json:"dependencies"`
		Summary      types.DependencySummary  `json:"summary"`
	}{
		Dependencies: merged,
		Summary:      summary,
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return exportWriteError(err)
	}
	file, err := createExportFile(path)
	if err != nil {
		return err
	}
	defer file.Close()
	if _, err := file.Write(append(data, '\n')); err != nil {
		return exportWriteError(err)
	}
	return nil
}

func createExportFile(path string) (*os.File, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("export path is empty")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to create export directory").
				WithCause(err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to create export file %s", path)).
			WithCause(err)
	}
	return file, nil
}

func exportWriteError(err error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg("failed to write export file").
		WithCause(err)
}

var _ ports.ExportPort = ExportFileAdapter{}
