package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"migrator-deps/internal/core"
	"migrator-deps/internal/types"
)

// Export writes the full scope-filtered merged list to a file, without
// pagination. The JSON form carries the summary computed over the
// exported entries.
func (s Service) Export(ctx context.Context, req ExportRequest) (ExportResult, error) {
	repository := strings.TrimSpace(req.Repository)
	if repository == "" {
		return ExportResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("repository is required")
	}
	scope, err := types.ParseScope(string(req.Scope))
	if err != nil {
		return ExportResult{}, err
	}
	format, err := types.ParseExportFormat(string(req.Format))
	if err != nil {
		return ExportResult{}, err
	}
	outputPath := strings.TrimSpace(req.OutputPath)
	if outputPath == "" {
		return ExportResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output path is required")
	}

	records, err := s.API.FetchDependencies(ctx, repository)
	if err != nil {
		return ExportResult{}, err
	}
	filtered := core.FilterScope(core.Aggregate(records), scope)

	switch format {
	case types.ExportFormatJSON:
		err = s.Exporter.WriteJSON(outputPath, filtered, core.Summarize(filtered))
	default:
		err = s.Exporter.WriteCSV(outputPath, filtered)
	}
	if err != nil {
		return ExportResult{}, err
	}

	log.Ctx(ctx).Info().
		Str("repository", repository).
		Str("path", outputPath).
		Int("entries", len(filtered)).
		Msg("export written")

	return ExportResult{
		OutputPath: outputPath,
		Format:     format,
		Count:      len(filtered),
	}, nil
}
