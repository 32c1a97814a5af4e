package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"migrator-deps/internal/app"
	"migrator-deps/internal/types"
)

type exportOptions struct {
	Scope  string
	Format string
	Output string
}

func newExportCommand() *cobra.Command {
	opts := exportOptions{}
	cmd := &cobra.Command{
		Use:   "export <repository>",
		Short: "Export the merged dependency list to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.Context(), cmd, args[0], opts)
		},
	}
	cmd.Flags().StringVar(&opts.Scope, "scope", "all", "Scope filter (all, local, external)")
	cmd.Flags().StringVar(&opts.Format, "format", "csv", "Export format (csv, json)")
	cmd.Flags().StringVar(&opts.Output, "output", "", "Output file path")
	_ = viper.BindPFlag("export_format", cmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("export_output", cmd.Flags().Lookup("output"))
	return cmd
}

func runExport(ctx context.Context, cmd *cobra.Command, repository string, opts exportOptions) error {
	profile, err := loadRuntimeProfile(cmd)
	if err != nil {
		return err
	}
	service := newAppService(profile)
	result, err := service.Export(ctx, app.ExportRequest{
		Repository: repository,
		Scope:      types.Scope(opts.Scope),
		Format:     types.ExportFormat(resolveString(cmd, opts.Format, "export_format", "format")),
		OutputPath: resolveString(cmd, opts.Output, "export_output", "output"),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "exported %d dependencies to %s (%s)\n", result.Count, result.OutputPath, result.Format)
	return nil
}
