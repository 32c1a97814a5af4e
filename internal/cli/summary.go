package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"migrator-deps/internal/app"
)

func newSummaryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary <repository>",
		Short: "Show dependency counts for a repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(cmd.Context(), cmd, args[0])
		},
	}
	return cmd
}

func runSummary(ctx context.Context, cmd *cobra.Command, repository string) error {
	profile, err := loadRuntimeProfile(cmd)
	if err != nil {
		return err
	}
	service := newAppService(profile)
	result, err := service.Dependencies(ctx, app.DependenciesRequest{Repository: repository})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "dependencies of %s\n", result.Repository)
	printSummary(cmd, result.Summary)
	return nil
}
