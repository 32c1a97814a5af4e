package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"migrator-deps/internal/app"
)

func newDependentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dependents <repository>",
		Short: "List repositories that depend on the given one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDependents(cmd.Context(), cmd, args[0])
		},
	}
	return cmd
}

func runDependents(ctx context.Context, cmd *cobra.Command, repository string) error {
	profile, err := loadRuntimeProfile(cmd)
	if err != nil {
		return err
	}
	service := newAppService(profile)
	result, err := service.Dependents(ctx, app.DependentsRequest{Repository: repository})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(result.Dependents) == 0 {
		fmt.Fprintf(out, "no dependents found for %s\n", result.Repository)
		return nil
	}
	for _, dependent := range result.Dependents {
		fmt.Fprintf(out, "%-50s %-12s %s\n", dependent.FullName, dependent.Status, joinMethods(dependent.DependencyTypes))
	}
	fmt.Fprintf(out, "%d dependents\n", len(result.Dependents))
	return nil
}
