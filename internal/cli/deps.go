package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"migrator-deps/internal/app"
	"migrator-deps/internal/types"
)

type depsOptions struct {
	Scope    string
	Page     int
	PageSize int
}

func newDepsCommand() *cobra.Command {
	opts := depsOptions{}
	cmd := &cobra.Command{
		Use:   "deps <repository>",
		Short: "List merged dependencies for a repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeps(cmd.Context(), cmd, args[0], opts)
		},
	}
	cmd.Flags().StringVar(&opts.Scope, "scope", "all", "Scope filter (all, local, external)")
	cmd.Flags().IntVar(&opts.Page, "page", 1, "Page number")
	cmd.Flags().IntVar(&opts.PageSize, "page-size", 0, "Page size (default 20)")
	_ = viper.BindPFlag("scope", cmd.Flags().Lookup("scope"))
	_ = viper.BindPFlag("page_size", cmd.Flags().Lookup("page-size"))
	return cmd
}

func runDeps(ctx context.Context, cmd *cobra.Command, repository string, opts depsOptions) error {
	profile, err := loadRuntimeProfile(cmd)
	if err != nil {
		return err
	}
	service := newAppService(profile)
	result, err := service.Dependencies(ctx, app.DependenciesRequest{
		Repository: repository,
		Scope:      types.Scope(resolveString(cmd, opts.Scope, "scope", "scope")),
		Page:       opts.Page,
		PageSize:   resolveInt(cmd, opts.PageSize, "page_size", "page-size"),
	})
	if err != nil {
		return err
	}
	printDependencies(cmd, result)
	return nil
}

func printDependencies(cmd *cobra.Command, result app.DependenciesResult) {
	out := cmd.OutOrStdout()
	if result.FilteredTotal == 0 {
		fmt.Fprintf(out, "no dependencies found for %s (scope: %s)\n", result.Repository, result.Scope)
		return
	}
	for _, entry := range result.Dependencies {
		locality := "external"
		if entry.IsLocal {
			locality = "local"
		}
		fmt.Fprintf(out, "%-50s %-8s %s\n", entry.DependencyFullName, locality, joinMethods(entry.DetectionMethods))
	}
	fmt.Fprintf(out, "page %d/%d  showing %d of %d (scope: %s)\n",
		result.Page, result.PageCount, len(result.Dependencies), result.FilteredTotal, result.Scope)
	printSummary(cmd, result.Summary)
}

func printSummary(cmd *cobra.Command, summary types.DependencySummary) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "total: %d  local: %d  external: %d\n", summary.Total, summary.Local, summary.External)
	for _, method := range []types.DetectionMethod{
		types.DetectionMethodSubmodule,
		types.DetectionMethodWorkflow,
		types.DetectionMethodDependencyGraph,
		types.DetectionMethodPackage,
	} {
		if count := summary.ByType[method]; count > 0 {
			fmt.Fprintf(out, "  %s: %d\n", method, count)
		}
	}
}

func joinMethods(methods []types.DetectionMethod) string {
	names := make([]string, 0, len(methods))
	for _, method := range methods {
		names = append(names, string(method))
	}
	return strings.Join(names, ",")
}

func resolveInt(cmd *cobra.Command, value int, key string, flagName string) int {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetInt(key)
}
