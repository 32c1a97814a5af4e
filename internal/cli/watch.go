package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"migrator-deps/internal/app"
	"migrator-deps/internal/types"
)

type watchOptions struct {
	Scope       string
	IntervalSec int
}

func newWatchCommand() *cobra.Command {
	opts := watchOptions{}
	cmd := &cobra.Command{
		Use:   "watch <repository>",
		Short: "Poll the dependency view until interrupted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd.Context(), cmd, args[0], opts)
		},
	}
	cmd.Flags().StringVar(&opts.Scope, "scope", "all", "Scope filter (all, local, external)")
	cmd.Flags().IntVar(&opts.IntervalSec, "interval", 0, "Poll interval in seconds (default profile poll_interval, else 30)")
	_ = viper.BindPFlag("interval", cmd.Flags().Lookup("interval"))
	return cmd
}

func runWatch(ctx context.Context, cmd *cobra.Command, repository string, opts watchOptions) error {
	profile, err := loadRuntimeProfile(cmd)
	if err != nil {
		return err
	}
	interval := resolveInt(cmd, opts.IntervalSec, "interval", "interval")
	if interval <= 0 {
		interval = profile.PollIntervalSec
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	service := newAppService(profile)
	return service.Watch(ctx, app.WatchRequest{
		Repository: repository,
		Scope:      types.Scope(opts.Scope),
		Interval:   time.Duration(interval) * time.Second,
	}, func(result app.DependenciesResult) error {
		fmt.Fprintf(cmd.OutOrStdout(), "[%s] ", time.Now().Format("15:04:05"))
		printDependencies(cmd, result)
		return nil
	})
}
