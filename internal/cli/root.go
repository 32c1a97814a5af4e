package cli

import (
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"migrator-deps/internal/adapters"
	"migrator-deps/internal/app"
	"migrator-deps/internal/core"
	"migrator-deps/internal/types"
)

// version is set at build time via ldflags.
var version = "dev"

const envPrefix = "MIGRATOR_DEPS"

// newAppService is a package-level indirection so tests can substitute
// a service backed by fake ports.
var newAppService = app.NewService

type RootConfig struct {
	ConfigFile string
	Profile    string
	LogLevel   string
}

func Execute() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(exitCodeForError(err))
	}
}

func newRootCommand() *cobra.Command {
	cfg := RootConfig{}
	cmd := &cobra.Command{
		Use:     "migrator-deps",
		Short:   "Repository dependency tooling for the GitHub Migrator",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(cfg.ConfigFile); err != nil {
				return err
			}
			setupLogging(viper.GetString("log_level"))
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&cfg.ConfigFile, "config", "", "Config file path")
	cmd.PersistentFlags().StringVar(&cfg.Profile, "profile", "", "Connection profile path")
	cmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", "info", "Log level")
	_ = viper.BindPFlag("profile", cmd.PersistentFlags().Lookup("profile"))
	_ = viper.BindPFlag("log_level", cmd.PersistentFlags().Lookup("log-level"))

	cmd.AddCommand(newValidateCommand())
	cmd.AddCommand(newDepsCommand())
	cmd.AddCommand(newSummaryCommand())
	cmd.AddCommand(newDependentsCommand())
	cmd.AddCommand(newExportCommand())
	cmd.AddCommand(newWatchCommand())
	return cmd
}

func initConfig(configFile string) error {
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to read config file").
				WithCause(err)
		}
		return nil
	}

	viper.SetConfigName("migrator-deps")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/migrator-deps")
	if err := viper.ReadInConfig(); err != nil {
		return nil
	}
	return nil
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// loadRuntimeProfile builds the connection profile for a command run:
// an explicit profile file wins, otherwise the profile is assembled
// from viper keys (flags, env, config file).
func loadRuntimeProfile(cmd *cobra.Command) (types.Profile, error) {
	path := viper.GetString("profile")
	var profile types.Profile
	if strings.TrimSpace(path) != "" {
		loaded, err := adapters.NewProfileFileAdapter().LoadProfile(path)
		if err != nil {
			return types.Profile{}, err
		}
		profile = loaded
	} else {
		profile = types.Profile{
			Endpoint:         viper.GetString("endpoint"),
			Token:            viper.GetString("token"),
			Organization:     viper.GetString("organization"),
			PollIntervalSec:  viper.GetInt("poll_interval"),
			HTTPTimeoutSec:   viper.GetInt("http_timeout"),
			HTTPRetries:      viper.GetInt("http_retries"),
			HTTPRetryDelayMs: viper.GetInt("http_retry_delay_ms"),
		}
	}
	if strings.TrimSpace(profile.APIVersion) == "" {
		profile.APIVersion = "migrator/v1"
	}
	if err := core.ValidateProfile(cmd.Context(), profile); err != nil {
		return types.Profile{}, err
	}
	return profile, nil
}

func exitCodeForError(err error) int {
	switch errbuilder.CodeOf(err) {
	case errbuilder.CodeInvalidArgument, errbuilder.CodeAlreadyExists:
		return 2
	case errbuilder.CodePermissionDenied:
		return 3
	case errbuilder.CodeFailedPrecondition:
		return 4
	case errbuilder.CodeNotFound:
		return 5
	case errbuilder.CodeInternal:
		return 5
	default:
		return 1
	}
}
