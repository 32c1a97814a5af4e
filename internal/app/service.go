package app

import (
	"time"

	"migrator-deps/internal/adapters"
	"migrator-deps/internal/ports"
	"migrator-deps/internal/types"
)

type Service struct {
	API      ports.MigratorAPIPort
	Profiles ports.ProfilePort
	Exporter ports.ExportPort
	Clock    func() time.Time
}

// NewService wires the real adapters against the given connection
// profile. The API response cache TTL follows the profile's poll
// interval so a watch loop re-fetches at most once per tick.
func NewService(profile types.Profile) Service {
	return Service{
		API: adapters.NewMigratorAPIAdapter(
			profile.Endpoint,
			profile.Token,
			profile.HTTPTimeoutSec,
			profile.HTTPRetries,
			profile.HTTPRetryDelayMs,
			profile.PollIntervalSec,
		),
		Profiles: adapters.NewProfileFileAdapter(),
		Exporter: adapters.NewExportFileAdapter(),
		Clock:    time.Now,
	}
}
