package core

import (
	"context"
	"net/url"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"

	"migrator-deps/internal/types"
)

const profileAPIVersion = "migrator/v1"

// ValidateProfile checks a connection profile before any command uses
// it to reach the backend.
func ValidateProfile(ctx context.Context, profile types.Profile) error {
	assert.NotEmpty(ctx, profile.APIVersion, "api_version must be set")
	assert.NotEmpty(ctx, profile.Endpoint, "endpoint must be set")

	if profile.APIVersion != profileAPIVersion {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unsupported profile api_version: " + profile.APIVersion)
	}
	endpoint := strings.TrimSpace(profile.Endpoint)
	parsed, err := url.Parse(endpoint)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("endpoint must be an http(s) URL")
	}
	if profile.PollIntervalSec < 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("poll_interval must not be negative")
	}
	if profile.HTTPTimeoutSec < 0 || profile.HTTPRetries < 0 || profile.HTTPRetryDelayMs < 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("http client settings must not be negative")
	}
	return nil
}
