package core

import (
	"testing"

	"github.com/stretchr/testify/require"

	"migrator-deps/internal/types"
)

func baseProfile() types.Profile {
	return types.Profile{
		APIVersion:      "migrator/v1",
		Endpoint:        "https://migrator.example.com",
		Token:           "secret",
		Organization:    "example-org",
		PollIntervalSec: 30,
	}
}

func TestValidateProfileCases(t *testing.T) {
	tests := []struct {
		name    string
		build   func() types.Profile
		wantErr bool
	}{
		{
			name:  "valid profile",
			build: baseProfile,
		},
		{
			name: "unsupported api version",
			build: func() types.Profile {
				profile := baseProfile()
				profile.APIVersion = "migrator/v2"
				return profile
			},
			wantErr: true,
		},
		{
			name: "endpoint without scheme",
			build: func() types.Profile {
				profile := baseProfile()
				profile.Endpoint = "migrator.example.com"
				return profile
			},
			wantErr: true,
		},
		{
			name: "endpoint with unsupported scheme",
			build: func() types.Profile {
				profile := baseProfile()
				profile.Endpoint = "ftp://migrator.example.com"
				return profile
			},
			wantErr: true,
		},
		{
			name: "negative poll interval",
			build: func() types.Profile {
				profile := baseProfile()
				profile.PollIntervalSec = -1
				return profile
			},
			wantErr: true,
		},
		{
			name: "negative retry settings",
			build: func() types.Profile {
				profile := baseProfile()
				profile.HTTPRetries = -3
				return profile
			},
			wantErr: true,
		},
		{
			name: "zero tuning values fall back to defaults",
			build: func() types.Profile {
				profile := baseProfile()
				profile.PollIntervalSec = 0
				profile.HTTPTimeoutSec = 0
				return profile
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateProfile(t.Context(), tc.build())
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
