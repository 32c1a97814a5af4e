package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"migrator-deps/internal/core"
)

func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	path := strings.TrimSpace(req.ProfilePath)
	if path == "" {
		return ValidateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("profile path is required")
	}
	profile, err := s.Profiles.LoadProfile(path)
	if err != nil {
		return ValidateResult{}, err
	}
	if err := core.ValidateProfile(ctx, profile); err != nil {
		return ValidateResult{}, err
	}
	return ValidateResult{Endpoint: profile.Endpoint}, nil
}
