package ports

import "migrator-deps/internal/types"

type ProfilePort interface {
	LoadProfile(path string) (types.Profile, error)
}
