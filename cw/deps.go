package cw

import (
	"github.com/go-kit/log"
)

// Deps bundles the collaborators a contract entry point receives.
type Deps struct {
	Storage Storage
	Api     Api
	Querier Querier
	Logger  log.Logger
}

// Log returns the logger, or a no-op logger if none is set.
func (d Deps) Log() log.Logger {
	if d.Logger == nil {
		return log.NewNopLogger()
	}
	return d.Logger
}

// Unique returns items with duplicates removed, keeping the first
// occurrence of each.
func Unique[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
