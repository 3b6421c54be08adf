package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownScope is returned by [ParseScope] for anything other than
// "private" or "shared".
var ErrUnknownScope = errors.New("unknown database scope")

// Scope selects a partition of the record store: zones owned by the current
// principal, or zones shared with the current principal by somebody else.
type Scope string

const (
	// ScopePrivate contains the zones owned by the current principal,
	// including its default zone.
	ScopePrivate Scope = "private"

	// ScopeShared contains the zones other principals have shared with the
	// current principal. It never exposes a default zone.
	ScopeShared Scope = "shared"
)

// ParseScope converts a raw path segment or config value into a [Scope].
func ParseScope(raw string) (Scope, error) {
	switch Scope(strings.ToLower(strings.TrimSpace(raw))) {
	case ScopePrivate:
		return ScopePrivate, nil
	case ScopeShared:
		return ScopeShared, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownScope, raw)
	}
}

func (s Scope) String() string {
	return string(s)
}
