package domain

import (
	"strings"
	"unique"
)

// TargetSelection identifies a platform (host or cross-compilation target)
// by its triple string, e.g. "x86_64-unknown-linux-gnu". The triple is
// interned so that TargetSelection values are cheap to compare and can be
// used as map keys throughout the orchestrator.
type TargetSelection struct {
	h unique.Handle[string]
}

// NewTarget creates a TargetSelection from a triple string.
func NewTarget(triple string) TargetSelection {
	return TargetSelection{h: unique.Make(triple)}
}

// Triple returns the full triple string.
func (t TargetSelection) Triple() string {
	var zero unique.Handle[string]
	if t.h == zero {
		return ""
	}
	return t.h.Value()
}

// IsZero reports whether this selection was never set.
func (t TargetSelection) IsZero() bool {
	var zero unique.Handle[string]
	return t.h == zero
}

// Contains reports whether the triple contains the given substring.
// Platform-family checks (OS, environment, vendor) are all expressed this
// way over the triple text.
func (t TargetSelection) Contains(s string) bool {
	return strings.Contains(t.Triple(), s)
}

func (t TargetSelection) String() string {
	return t.Triple()
}

// MarshalText implements encoding.TextMarshaler.
func (t TargetSelection) MarshalText() ([]byte, error) {
	return []byte(t.Triple()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TargetSelection) UnmarshalText(text []byte) error {
	t.h = unique.Make(string(text))
	return nil
}
