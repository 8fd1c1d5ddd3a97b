package domain

import (
	"path/filepath"
	"strings"
)

// Crate is one node of the workspace package graph, built once at startup
// from workspace metadata and read-only afterward.
type Crate struct {
	Name InternedString
	Deps map[InternedString]struct{}
	// ID is the manifest identifier reported by the per-package build tool.
	ID string
	// Path is the absolute filesystem path of the package root.
	Path string
}

// LocalPath returns the crate's path relative to the source root.
func (c *Crate) LocalPath(srcRoot string) string {
	rel, err := filepath.Rel(srcRoot, c.Path)
	if err != nil {
		return c.Path
	}
	return rel
}

// DependsOn reports whether name is a direct dependency of this crate.
func (c *Crate) DependsOn(name string) bool {
	_, ok := c.Deps[NewInternedString(name)]
	return ok
}

// HasPrefix reports whether the crate name starts with the given prefix,
// used to group compiler-internal packages.
func (c *Crate) HasPrefix(prefix string) bool {
	return strings.HasPrefix(c.Name.String(), prefix)
}
