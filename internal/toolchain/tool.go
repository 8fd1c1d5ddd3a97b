// Package toolchain discovers and selects the native C/C++ toolchain
// (compiler, archiver, ranlib, linker) for every configured target.
package toolchain

import (
	"path/filepath"
	"strings"
)

// Family is the compiler family a tool belongs to. Flag syntax differs
// between families, so flag derivation needs to know it.
type Family int

const (
	FamilyUnknown Family = iota
	FamilyGcc
	FamilyClang
	FamilyClangCl
)

// Tool is a probed native tool: the executable plus any default arguments
// discovered for it.
type Tool struct {
	Path string
	Args []string
}

// Family classifies the tool by its executable name.
func (t Tool) Family() Family {
	base := strings.TrimSuffix(filepath.Base(t.Path), ".exe")
	switch {
	case strings.HasSuffix(base, "clang-cl"):
		return FamilyClangCl
	case strings.HasSuffix(base, "clang") || strings.HasSuffix(base, "clang++"):
		return FamilyClang
	case strings.HasSuffix(base, "gcc") || strings.HasSuffix(base, "g++"):
		return FamilyGcc
	default:
		return FamilyUnknown
	}
}

// IsZero reports whether the tool was never probed.
func (t Tool) IsZero() bool {
	return t.Path == ""
}
