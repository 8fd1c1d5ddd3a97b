package domain

import "go.trai.ch/zerr"

// DependencyType classifies a build artifact recorded in a stamp file.
// The class controls how the artifact is later copied and linked.
type DependencyType int

const (
	// DepHost marks build-time-only artifacts, such as macro-expansion
	// helpers, that run on the build machine and never ship.
	DepHost DependencyType = iota

	// DepTarget marks ordinary artifacts linked into target binaries.
	DepTarget

	// DepTargetSelfContained marks target artifacts that must ship
	// self-contained, with no assumption of a system-provided equivalent.
	DepTargetSelfContained
)

// TagByte returns the single-byte ASCII tag written at the start of a
// stamp-file record for this class.
func (d DependencyType) TagByte() byte {
	switch d {
	case DepHost:
		return 'h'
	case DepTargetSelfContained:
		return 's'
	default:
		return 't'
	}
}

// ParseDependencyTag maps a stamp-record tag byte back to its class.
// Unrecognized tags are a hard error, never a default class.
func ParseDependencyTag(b byte) (DependencyType, error) {
	switch b {
	case 'h':
		return DepHost, nil
	case 's':
		return DepTargetSelfContained, nil
	case 't':
		return DepTarget, nil
	default:
		return 0, zerr.With(ErrUnknownDependencyTag, "tag", string(b))
	}
}

func (d DependencyType) String() string {
	switch d {
	case DepHost:
		return "host"
	case DepTargetSelfContained:
		return "target-self-contained"
	default:
		return "target"
	}
}
