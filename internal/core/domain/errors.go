package domain

import "go.trai.ch/zerr"

var (
	// ErrNotConfiguredAsHost is returned when a C++ toolchain is requested
	// for a target that was declared only as a build target, not a host.
	ErrNotConfiguredAsHost = zerr.New("target is not configured as a host, only as a target")

	// ErrToolchainNotProbed is returned when a native toolchain lookup is
	// made for a target that was never configured.
	ErrToolchainNotProbed = zerr.New("no native toolchain probed for target")

	// ErrUnknownDependencyTag is returned when a stamp-file record carries
	// an unrecognized dependency-class tag byte.
	ErrUnknownDependencyTag = zerr.New("unknown dependency type tag in stamp file")

	// ErrCrateAlreadyExists is returned when adding a crate whose name is
	// already present in the graph.
	ErrCrateAlreadyExists = zerr.New("crate already exists")

	// ErrCrateNotFound is returned when a closure is requested for a root
	// crate that is not in the graph.
	ErrCrateNotFound = zerr.New("crate not found")

	// ErrMissingVersionLine is returned when a package manifest contains
	// no `version = "x.y.z"` line.
	ErrMissingVersionLine = zerr.New("no version line in package manifest")

	// ErrStepAlreadyExists is returned when registering a step whose name
	// is already taken.
	ErrStepAlreadyExists = zerr.New("step already exists")

	// ErrUnknownStep is returned when a requested path matches no
	// registered step.
	ErrUnknownStep = zerr.New("unknown step")

	// ErrNoStepsSelected is returned when a step selection resolves to
	// nothing runnable.
	ErrNoStepsSelected = zerr.New("no steps selected")

	// ErrDeferredFailures is returned after a no-fail-fast run during
	// which at least one command failed.
	ErrDeferredFailures = zerr.New("commands did not execute successfully")

	// ErrSourceMissing is returned by install when the file to install
	// does not exist.
	ErrSourceMissing = zerr.New("file to install not found")
)
