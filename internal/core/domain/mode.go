package domain

// Mode classifies what is being built and therefore which output
// subdirectory and which producer-compiler rules apply. Each mode writes
// into its own "stageN<suffix>" directory.
type Mode int

const (
	// ModeStd builds the standard library ("stageN-std").
	ModeStd Mode = iota

	// ModeCompiler builds the compiler itself ("stageN-compiler").
	ModeCompiler

	// ModeCodegenBackend builds a pluggable code-generation backend
	// ("stageN-codegen").
	ModeCodegenBackend

	// ModeToolBootstrap builds a tool against the stage0 snapshot compiler
	// in its entirety ("stage0-bootstrap-tools").
	ModeToolBootstrap

	// ModeToolUsingStd builds a tool against the locally built standard
	// library ("stageN-tools").
	ModeToolUsingStd

	// ModeToolUsingCompiler builds a tool that links the locally built
	// compiler, such as the documentation generator ("stageN-tools").
	ModeToolUsingCompiler
)

// IsTool reports whether this mode builds an auxiliary tool rather than a
// toolchain component.
func (m Mode) IsTool() bool {
	switch m {
	case ModeToolBootstrap, ModeToolUsingStd, ModeToolUsingCompiler:
		return true
	default:
		return false
	}
}

// MustSupportDynamicLoading reports whether artifacts of this mode are
// loaded at runtime by the compiler and therefore must be linkable as
// shared objects.
func (m Mode) MustSupportDynamicLoading() bool {
	return m == ModeStd || m == ModeCodegenBackend
}

// OutputSuffix returns the stage directory suffix for this mode. The two
// tool-using modes share a directory; all other suffixes are distinct.
func (m Mode) OutputSuffix() string {
	switch m {
	case ModeStd:
		return "-std"
	case ModeCompiler:
		return "-compiler"
	case ModeCodegenBackend:
		return "-codegen"
	case ModeToolBootstrap:
		return "-bootstrap-tools"
	case ModeToolUsingStd, ModeToolUsingCompiler:
		return "-tools"
	default:
		return "-unknown"
	}
}

func (m Mode) String() string {
	switch m {
	case ModeStd:
		return "std"
	case ModeCompiler:
		return "compiler"
	case ModeCodegenBackend:
		return "codegen-backend"
	case ModeToolBootstrap:
		return "tool-bootstrap"
	case ModeToolUsingStd:
		return "tool-std"
	case ModeToolUsingCompiler:
		return "tool-compiler"
	default:
		return "unknown"
	}
}
