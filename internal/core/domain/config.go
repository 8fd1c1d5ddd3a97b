package domain

// Subcommand is the closed set of top-level CLI verbs. Format, clean and
// setup short-circuit before any staged build logic runs.
type Subcommand int

const (
	SubcommandBuild Subcommand = iota
	SubcommandTest
	SubcommandFormat
	SubcommandClean
	SubcommandSetup
)

func (s Subcommand) String() string {
	switch s {
	case SubcommandBuild:
		return "build"
	case SubcommandTest:
		return "test"
	case SubcommandFormat:
		return "format"
	case SubcommandClean:
		return "clean"
	case SubcommandSetup:
		return "setup"
	default:
		return "unknown"
	}
}

// CommandLine is the parsed invocation: the subcommand plus its options.
type CommandLine struct {
	Kind  Subcommand
	Paths []string

	// FailFast aborts at the first step failure. When false (test mode),
	// failures are deferred and reported together at the end.
	FailFast bool

	FormatCheck  bool
	CleanAll     bool
	SetupProfile string
}

// TargetConfig carries per-target overrides from the configuration file.
type TargetConfig struct {
	Cc     string
	Cxx    string
	Ar     string
	Ranlib string
	Linker string

	CrtStatic *bool
	NoStd     bool
	Profiler  *bool

	MuslRoot   string
	MuslLibdir string
	QemuRootfs string
}

// Config is the fully resolved orchestrator configuration: file-encoded
// settings merged with command-line flags, validated and ready to consume.
type Config struct {
	Channel Channel

	// Src is the source root; Out is where all build output goes.
	Src string
	Out string

	Build   TargetSelection
	Hosts   []TargetSelection
	Targets []TargetSelection

	TargetConfig map[TargetSelection]TargetConfig

	// Jobs is the configured parallel job count; 0 means "probe the
	// logical CPU count".
	Jobs int

	Optimize       bool
	FullBootstrap  bool
	LocalRebuild   bool
	IgnoreGit      bool
	Backtrace      bool
	Profiler       bool
	NativeBackend  bool
	UseFastLinker  bool
	RemapDebuginfo bool
	DebugLogging   bool

	Description   string
	ReleaseBranch string

	// InitialCompiler is the previous-stage compiler used to build stage 0
	// artifacts; InitialBuildTool is the per-package build tool driven for
	// every compilation.
	InitialCompiler  string
	InitialBuildTool string
	Formatter        string

	DryRun    bool
	Verbosity int

	Cmd CommandLine

	// Fingerprint is an xxhash over the canonical configuration bytes,
	// used as an invalidation input for output directories.
	Fingerprint uint64
}

// Target returns the per-target overrides, zero-valued when none are set.
func (c *Config) Target(t TargetSelection) TargetConfig {
	return c.TargetConfig[t]
}

// ProfilerEnabled reports whether profiling support is enabled for the
// given target, falling back to the global flag.
func (c *Config) ProfilerEnabled(t TargetSelection) bool {
	if tc, ok := c.TargetConfig[t]; ok && tc.Profiler != nil {
		return *tc.Profiler
	}
	return c.Profiler
}

// AnyProfilerEnabled reports whether profiling support is enabled for any
// configured target.
func (c *Config) AnyProfilerEnabled() bool {
	if c.Profiler {
		return true
	}
	for _, tc := range c.TargetConfig {
		if tc.Profiler != nil && *tc.Profiler {
			return true
		}
	}
	return false
}

// CrtStatic reports whether the target should statically link the C
// runtime. Windows MSVC targets always do.
func (c *Config) CrtStatic(t TargetSelection) *bool {
	if t.Contains("pc-windows-msvc") {
		yes := true
		return &yes
	}
	if tc, ok := c.TargetConfig[t]; ok {
		return tc.CrtStatic
	}
	return nil
}

// DebuginfoMapPrefix is the stable path debug info is remapped to when
// remapping is enabled, so artifacts do not leak the build machine's
// checkout location.
func (c *Config) DebuginfoMapPrefix() string {
	return "/source"
}

// AllTargets returns the union of the build platform, hosts, and targets,
// deduplicated, build platform first.
func (c *Config) AllTargets() []TargetSelection {
	seen := map[TargetSelection]struct{}{c.Build: {}}
	all := []TargetSelection{c.Build}
	for _, group := range [][]TargetSelection{c.Hosts, c.Targets} {
		for _, t := range group {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			all = append(all, t)
		}
	}
	return all
}

// IsHost reports whether the target is one of the configured hosts or the
// build platform itself.
func (c *Config) IsHost(t TargetSelection) bool {
	if t == c.Build {
		return true
	}
	for _, h := range c.Hosts {
		if h == t {
			return true
		}
	}
	return false
}
