package config

// Strapfile is the YAML structure of the strap.yaml configuration file.
// Everything here is optional except the build triple; flags parsed from
// the command line are layered on top after loading.
type Strapfile struct {
	Channel string `yaml:"channel"`

	Src string `yaml:"src"`
	Out string `yaml:"out"`

	Build   string   `yaml:"build"`
	Hosts   []string `yaml:"hosts"`
	Targets []string `yaml:"targets"`

	Jobs int `yaml:"jobs"`

	Optimize       *bool `yaml:"optimize"`
	FullBootstrap  bool  `yaml:"fullBootstrap"`
	LocalRebuild   bool  `yaml:"localRebuild"`
	IgnoreGit      bool  `yaml:"ignoreGit"`
	Backtrace      *bool `yaml:"backtrace"`
	Profiler       bool  `yaml:"profiler"`
	NativeBackend  *bool `yaml:"nativeBackend"`
	UseFastLinker  bool  `yaml:"useFastLinker"`
	RemapDebuginfo bool  `yaml:"remapDebuginfo"`
	DebugLogging   bool  `yaml:"debugLogging"`

	Description   string `yaml:"description"`
	ReleaseBranch string `yaml:"releaseBranch"`

	InitialCompiler  string `yaml:"initialCompiler"`
	InitialBuildTool string `yaml:"initialBuildTool"`
	Formatter        string `yaml:"formatter"`

	TargetConfig map[string]TargetDTO `yaml:"targetConfig"`
}

// TargetDTO is a per-target override block in the configuration file.
type TargetDTO struct {
	Cc     string `yaml:"cc"`
	Cxx    string `yaml:"cxx"`
	Ar     string `yaml:"ar"`
	Ranlib string `yaml:"ranlib"`
	Linker string `yaml:"linker"`

	CrtStatic *bool `yaml:"crtStatic"`
	NoStd     bool  `yaml:"noStd"`
	Profiler  *bool `yaml:"profiler"`

	MuslRoot   string `yaml:"muslRoot"`
	MuslLibdir string `yaml:"muslLibdir"`
	QemuRootfs string `yaml:"qemuRootfs"`
}
