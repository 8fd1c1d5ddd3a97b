// Package config provides the configuration loader for strap.
package config

import (
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
	"go.velt.ch/strap/internal/core/domain"
	"gopkg.in/yaml.v3"
)

// Defaults applied when the configuration file leaves a knob unset.
const (
	defaultOut           = "build"
	defaultReleaseBranch = "origin/main"
	defaultBuildTool     = "forge"
	defaultCompiler      = "veltc"
	defaultFormatter     = "veltfmt"
)

// Loader implements ports.ConfigLoader from a YAML file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads, validates and resolves the configuration at path. The raw
// file bytes are also hashed into the config fingerprint, which the
// orchestrator uses as an invalidation input for output directories.
func (l *Loader) Load(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	var file Strapfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	cfg, err := resolve(&file)
	if err != nil {
		return nil, err
	}
	cfg.Fingerprint = xxhash.Sum64(data)
	return cfg, nil
}

func resolve(file *Strapfile) (*domain.Config, error) {
	if file.Build == "" {
		return nil, zerr.New("config is missing the build triple")
	}

	cfg := &domain.Config{
		Channel: domain.Channel(orDefault(file.Channel, string(domain.ChannelDev))),

		Src: orDefault(file.Src, "."),
		Out: orDefault(file.Out, defaultOut),

		Build:   domain.NewTarget(file.Build),
		Hosts:   targets(file.Hosts),
		Targets: targets(file.Targets),

		Jobs: file.Jobs,

		Optimize:       orTrue(file.Optimize),
		FullBootstrap:  file.FullBootstrap,
		LocalRebuild:   file.LocalRebuild,
		IgnoreGit:      file.IgnoreGit,
		Backtrace:      orTrue(file.Backtrace),
		Profiler:       file.Profiler,
		NativeBackend:  orTrue(file.NativeBackend),
		UseFastLinker:  file.UseFastLinker,
		RemapDebuginfo: file.RemapDebuginfo,
		DebugLogging:   file.DebugLogging,

		Description:   file.Description,
		ReleaseBranch: orDefault(file.ReleaseBranch, defaultReleaseBranch),

		InitialCompiler:  orDefault(file.InitialCompiler, defaultCompiler),
		InitialBuildTool: orDefault(file.InitialBuildTool, defaultBuildTool),
		Formatter:        orDefault(file.Formatter, defaultFormatter),

		TargetConfig: make(map[domain.TargetSelection]domain.TargetConfig, len(file.TargetConfig)),
	}

	if abs, err := filepath.Abs(cfg.Src); err == nil {
		cfg.Src = abs
	}
	if !filepath.IsAbs(cfg.Out) {
		cfg.Out = filepath.Join(cfg.Src, cfg.Out)
	}

	for triple, dto := range file.TargetConfig {
		cfg.TargetConfig[domain.NewTarget(triple)] = domain.TargetConfig{
			Cc:         dto.Cc,
			Cxx:        dto.Cxx,
			Ar:         dto.Ar,
			Ranlib:     dto.Ranlib,
			Linker:     dto.Linker,
			CrtStatic:  dto.CrtStatic,
			NoStd:      dto.NoStd,
			Profiler:   dto.Profiler,
			MuslRoot:   dto.MuslRoot,
			MuslLibdir: dto.MuslLibdir,
			QemuRootfs: dto.QemuRootfs,
		}
	}

	return cfg, nil
}

func targets(triples []string) []domain.TargetSelection {
	res := make([]domain.TargetSelection, len(triples))
	for i, t := range triples {
		res[i] = domain.NewTarget(t)
	}
	return res
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func orTrue(b *bool) bool {
	return b == nil || *b
}
