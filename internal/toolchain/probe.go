package toolchain

import (
	"os"
	"strings"

	"go.velt.ch/strap/internal/core/domain"
)

// Probe discovers the native toolchain for every configured target and
// returns a resolver over the results. Discovery order per tool is
// explicit configuration, then a target-qualified environment variable,
// then a cross prefix convention, then the plain system default. Nothing
// is executed; the sanity checker verifies the chosen commands exist.
func Probe(cfg *domain.Config) *Resolver {
	r := &Resolver{
		cfg:    cfg,
		cc:     map[domain.TargetSelection]Tool{},
		cxx:    map[domain.TargetSelection]Tool{},
		ar:     map[domain.TargetSelection]string{},
		ranlib: map[domain.TargetSelection]string{},
	}
	for _, target := range cfg.AllTargets() {
		tc := cfg.Target(target)

		cc := splitTool(firstNonEmpty(
			tc.Cc,
			envTool("CC", target, cfg.Build),
			crossTool(target, cfg.Build, "gcc"),
			"cc",
		))
		r.cc[target] = cc

		r.ar[target] = firstNonEmpty(
			tc.Ar,
			envTool("AR", target, cfg.Build),
			archiverFor(cc.Path),
		)
		r.ranlib[target] = firstNonEmpty(
			tc.Ranlib,
			envTool("RANLIB", target, cfg.Build),
			crossTool(target, cfg.Build, "ranlib"),
			"ranlib",
		)

		// A C++ compiler is only needed for hosts.
		if cfg.IsHost(target) || target == cfg.Build {
			r.cxx[target] = splitTool(firstNonEmpty(
				tc.Cxx,
				envTool("CXX", target, cfg.Build),
				crossTool(target, cfg.Build, "g++"),
				"c++",
			))
		}
	}
	return r
}

// envTool looks up a target-qualified environment variable such as
// CC_x86_64_unknown_linux_gnu, falling back to the bare variable for the
// build triple itself.
func envTool(kind string, target, build domain.TargetSelection) string {
	qualified := kind + "_" + strings.ReplaceAll(target.Triple(), "-", "_")
	if v := os.Getenv(qualified); v != "" {
		return v
	}
	if target == build {
		return os.Getenv(kind)
	}
	return ""
}

// crossTool applies the <triple>-<tool> cross prefix convention for
// targets other than the build triple.
func crossTool(target, build domain.TargetSelection, tool string) string {
	if target == build {
		return ""
	}
	return target.Triple() + "-" + tool
}

// splitTool breaks a configured compiler value into the command and its
// default arguments, so settings like "ccache gcc" or "gcc --sysroot=/x"
// carry through to every invocation.
func splitTool(value string) Tool {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return Tool{}
	}
	return Tool{Path: fields[0], Args: fields[1:]}
}

// archiverFor derives the matching archiver from the C compiler name.
func archiverFor(cc string) string {
	switch {
	case strings.Contains(cc, "clang"):
		return "llvm-ar"
	case strings.HasSuffix(cc, "-gcc"):
		return strings.TrimSuffix(cc, "gcc") + "ar"
	default:
		return ""
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
