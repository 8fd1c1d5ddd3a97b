package toolchain

import (
	"strings"

	"go.trai.ch/zerr"
	"go.velt.ch/strap/internal/core/domain"
)

// Resolver answers toolchain queries for targets discovered by Probe.
type Resolver struct {
	cfg    *domain.Config
	cc     map[domain.TargetSelection]Tool
	cxx    map[domain.TargetSelection]Tool
	ar     map[domain.TargetSelection]string
	ranlib map[domain.TargetSelection]string
}

// Cc returns the C compiler for the target.
func (r *Resolver) Cc(target domain.TargetSelection) (Tool, error) {
	tool, ok := r.cc[target]
	if !ok {
		return Tool{}, zerr.With(domain.ErrToolchainNotProbed, "target", target.Triple())
	}
	return tool, nil
}

// Cxx returns the C++ compiler for the target. Only hosts carry one.
func (r *Resolver) Cxx(target domain.TargetSelection) (Tool, error) {
	tool, ok := r.cxx[target]
	if !ok {
		return Tool{}, zerr.With(domain.ErrNotConfiguredAsHost, "target", target.Triple())
	}
	return tool, nil
}

// Ar returns the archiver for the target, or the empty string when none
// could be derived.
func (r *Resolver) Ar(target domain.TargetSelection) string {
	return r.ar[target]
}

// Ranlib returns the ranlib command for the target.
func (r *Resolver) Ranlib(target domain.TargetSelection) string {
	return r.ranlib[target]
}

// Linker picks the linker driver for a target. Precedence: explicit
// configuration, then the C++ driver for embedded RTOS targets, then the
// target's own C compiler when cross-linking with the build machine's
// tools is not possible, then the in-tree fast linker when enabled for
// the build triple itself. Targets that fall through link with whatever
// the code generator defaults to, signalled by ok being false.
func (r *Resolver) Linker(target domain.TargetSelection) (string, bool) {
	if linker := r.cfg.Target(target).Linker; linker != "" {
		return linker, true
	}
	if target.Contains("vxworks") {
		if tool, ok := r.cxx[target]; ok {
			return tool.Path, true
		}
	}
	if target != r.cfg.Build && !target.Contains("msvc") && linksWithOwnCc(target) {
		if tool, ok := r.cc[target]; ok {
			return tool.Path, true
		}
	}
	if r.cfg.UseFastLinker && !r.FuseLinkerFlag(target) && target == r.cfg.Build {
		return "fast-ld", true
	}
	return "", false
}

// FuseLinkerFlag reports whether the fast linker is engaged through a
// compiler flag rather than as a separate driver. MSVC targets have no
// such flag.
func (r *Resolver) FuseLinkerFlag(target domain.TargetSelection) bool {
	return r.cfg.UseFastLinker && !target.Contains("msvc")
}

// linksWithOwnCc reports whether the target must be linked with its own
// C compiler. A handful of targets ship self-contained linking and never
// route through cc.
func linksWithOwnCc(target domain.TargetSelection) bool {
	for _, fragment := range []string{"emscripten", "wasm32", "nvptx", "fortanix", "fuchsia"} {
		if target.Contains(fragment) {
			return false
		}
	}
	return true
}

// Cflags assembles the C flags for compiling native code for the target.
// Probed default arguments are carried over except optimization flags,
// which the build controls itself.
func (r *Resolver) Cflags(target domain.TargetSelection) []string {
	tool := r.cc[target]
	flags := make([]string, 0, len(tool.Args)+4)
	for _, arg := range tool.Args {
		if strings.HasPrefix(arg, "-O") || strings.HasPrefix(arg, "/O") {
			continue
		}
		flags = append(flags, arg)
	}
	if target.Contains("apple-darwin") {
		flags = append(flags, "-stdlib=libc++")
	}
	if target.Triple() == "i686-pc-windows-gnu" {
		flags = append(flags, "-fno-omit-frame-pointer")
	}
	if r.cfg.RemapDebuginfo {
		map_ := "-fdebug-prefix-map=" + r.cfg.Src + "=" + r.cfg.DebuginfoMapPrefix()
		switch tool.Family() {
		case FamilyClangCl:
			flags = append(flags, "-Xclang", map_)
		default:
			flags = append(flags, map_)
		}
	}
	return flags
}
