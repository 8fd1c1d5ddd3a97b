// Package domain contains the core value types of the bootstrap
// orchestrator: target selections, compiler identities, build modes,
// the workspace crate graph, and the stamp-file codec.
package domain

import (
	"go.trai.ch/zerr"
)

// Names of workspace packages with special traversal rules.
const (
	// crateBuildSupport is the build-glue package; nothing ever needs to
	// build it explicitly, so it is always pruned from closures.
	crateBuildSupport = "build-support"

	// crateProfilerRuntime is only built when profiling support is
	// enabled for the relevant target.
	crateProfilerRuntime = "profiler-runtime"

	// crateCodegenNative is only built when the native code-generation
	// backend is enabled.
	crateCodegenNative = "codegen-native"
)

// PruneRules carries the capability flags that gate optional packages
// during graph traversal.
type PruneRules struct {
	// ProfilerEnabled reports whether profiling support is enabled for a
	// specific target.
	ProfilerEnabled func(TargetSelection) bool
	// AnyProfilerEnabled reports whether profiling support is enabled for
	// at least one configured target. Used when no target is given.
	AnyProfilerEnabled bool
	// NativeBackendEnabled gates the native code-generation backend.
	NativeBackendEnabled bool
}

func (r PruneRules) profilerFor(target TargetSelection) bool {
	if target.IsZero() || r.ProfilerEnabled == nil {
		return r.AnyProfilerEnabled
	}
	return r.ProfilerEnabled(target)
}

// CrateGraph is the in-memory reachability graph over workspace packages.
type CrateGraph struct {
	crates map[InternedString]*Crate
}

// NewCrateGraph creates an empty CrateGraph.
func NewCrateGraph() *CrateGraph {
	return &CrateGraph{
		crates: make(map[InternedString]*Crate),
	}
}

// Add inserts a crate into the graph.
// It returns an error if a crate with the same name already exists.
func (g *CrateGraph) Add(c *Crate) error {
	if _, exists := g.crates[c.Name]; exists {
		return zerr.With(ErrCrateAlreadyExists, "crate", c.Name.String())
	}
	g.crates[c.Name] = c
	return nil
}

// Get returns the crate with the given name.
func (g *CrateGraph) Get(name string) (*Crate, bool) {
	c, ok := g.crates[NewInternedString(name)]
	return c, ok
}

// Len returns the number of crates in the graph.
func (g *CrateGraph) Len() int {
	return len(g.crates)
}

// InTreeCrates returns all dependencies of the given root crate, including
// transitive dependencies and the root itself. Only workspace members are
// included; dependency names that don't resolve in the graph are external
// and silently skipped. The root is first, but the remaining order is not
// guaranteed.
//
// A zero target means "no particular target": target-conditional pruning
// then falls back to the any-target form of the capability flag.
func (g *CrateGraph) InTreeCrates(root string, target TargetSelection, rules PruneRules) ([]*Crate, error) {
	rootKey := NewInternedString(root)
	if _, ok := g.crates[rootKey]; !ok {
		return nil, zerr.With(ErrCrateNotFound, "crate", root)
	}

	var ret []*Crate
	list := []InternedString{rootKey}
	visited := map[InternedString]struct{}{rootKey: {}}
	for len(list) > 0 {
		key := list[len(list)-1]
		list = list[:len(list)-1]
		crate := g.crates[key]
		ret = append(ret, crate)

		for dep := range crate.Deps {
			if _, ok := g.crates[dep]; !ok {
				// Ignore non-workspace members.
				continue
			}
			if _, seen := visited[dep]; seen {
				continue
			}
			if !g.includeDep(dep.String(), target, rules) {
				continue
			}
			visited[dep] = struct{}{}
			list = append(list, dep)
		}
	}
	return ret, nil
}

// includeDep evaluates the per-edge pruning rules for optional packages.
func (g *CrateGraph) includeDep(name string, target TargetSelection, rules PruneRules) bool {
	switch name {
	case crateBuildSupport:
		return false
	case crateProfilerRuntime:
		return rules.profilerFor(target)
	case crateCodegenNative:
		return rules.NativeBackendEnabled
	default:
		return true
	}
}
