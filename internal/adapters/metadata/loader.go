// Package metadata builds the workspace crate graph from the per-package
// build tool's metadata command.
package metadata

import (
	"context"
	"encoding/json"
	"path/filepath"

	"go.trai.ch/zerr"
	"go.velt.ch/strap/internal/core/domain"
	"go.velt.ch/strap/internal/core/ports"
)

// Loader implements ports.MetadataLoader by shelling out to the build
// tool. Only workspace members end up in the graph; registry dependencies
// are dropped here so that graph traversal can treat any unresolved name
// as external.
type Loader struct {
	exec ports.Executor
}

// NewLoader creates a Loader backed by the given executor.
func NewLoader(exec ports.Executor) *Loader {
	return &Loader{exec: exec}
}

// workspaceMetadata mirrors the build tool's JSON metadata output.
type workspaceMetadata struct {
	Packages []struct {
		Name         string `json:"name"`
		ID           string `json:"id"`
		ManifestPath string `json:"manifest_path"`
		Dependencies []struct {
			Name string `json:"name"`
		} `json:"dependencies"`
	} `json:"packages"`
	WorkspaceMembers []string `json:"workspace_members"`
}

// Load runs `<tool> metadata` in srcRoot and converts the result.
func (l *Loader) Load(ctx context.Context, srcRoot, buildTool string) (*domain.CrateGraph, error) {
	cmd := domain.NewCommand(buildTool, "metadata", "--format-version", "1", "--no-deps").
		WithDir(srcRoot)
	out, err := l.exec.Output(ctx, cmd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to run build tool metadata")
	}

	var meta workspaceMetadata
	if err := json.Unmarshal([]byte(out), &meta); err != nil {
		return nil, zerr.Wrap(err, "failed to parse build tool metadata")
	}

	members := make(map[string]struct{}, len(meta.WorkspaceMembers))
	for _, id := range meta.WorkspaceMembers {
		members[id] = struct{}{}
	}

	graph := domain.NewCrateGraph()
	for _, pkg := range meta.Packages {
		if _, ok := members[pkg.ID]; !ok {
			continue
		}
		deps := make(map[domain.InternedString]struct{}, len(pkg.Dependencies))
		for _, dep := range pkg.Dependencies {
			deps[domain.NewInternedString(dep.Name)] = struct{}{}
		}
		crate := &domain.Crate{
			Name: domain.NewInternedString(pkg.Name),
			Deps: deps,
			ID:   pkg.ID,
			Path: filepath.Dir(pkg.ManifestPath),
		}
		if err := graph.Add(crate); err != nil {
			return nil, err
		}
	}
	return graph, nil
}
