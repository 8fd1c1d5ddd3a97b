package ports

import (
	"context"

	"go.velt.ch/strap/internal/core/domain"
)

// MetadataLoader builds the workspace crate graph, typically by invoking
// the per-package build tool's metadata command and keeping only
// workspace members.
//
//go:generate go run go.uber.org/mock/mockgen -source=metadata.go -destination=mocks/mock_metadata.go -package=mocks
type MetadataLoader interface {
	Load(ctx context.Context, srcRoot, buildTool string) (*domain.CrateGraph, error)
}
