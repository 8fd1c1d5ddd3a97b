package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.velt.ch/strap/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.velt.ch/strap/internal/adapters/git"    //nolint:depguard // Wired in app layer
	"go.velt.ch/strap/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.velt.ch/strap/internal/adapters/metadata"
	"go.velt.ch/strap/internal/adapters/sanity"
	"go.velt.ch/strap/internal/adapters/shell"
	"go.velt.ch/strap/internal/adapters/telemetry/progrock"
	"go.velt.ch/strap/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains the initialized application components the CLI
// layer needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			shell.NodeID,
			git.NodeID,
			sanity.NodeID,
			metadata.NodeID,
			progrock.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}
	commits, err := graft.Dep[ports.CommitInspector](ctx)
	if err != nil {
		return nil, err
	}
	checker, err := graft.Dep[ports.SanityChecker](ctx)
	if err != nil {
		return nil, err
	}
	meta, err := graft.Dep[ports.MetadataLoader](ctx)
	if err != nil {
		return nil, err
	}
	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}
	return New(loader, log, executor, commits, checker, meta, tel), nil
}
