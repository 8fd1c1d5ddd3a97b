// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.velt.ch/strap/internal/adapters/config"
	_ "go.velt.ch/strap/internal/adapters/git"
	_ "go.velt.ch/strap/internal/adapters/logger"
	_ "go.velt.ch/strap/internal/adapters/metadata"
	_ "go.velt.ch/strap/internal/adapters/sanity"
	_ "go.velt.ch/strap/internal/adapters/shell"
	_ "go.velt.ch/strap/internal/adapters/telemetry/progrock"
	// Register app nodes.
	_ "go.velt.ch/strap/internal/app"
)
