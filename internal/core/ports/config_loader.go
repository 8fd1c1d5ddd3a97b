package ports

import "go.velt.ch/strap/internal/core/domain"

// ConfigLoader reads and validates the orchestrator configuration file.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	Load(path string) (*domain.Config, error)
}
