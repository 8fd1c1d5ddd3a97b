// Package sanity verifies the build environment before any step runs.
package sanity

import (
	"context"
	"os"
	"os/exec"
	"sync"

	"go.trai.ch/zerr"
	"go.velt.ch/strap/internal/core/ports"
)

// Checker implements ports.SanityChecker with a memoizing PATH finder.
type Checker struct {
	logger ports.Logger

	mu    sync.Mutex
	found map[string]string
}

// NewChecker creates a new Checker.
func NewChecker(logger ports.Logger) *Checker {
	return &Checker{
		logger: logger,
		found:  make(map[string]string),
	}
}

// Check verifies that every required command is reachable and warns when
// the orchestrator runs under privilege elevation. A missing command is a
// startup-fatal error surfaced to the caller.
func (c *Checker) Check(_ context.Context, requiredCommands []string) error {
	for _, cmd := range requiredCommands {
		if _, ok := c.MaybeHave(cmd); !ok {
			return zerr.With(zerr.New("required command not found in PATH"), "command", cmd)
		}
	}

	if sudoUser := os.Getenv("SUDO_USER"); sudoUser != "" {
		if user := os.Getenv("USER"); user != "" && user != sudoUser {
			c.logger.Warn("running under sudo; build output will be owned by root")
		}
	}

	return nil
}

// MaybeHave reports whether cmd resolves in PATH, caching lookups.
func (c *Checker) MaybeHave(cmd string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if path, ok := c.found[cmd]; ok {
		return path, path != ""
	}
	path, err := exec.LookPath(cmd)
	if err != nil {
		c.found[cmd] = ""
		return "", false
	}
	c.found[cmd] = path
	return path, true
}
