package domain

import (
	"fmt"
	"strings"
)

// Compiler identifies one build of the toolchain: the bootstrap stage it
// belongs to and the host platform it runs on. It is an immutable value
// type used wherever a step needs to name "the compiler that built this".
type Compiler struct {
	Stage uint32
	Host  TargetSelection
}

// NewCompiler creates a Compiler for the given stage and host.
func NewCompiler(stage uint32, host TargetSelection) Compiler {
	return Compiler{Stage: stage, Host: host}
}

// WithStage returns a copy of the compiler moved to the given stage.
func (c Compiler) WithStage(stage uint32) Compiler {
	c.Stage = stage
	return c
}

// Compare orders compilers by (stage, host triple).
func (c Compiler) Compare(other Compiler) int {
	if c.Stage != other.Stage {
		if c.Stage < other.Stage {
			return -1
		}
		return 1
	}
	return strings.Compare(c.Host.Triple(), other.Host.Triple())
}

// IsSnapshot reports whether this is the pre-built snapshot compiler for
// the given build platform, i.e. stage 0 running on the build machine.
func (c Compiler) IsSnapshot(build TargetSelection) bool {
	return c.Stage == 0 && c.Host == build
}

// IsFinalStage reports whether this compiler is a final-stage one in the
// current session. The final stage is 2 during a full bootstrap and 1
// otherwise; don't compare the stage with a literal directly.
func (c Compiler) IsFinalStage(fullBootstrap bool) bool {
	finalStage := uint32(1)
	if fullBootstrap {
		finalStage = 2
	}
	return c.Stage >= finalStage
}

func (c Compiler) String() string {
	return fmt.Sprintf("stage%d-%s", c.Stage, c.Host.Triple())
}
