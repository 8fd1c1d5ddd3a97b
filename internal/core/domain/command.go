package domain

// Command describes one synchronous subprocess invocation. The orchestrator
// builds these and hands them to an executor; it never spawns processes
// itself.
type Command struct {
	Path string
	Args []string
	// Dir is the working directory; empty means the current directory.
	Dir string
	// Env entries in "KEY=VALUE" form, appended to the ambient environment.
	Env []string
}

// NewCommand creates a Command for the given executable and arguments.
func NewCommand(path string, args ...string) Command {
	return Command{Path: path, Args: args}
}

// WithDir returns a copy of the command with the working directory set.
func (c Command) WithDir(dir string) Command {
	c.Dir = dir
	return c
}

// WithEnv returns a copy of the command with extra environment entries.
func (c Command) WithEnv(entries ...string) Command {
	c.Env = append(append([]string(nil), c.Env...), entries...)
	return c
}
