// Package scheduler selects and runs build steps. The orchestrator calls
// it twice per invocation: a dry pass that only validates the requested
// selection, then a real pass that executes it.
package scheduler

import (
	"context"
	"strings"
	"sync"

	"go.trai.ch/zerr"
	"go.velt.ch/strap/internal/core/domain"
	"go.velt.ch/strap/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// Step is one schedulable unit of work, registered by the application
// layer as a closure over the orchestrator state.
type Step struct {
	// Name is the step's selection path, e.g. "std" or "tools/doc".
	Name string

	// Default includes the step when the user requests nothing specific.
	Default bool

	// Deferrable routes the step's failure into the deferred list instead
	// of aborting the run. Test steps set this when fail-fast is off.
	Deferrable bool

	Run func(ctx context.Context) error
}

// Scheduler owns the registered steps and executes selections over them.
type Scheduler struct {
	log       ports.Logger
	telemetry ports.Telemetry

	mu     sync.Mutex
	steps  []Step
	byName map[string]struct{}

	onDeferred func(description string)
}

// New creates an empty Scheduler.
func New(log ports.Logger, telemetry ports.Telemetry) *Scheduler {
	return &Scheduler{
		log:       log,
		telemetry: telemetry,
		byName:    map[string]struct{}{},
	}
}

// Register adds a step. Names must be unique.
func (s *Scheduler) Register(step Step) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byName[step.Name]; exists {
		return zerr.With(domain.ErrStepAlreadyExists, "step", step.Name)
	}
	s.byName[step.Name] = struct{}{}
	s.steps = append(s.steps, step)
	return nil
}

// OnDeferred installs the sink for deferrable step failures.
func (s *Scheduler) OnDeferred(fn func(description string)) {
	s.onDeferred = fn
}

// Execute resolves the request's step selection and, in real mode, runs
// the selected steps with bounded parallelism. Dry mode stops after
// validation so configuration errors surface before any work starts.
func (s *Scheduler) Execute(ctx context.Context, req ports.ScheduleRequest) error {
	selection, err := s.resolve(req.Paths)
	if err != nil {
		return err
	}
	if req.Mode == ports.RunModeDry {
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(req.Jobs, 1))
	for _, step := range selection {
		g.Go(func() error {
			return s.runStep(ctx, step)
		})
	}
	return g.Wait()
}

func (s *Scheduler) runStep(ctx context.Context, step Step) error {
	ctx, vertex := s.telemetry.Record(ctx, step.Name)
	err := step.Run(ctx)
	vertex.Complete(err)
	if err == nil {
		return nil
	}
	if step.Deferrable && s.onDeferred != nil {
		s.onDeferred(step.Name + ": " + err.Error())
		return nil
	}
	return zerr.With(zerr.Wrap(err, "step failed"), "step", step.Name)
}

// resolve maps requested paths onto registered steps. An empty request
// selects the default steps. A path selects every step it names exactly
// or is a path-segment prefix of; a path matching nothing is an error.
func (s *Scheduler) resolve(paths []string) ([]Step, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(paths) == 0 {
		var selection []Step
		for _, step := range s.steps {
			if step.Default {
				selection = append(selection, step)
			}
		}
		if len(selection) == 0 {
			return nil, domain.ErrNoStepsSelected
		}
		return selection, nil
	}

	var selection []Step
	selected := map[string]struct{}{}
	for _, path := range paths {
		matched := false
		for _, step := range s.steps {
			if !matchesPath(step.Name, path) {
				continue
			}
			matched = true
			if _, dup := selected[step.Name]; dup {
				continue
			}
			selected[step.Name] = struct{}{}
			selection = append(selection, step)
		}
		if !matched {
			return nil, zerr.With(domain.ErrUnknownStep, "path", path)
		}
	}
	if len(selection) == 0 {
		return nil, domain.ErrNoStepsSelected
	}
	return selection, nil
}

func matchesPath(name, path string) bool {
	return name == path || strings.HasPrefix(name, path+"/")
}
