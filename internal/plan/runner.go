package plan

import (
	"context"
	stderrors "errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/errgroup"

	"github.com/provide-io/mvg/go/mvg/pkg/mvg/errors"
	"github.com/provide-io/mvg/go/mvg/pkg/mvg/stage"
)

// DefaultConcurrency bounds the number of steps validated at once.
const DefaultConcurrency = 4

// Result is the outcome of one step.
type Result struct {
	ID     string
	Stage  stage.Name
	Record stage.Record
	Err    error
}

// Report is the outcome of validating a plan.
type Report struct {
	RunID   string
	Name    string
	Results []Result
}

// Records returns the records of every step in plan order, or nil when any
// step failed.
func (r *Report) Records() []stage.Record {
	records := make([]stage.Record, 0, len(r.Results))
	for _, res := range r.Results {
		if res.Err != nil {
			return nil
		}
		records = append(records, res.Record)
	}
	return records
}

// Runner builds the records of a plan concurrently. Steps sharing an output
// directory are serialized.
type Runner struct {
	builder     *stage.Builder
	logger      hclog.Logger
	concurrency int

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewRunner creates a Runner. A concurrency below 1 uses DefaultConcurrency.
func NewRunner(builder *stage.Builder, logger hclog.Logger, concurrency int) *Runner {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if concurrency < 1 {
		concurrency = DefaultConcurrency
	}
	return &Runner{
		builder:     builder,
		logger:      logger,
		concurrency: concurrency,
		locks:       make(map[string]*sync.Mutex),
	}
}

func (r *Runner) lockFor(dir string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := filepath.Clean(dir)
	l, ok := r.locks[key]
	if !ok {
		l = &sync.Mutex{}
		r.locks[key] = l
	}
	return l
}

// Validate builds every step. It returns the report and, when any step
// failed, an error wrapping errors.ErrPlanInvalid and every step error.
func (r *Runner) Validate(ctx context.Context, p *Plan) (*Report, error) {
	report := &Report{
		RunID:   uuid.NewString(),
		Name:    p.Name,
		Results: make([]Result, len(p.Steps)),
	}
	logger := r.logger.With("run_id", report.RunID, "plan", p.Name)
	logger.Info("🗺️ Validating plan", "steps", len(p.Steps))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i, step := range p.Steps {
		i, step := i, step
		g.Go(func() error {
			res := Result{ID: step.ID, Stage: step.Stage}
			if err := ctx.Err(); err != nil {
				res.Err = err
				report.Results[i] = res
				return err
			}

			if dir := step.outputDir(); dir != "" {
				l := r.lockFor(dir)
				l.Lock()
				defer l.Unlock()
			}

			res.Record, res.Err = step.build(r.builder)
			if res.Err != nil {
				res.Record = nil
				logger.Warn("❌ Step rejected", "step", step.ID, "stage", step.Stage, "error", res.Err)
			} else {
				logger.Debug("✅ Step valid", "step", step.ID, "stage", step.Stage)
			}
			report.Results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return report, err
	}

	var failures []error
	for _, res := range report.Results {
		if res.Err != nil {
			failures = append(failures, fmt.Errorf("step %s: %w", res.ID, res.Err))
		}
	}
	if len(failures) > 0 {
		return report, fmt.Errorf("%w: %w", errors.ErrPlanInvalid, stderrors.Join(failures...))
	}
	logger.Info("✅ Plan valid", "steps", len(p.Steps))
	return report, nil
}
