// Package check runs named validation checks and reports their outcome.
package check

//go:generate go tool errtrace -w .

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"braces.dev/errtrace"
	"github.com/google/go-cmp/cmp"
	"github.com/qmuntal/stateless"

	"github.com/ghettovoice/goseq/internal/errorutil"
	"github.com/ghettovoice/goseq/internal/log"
)

// ErrAlreadyRun is returned when a finished or running check is started again.
const ErrAlreadyRun errorutil.Error = "check already run"

// ErrFailed is wrapped by errors returned from [Expect] and [Diff].
const ErrFailed errorutil.Error = "check failed"

// State is a lifecycle state of a check.
type State string

const (
	StatePending State = "pending"
	StateRunning State = "running"
	StatePassed  State = "passed"
	StateFailed  State = "failed"
)

type trigger string

const (
	triggerStart trigger = "start"
	triggerPass  trigger = "pass"
	triggerFail  trigger = "fail"
)

// Func is a check body. A nil error means the check passed.
type Func func(ctx context.Context) error

// Check is a single named check.
// A check runs at most once.
type Check struct {
	name    string
	fn      Func
	sm      *stateless.StateMachine
	err     error
	elapsed time.Duration
}

// New returns a pending check.
func New(name string, fn Func) *Check {
	c := &Check{name: name, fn: fn}
	c.sm = stateless.NewStateMachine(StatePending)
	c.sm.Configure(StatePending).
		Permit(triggerStart, StateRunning)
	c.sm.Configure(StateRunning).
		Permit(triggerPass, StatePassed).
		Permit(triggerFail, StateFailed)
	c.sm.Configure(StateFailed).
		OnEntryFrom(triggerFail, func(_ context.Context, args ...any) error {
			if len(args) > 0 {
				c.err, _ = args[0].(error)
			}
			return nil
		})
	return c
}

// Name returns the name of the check.
func (c *Check) Name() string { return c.name }

// State returns the current state of the check.
func (c *Check) State() State { return c.sm.MustState().(State) } //nolint:forcetypeassert

// Err returns the failure of the check, nil unless the check failed.
func (c *Check) Err() error { return c.err }

// Elapsed returns the duration of the last run.
func (c *Check) Elapsed() time.Duration { return c.elapsed }

// Run executes the check body and moves the check to a final state.
// It returns the failure of the body, or [ErrAlreadyRun] if the check is not pending.
func (c *Check) Run(ctx context.Context) error {
	if st := c.State(); st != StatePending {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrAlreadyRun, "%q is %s", c.name, st))
	}
	// transitions complete even when ctx is done
	fsmCtx := context.WithoutCancel(ctx)
	if err := c.sm.FireCtx(fsmCtx, triggerStart); err != nil {
		return errtrace.Wrap(err)
	}

	start := time.Now()
	err := c.call(ctx)
	c.elapsed = time.Since(start)

	if err != nil {
		if ferr := c.sm.FireCtx(fsmCtx, triggerFail, err); ferr != nil {
			return errtrace.Wrap(ferr)
		}
		return errtrace.Wrap(err)
	}
	return errtrace.Wrap(c.sm.FireCtx(fsmCtx, triggerPass))
}

func (c *Check) call(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errtrace.Wrap(errorutil.NewWrapperError(ErrFailed, "panic: %v", r))
		}
	}()

	if err := ctx.Err(); err != nil {
		return errtrace.Wrap(err)
	}
	return errtrace.Wrap(c.fn(ctx))
}

// Expect returns an error wrapping [ErrFailed] when cond is false.
func Expect(cond bool, format string, args ...any) error {
	if cond {
		return nil
	}
	return errtrace.Wrap(errorutil.NewWrapperError(ErrFailed, "%s", fmt.Sprintf(format, args...)))
}

// Diff returns an error wrapping [ErrFailed] describing the difference between got and want.
func Diff(what string, got, want any, opts ...cmp.Option) error {
	if diff := cmp.Diff(got, want, opts...); diff != "" {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrFailed, "%s mismatch (-got +want):\n%s", what, diff))
	}
	return nil
}

// Suite is an ordered list of checks.
type Suite struct {
	name   string
	log    *slog.Logger
	checks []*Check
}

// NewSuite returns an empty suite. A nil logger means [log.Noop].
func NewSuite(name string, logger *slog.Logger) *Suite {
	if logger == nil {
		logger = log.Noop
	}
	return &Suite{name: name, log: logger.With("suite", name)}
}

// Add appends a new check to the suite.
func (s *Suite) Add(name string, fn Func) *Suite {
	s.checks = append(s.checks, New(name, fn))
	return s
}

// Len returns the number of checks in the suite.
func (s *Suite) Len() int { return len(s.checks) }

// Names returns names of the checks in the order they run.
func (s *Suite) Names() []string {
	names := make([]string, len(s.checks))
	for i, c := range s.checks {
		names[i] = c.Name()
	}
	return names
}

// Run runs pending checks in the order they were added.
// A check that fails does not stop the following ones.
func (s *Suite) Run(ctx context.Context) *Report {
	rep := &Report{Suite: s.name}
	for _, c := range s.checks {
		err := c.Run(ctx)
		switch {
		case err == nil:
			s.log.LogAttrs(ctx, slog.LevelDebug, "check passed",
				slog.String("check", c.Name()),
				slog.Duration("elapsed", c.Elapsed()),
			)
		case errors.Is(err, ErrAlreadyRun):
			s.log.LogAttrs(ctx, slog.LevelWarn, "check skipped",
				slog.String("check", c.Name()),
				slog.Any("error", err),
			)
			continue
		default:
			s.log.LogAttrs(ctx, slog.LevelWarn, "check failed",
				slog.String("check", c.Name()),
				slog.Duration("elapsed", c.Elapsed()),
				slog.Any("error", err),
			)
		}
		rep.Results = append(rep.Results, Result{
			Name:    c.Name(),
			State:   c.State(),
			Err:     c.Err(),
			Elapsed: c.Elapsed(),
		})
	}
	s.log.LogAttrs(ctx, slog.LevelInfo, "suite finished", slog.Any("report", rep))
	return rep
}

// Result is an outcome of a single check.
type Result struct {
	Name    string
	State   State
	Err     error
	Elapsed time.Duration
}

// Report is an outcome of a suite run.
type Report struct {
	Suite   string
	Results []Result
}

// OK reports whether every check passed.
func (r *Report) OK() bool {
	for _, res := range r.Results {
		if res.State != StatePassed {
			return false
		}
	}
	return true
}

// Err returns failures of all failed checks joined into one error.
func (r *Report) Err() error {
	var errs []error
	for _, res := range r.Results {
		if res.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", res.Name, res.Err))
		}
	}
	return errorutil.JoinPrefix(r.Suite, errs...) //errtrace:skip
}

// LogValue implements [slog.LogValuer].
func (r *Report) LogValue() slog.Value {
	var passed, failed int
	for _, res := range r.Results {
		if res.State == StatePassed {
			passed++
		} else {
			failed++
		}
	}
	return slog.GroupValue(
		slog.Bool("ok", r.OK()),
		slog.Int("passed", passed),
		slog.Int("failed", failed),
	)
}
