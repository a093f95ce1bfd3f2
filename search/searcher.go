// SPDX-License-Identifier: MIT
// Package: cliquespec/search
//
// searcher.go — concurrent driver for Trial.
//
// Concurrency:
//   - Workers only run trials and send outcomes; they never touch Result.
//   - A single loop in Run consumes outcomes, updates counters and metrics,
//     and owns every state transition.
//   - Worker i draws from rand.New(rand.NewSource(Seed+i)), so a run with
//     one worker replays exactly for a given Seed.

package search

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// State is the lifecycle position of a Searcher.
type State int

const (
	// Idle is the state before Run.
	Idle State = iota
	// Searching means workers are running trials.
	Searching
	// FoundCounterexample means a trial produced a counterexample not yet reported.
	FoundCounterexample
	// Reported is terminal: the counterexample was reported and archived if configured.
	Reported
	// Exhausted means MaxTrials ran without a counterexample.
	Exhausted
	// Cancelled means the context ended first.
	Cancelled
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Searching:
		return "searching"
	case FoundCounterexample:
		return "found-counterexample"
	case Reported:
		return "reported"
	case Exhausted:
		return "exhausted"
	case Cancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Result summarizes a finished run.
type Result struct {
	RunID   string
	State   State
	Trials  int64
	Counts  map[Status]int64
	Elapsed time.Duration

	// Counterexample is the first one received, if any.
	Counterexample *Outcome
	// ArchiveID is the record ID when an Archiver stored it.
	ArchiveID string
}

// Option customizes a Searcher.
type Option func(*Searcher)

// WithLogger sets the logger. It panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("search: WithLogger(nil)")
	}
	return func(s *Searcher) { s.logger = l }
}

// WithMetrics records trials on m.
func WithMetrics(m *Metrics) Option {
	return func(s *Searcher) { s.metrics = m }
}

// WithReporter publishes the counterexample through r.
func WithReporter(r Reporter) Option {
	return func(s *Searcher) { s.reporter = r }
}

// WithArchiver stores the counterexample through a.
func WithArchiver(a Archiver) Option {
	return func(s *Searcher) { s.archiver = a }
}

// WithTrialFunc replaces Trial.
func WithTrialFunc(fn TrialFunc) Option {
	return func(s *Searcher) {
		if fn != nil {
			s.trial = fn
		}
	}
}

// Searcher runs trials until a counterexample, a cap, or cancellation.
// A Searcher runs at most once at a time.
type Searcher struct {
	cfg      Config
	logger   *slog.Logger
	metrics  *Metrics
	reporter Reporter
	archiver Archiver
	trial    TrialFunc

	mu    sync.Mutex
	state State
}

// New validates cfg and builds a Searcher.
func New(cfg Config, opts ...Option) (*Searcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("search.New: %w", err)
	}
	s := &Searcher{
		cfg:    cfg,
		logger: slog.Default(),
		trial:  Trial,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// State returns the current lifecycle state. Safe for concurrent use.
func (s *Searcher) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

func (s *Searcher) setState(st State) {
	s.mu.Lock()
	prev := s.state
	s.state = st
	s.mu.Unlock()
	s.logger.Debug("search state", slog.String("from", prev.String()), slog.String("to", st.String()))
}

// Run searches until the first counterexample, MaxTrials, Timeout, or
// cancellation of ctx. Hitting a cap ends in Exhausted; cancelling ctx ends
// in Cancelled. A trial error aborts the run and is returned with the
// partial Result.
func (s *Searcher) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	res := &Result{RunID: uuid.NewString(), Counts: make(map[Status]int64, 3)}
	s.setState(Searching)
	s.logger.Info("search started",
		slog.String("run_id", res.RunID),
		slog.Int("workers", s.cfg.Workers),
		slog.Int64("seed", s.cfg.Seed),
		slog.Int64("max_trials", s.cfg.MaxTrials),
		slog.Duration("timeout", s.cfg.Timeout))

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	if s.cfg.Timeout > 0 {
		var cancelTimeout context.CancelFunc
		runCtx, cancelTimeout = context.WithTimeout(runCtx, s.cfg.Timeout)
		defer cancelTimeout()
	}

	outcomes := make(chan Outcome, s.cfg.Workers)
	var issued atomic.Int64
	grp, gctx := errgroup.WithContext(runCtx)
	for i := 0; i < s.cfg.Workers; i++ {
		worker := i
		rng := rand.New(rand.NewSource(s.cfg.Seed + int64(i)))
		grp.Go(func() error { return s.work(gctx, worker, rng, &issued, outcomes) })
	}
	waitErr := make(chan error, 1)
	go func() {
		waitErr <- grp.Wait()
		close(outcomes)
	}()

	for o := range outcomes {
		res.Trials++
		res.Counts[o.Status]++
		s.metrics.observe(o)

		switch o.Status {
		case Consistent:
			s.logger.Debug("graph good",
				slog.Int64("trial", o.Seq),
				slog.Int("cliques1", o.Cliques1.Len()),
				slog.Int("cliques2", o.Cliques2.Len()),
				slog.Float64("rho1", o.Rho1),
				slog.Float64("rho2", o.Rho2))
		case Counterexample:
			if res.Counterexample == nil {
				found := o
				res.Counterexample = &found
				s.setState(FoundCounterexample)
				s.logger.Warn("counterexample found",
					slog.Int64("trial", o.Seq),
					slog.Float64("rho1", o.Rho1),
					slog.Float64("rho2", o.Rho2))
				cancel()
			}
		}

		if s.cfg.ProgressEvery > 0 && res.Trials%s.cfg.ProgressEvery == 0 {
			s.progress(res, start)
		}
	}
	res.Elapsed = time.Since(start)

	if err := <-waitErr; err != nil {
		res.State = s.State()
		return res, fmt.Errorf("search.Run: %w", err)
	}

	switch {
	case res.Counterexample != nil:
		if err := s.publish(res); err != nil {
			res.State = s.State()
			return res, fmt.Errorf("search.Run: %w", err)
		}
		s.setState(Reported)
	case ctx.Err() != nil:
		s.setState(Cancelled)
	default:
		s.setState(Exhausted)
	}
	res.State = s.State()

	s.logger.Info("search finished",
		slog.String("run_id", res.RunID),
		slog.String("state", res.State.String()),
		slog.String("trials", humanize.Comma(res.Trials)),
		slog.Duration("elapsed", res.Elapsed))

	return res, nil
}

// work runs trials until ctx is done or the trial cap is reached.
func (s *Searcher) work(ctx context.Context, worker int, rng *rand.Rand, issued *atomic.Int64, out chan<- Outcome) error {
	for ctx.Err() == nil {
		seq := issued.Add(1)
		if s.cfg.MaxTrials > 0 && seq > s.cfg.MaxTrials {
			return nil
		}

		started := time.Now()
		o, err := s.trial(rng, s.cfg.Params)
		if err != nil {
			return fmt.Errorf("trial %d: %w", seq, err)
		}
		o.Seq, o.Worker, o.Duration = seq, worker, time.Since(started)

		select {
		case out <- o:
		case <-ctx.Done():
			return nil
		}
	}

	return nil
}

// publish hands the counterexample to the archiver and then the reporter.
func (s *Searcher) publish(res *Result) error {
	if s.archiver != nil {
		rec, err := NewRecord(res, s.cfg.Seed)
		if err != nil {
			return err
		}
		stored, err := s.archiver.Put(rec)
		if err != nil {
			return fmt.Errorf("archive: %w", err)
		}
		res.ArchiveID = stored.ID
		s.logger.Info("counterexample archived", slog.String("id", stored.ID))
	}
	if s.reporter != nil {
		if err := s.reporter.Report(res); err != nil {
			return fmt.Errorf("report: %w", err)
		}
	}

	return nil
}

func (s *Searcher) progress(res *Result, start time.Time) {
	elapsed := time.Since(start)
	rate := 0.0
	if secs := elapsed.Seconds(); secs > 0 {
		rate = float64(res.Trials) / secs
	}
	s.logger.Info("search progress",
		slog.String("trials", humanize.Comma(res.Trials)),
		slog.String("evaluated", humanize.Comma(res.Counts[Consistent]+res.Counts[Counterexample])),
		slog.String("rate", humanize.FormatFloat("#,###.#", rate)+"/s"),
		slog.Duration("elapsed", elapsed))
}
