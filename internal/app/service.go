// Package service runs verb checks: it pairs sample events with the xAPI
// statements captured for them and validates each pair.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/okian/xapiverbs/internal/adapters/fixture"
	"github.com/okian/xapiverbs/internal/domain/model"
	"github.com/okian/xapiverbs/internal/domain/validator"
	"github.com/okian/xapiverbs/pkg/logger"
	"github.com/okian/xapiverbs/pkg/metrics"
)

// FixtureLoader reads the two fixture files a run needs.
type FixtureLoader interface {
	LoadEvents(ctx context.Context, path string) ([]model.Event, error)
	LoadStatements(ctx context.Context, path string) ([]model.Statement, error)
}

// Service validates event/statement pairs.
type Service struct {
	loader   FixtureLoader
	failFast bool
	runID    string
	logger   logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLoader sets the fixture loader used by Run.
func WithLoader(l FixtureLoader) Option {
	return func(s *Service) {
		if l != nil {
			s.loader = l
		}
	}
}

// WithFailFast stops a check at the first pair without a validator.
func WithFailFast(enabled bool) Option {
	return func(s *Service) {
		s.failFast = enabled
	}
}

// WithRunID fixes the run identifier instead of generating one.
func WithRunID(id string) Option {
	return func(s *Service) {
		if id != "" {
			s.runID = id
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service. The logger package must be initialized unless
// WithLogger is given.
func New(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Named("check")
	}
	if s.loader == nil {
		s.loader = fixture.New(fixture.WithLogger(s.logger))
	}
	if s.runID == "" {
		s.runID = uuid.NewString()
	}
	return s
}

// RunID returns the identifier stamped on reports from this service.
func (s *Service) RunID() string { return s.runID }

// Run loads the sample events and captured statements, then checks them.
func (s *Service) Run(ctx context.Context, samplesPath, statementsPath string) (*Report, error) {
	events, err := s.loader.LoadEvents(ctx, samplesPath)
	if err != nil {
		return nil, fmt.Errorf("load sample events: %w", err)
	}
	statements, err := s.loader.LoadStatements(ctx, statementsPath)
	if err != nil {
		return nil, fmt.Errorf("load statements: %w", err)
	}
	return s.Check(ctx, events, statements)
}

// Check validates events[i] against statements[i] for every i. The slices
// must have equal length. Pairs with a wrong verb or without a validator are
// recorded as failures; with fail-fast enabled the first missing validator
// also ends the check and is returned alongside the partial report.
func (s *Service) Check(ctx context.Context, events []model.Event, statements []model.Statement) (*Report, error) {
	if len(events) != len(statements) {
		return nil, fmt.Errorf("%w: %d events, %d statements", ErrPairCount, len(events), len(statements))
	}

	rep := &Report{
		RunID:     s.runID,
		StartedAt: time.Now().UTC(),
		Results:   make([]Result, 0, len(events)),
	}
	defer func() {
		rep.DurationMS = float64(time.Since(rep.StartedAt).Microseconds()) / 1000
	}()

	for i := range events {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		ev, st := events[i], statements[i]
		res := Result{Index: i, EventID: ev.ID(), Actual: st.VerbID()}
		res.Expected, _ = validator.ExpectedVerb(ev)

		ok, err := validator.Validate(ev, st)
		rep.Total++
		switch {
		case err != nil:
			res.Error = err.Error()
			rep.Failed++
			rep.Missing++
			metrics.RecordValidation(metrics.FilterUnknownEvent, metrics.OutcomeMissing)
			s.logger.Error(ctx, "no validator for event",
				logger.Int("index", i),
				logger.String("event", res.EventID),
				logger.String("verb", res.Actual))
			if s.failFast {
				rep.Results = append(rep.Results, res)
				return rep, err
			}
		case ok:
			res.Passed = true
			rep.Passed++
			metrics.RecordValidation(res.EventID, metrics.OutcomePass)
		default:
			rep.Failed++
			metrics.RecordValidation(res.EventID, metrics.OutcomeFail)
			s.logger.Warn(ctx, "unexpected verb",
				logger.Int("index", i),
				logger.String("event", res.EventID),
				logger.String("expected", res.Expected),
				logger.String("actual", res.Actual))
		}
		rep.Results = append(rep.Results, res)
	}

	s.logger.Info(ctx, "verb check finished",
		logger.String("run", s.runID),
		logger.Int("total", rep.Total),
		logger.Int("passed", rep.Passed),
		logger.Int("failed", rep.Failed))
	return rep, nil
}
