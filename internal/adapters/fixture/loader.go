// Package fixture reads newline-delimited JSON fixtures: mapped meeting
// events and the xAPI statements captured for them.
package fixture

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/tidwall/gjson"

	"github.com/okian/xapiverbs/internal/domain/model"
	"github.com/okian/xapiverbs/internal/domain/vocabulary"
	"github.com/okian/xapiverbs/pkg/logger"
	"github.com/okian/xapiverbs/pkg/metrics"
)

// DefaultMaxLineSize is the default upper bound for one fixture line.
const DefaultMaxLineSize = 1 << 20

// Fixture kinds used as metric labels.
const (
	kindEvents     = "events"
	kindStatements = "statements"
)

// Loader reads fixture files line by line.
type Loader struct {
	allowed     func(id string) bool
	logger      logger.Logger
	maxLineSize int
}

// New creates a Loader filtering on the known event vocabulary.
func New(opts ...Option) *Loader {
	l := &Loader{
		allowed:     vocabulary.IsKnown,
		maxLineSize: DefaultMaxLineSize,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = logger.Named("fixture")
	}
	return l
}

// LoadEvents reads the sample events at path and returns, in file order, the
// ones whose data.id is allow-listed. Every non-empty line must be valid JSON,
// including lines that end up filtered out; the first bad line aborts the load.
// Attribute shapes are not checked, so any valid JSON line decodes.
func (l *Loader) LoadEvents(ctx context.Context, path string) ([]model.Event, error) {
	start := time.Now()
	var events []model.Event
	filtered := 0

	err := l.scan(ctx, path, kindEvents, func(line []byte) error {
		var ev model.Event
		if err := json.Unmarshal(line, &ev); err != nil {
			return err
		}
		if !l.allowed(ev.ID()) {
			filtered++
			reason := metrics.FilterUnknownEvent
			if ev.ID() == "" {
				reason = metrics.FilterMissingID
			}
			metrics.RecordEventFiltered(reason)
			return nil
		}
		events = append(events, ev)
		metrics.RecordEventKept()
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordLoadDuration(kindEvents, float64(time.Since(start).Microseconds())/1000)
	l.logger.Info(ctx, "loaded sample events",
		logger.String("path", path),
		logger.Int("kept", len(events)),
		logger.Int("filtered", filtered))
	return events, nil
}

// LoadStatements reads captured xAPI statements at path, one per line, in
// file order.
func (l *Loader) LoadStatements(ctx context.Context, path string) ([]model.Statement, error) {
	start := time.Now()
	var statements []model.Statement

	err := l.scan(ctx, path, kindStatements, func(line []byte) error {
		var st model.Statement
		if err := json.Unmarshal(line, &st); err != nil {
			return err
		}
		statements = append(statements, st)
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordLoadDuration(kindStatements, float64(time.Since(start).Microseconds())/1000)
	l.logger.Info(ctx, "loaded statements",
		logger.String("path", path),
		logger.Int("count", len(statements)))
	return statements, nil
}

// scan feeds each non-blank, syntactically valid line of path to fn. Errors
// from fn are reported as parse errors for that line.
func (l *Loader) scan(ctx context.Context, path, kind string, fn func(line []byte) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			l.logger.Warn(ctx, "failed to close fixture", logger.String("path", path), logger.Error(cerr))
		}
	}()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, min(64*1024, l.maxLineSize)), l.maxLineSize)

	lineNo := 0
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		lineNo++
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		metrics.RecordLineRead(kind)

		if !gjson.ValidBytes(line) {
			metrics.RecordParseError(kind)
			return &ParseError{Path: path, Line: lineNo}
		}
		if err := fn(line); err != nil {
			metrics.RecordParseError(kind)
			return &ParseError{Path: path, Line: lineNo, Err: err}
		}
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return fmt.Errorf("%w: %s: line %d exceeds %d bytes", ErrRead, path, lineNo+1, l.maxLineSize)
		}
		return fmt.Errorf("%w: %w", ErrRead, err)
	}
	return nil
}
