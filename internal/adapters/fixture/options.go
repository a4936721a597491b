package fixture

import "github.com/okian/xapiverbs/pkg/logger"

// Option applies a configuration option to the Loader.
type Option func(*Loader)

// WithAllowList replaces the event vocabulary used to filter samples.
func WithAllowList(ids []string) Option {
	return func(l *Loader) {
		if ids == nil {
			return
		}
		set := make(map[string]struct{}, len(ids))
		for _, id := range ids {
			set[id] = struct{}{}
		}
		l.allowed = func(id string) bool {
			_, ok := set[id]
			return ok
		}
	}
}

// WithLogger sets the logger used for load progress.
func WithLogger(log logger.Logger) Option {
	return func(l *Loader) {
		if log != nil {
			l.logger = log
		}
	}
}

// WithMaxLineSize bounds a single fixture line in bytes.
func WithMaxLineSize(n int) Option {
	return func(l *Loader) {
		if n > 0 {
			l.maxLineSize = n
		}
	}
}
