package analyzer

import (
	"errors"

	"github.com/tzerio/chronopath/walker"
)

// ErrNotAnalyzed indicates a tag or slack query before the first
// completed UpdateTiming call.
var ErrNotAnalyzed = errors.New("analyzer: timing not analyzed")

// Option configures an analyzer at construction.
type Option func(*options)

// options holds the configurable pieces of an analyzer.
type options struct {
	walker walker.Walker
}

// defaultOptions returns the default configuration: the serial walker.
func defaultOptions() options {
	return options{walker: walker.NewSerial()}
}

// WithWalker returns an Option that installs a specific walker. A nil
// walker has no effect.
func WithWalker(w walker.Walker) Option {
	return func(o *options) {
		if w != nil {
			o.walker = w
		}
	}
}

// WithParallel returns an Option that installs the level-parallel walker
// bounded to the given worker count (values below 1 select the default
// pool size).
func WithParallel(workers int) Option {
	return func(o *options) {
		o.walker = walker.NewParallel(walker.WithWorkers(workers))
	}
}
