package parser

import (
	"github.com/jonboulle/clockwork"

	"github.com/rmitchellscott/wxdecode/value"
)

// ProbPolicy controls how a PROBnn group that directly follows another line
// signifier is split into TAF lines.
type ProbPolicy int

const (
	// ProbAttach keeps "TEMPO PROB30" style pairs on one line.
	ProbAttach ProbPolicy = iota
	// ProbStandalone starts a new line at every PROBnn group.
	ProbStandalone
)

type options struct {
	clock         clockwork.Clock
	hourThreshold int
	probPolicy    ProbPolicy
}

// Option configures ParseMetar and ParseTaf.
type Option func(*options)

// WithClock sets the clock used to resolve report day/hour stamps into dates.
func WithClock(c clockwork.Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

// WithHourThreshold sets how many hours a stamp may sit from now before it is
// moved into the neighbouring month.
func WithHourThreshold(hours int) Option {
	return func(o *options) {
		if hours > 0 {
			o.hourThreshold = hours
		}
	}
}

func WithProbPolicy(p ProbPolicy) Option {
	return func(o *options) {
		o.probPolicy = p
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		clock:         clockwork.NewRealClock(),
		hourThreshold: value.DefaultHourThreshold,
		probPolicy:    ProbAttach,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *options) timestamp(repr string) value.Timestamp {
	return value.MakeTimestamp(repr, o.clock.Now(), o.hourThreshold)
}
