package utils

import "time"

// TimeProvider lets services read the clock through an interface so tests can
// pin it.
type TimeProvider interface {
	Now() time.Time
}

type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time { return time.Now().UTC() }

type FixedTimeProvider struct {
	T time.Time
}

func (p *FixedTimeProvider) Now() time.Time { return p.T }

func (p *FixedTimeProvider) Advance(d time.Duration) { p.T = p.T.Add(d) }
