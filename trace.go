package modexp

import (
	"time"

	"go.uber.org/zap"
)

// A Tracer is told how long each stage of an exponentiation took.
//
// Stages are reported in order, each measured from the end of the
// previous one.
type Tracer interface {
	Stage(name string, elapsed time.Duration)
}

// TracerFunc adapts a function to the Tracer interface.
type TracerFunc func(name string, elapsed time.Duration)

func (f TracerFunc) Stage(name string, elapsed time.Duration) { f(name, elapsed) }

// ZapTracer logs every stage at debug level.
type ZapTracer struct {
	Logger *zap.Logger
}

// NewZapTracer returns a tracer logging through l.
func NewZapTracer(l *zap.Logger) *ZapTracer {
	return &ZapTracer{Logger: l.Named("modexp")}
}

func (t *ZapTracer) Stage(name string, elapsed time.Duration) {
	t.Logger.Debug("stage done", zap.String("stage", name), zap.Duration("elapsed", elapsed))
}

// clock hands out elapsed times between successive stages.
type clock struct {
	tracer Tracer
	then   time.Time
}

func newClock(t Tracer) *clock {
	c := &clock{tracer: t}
	if t != nil {
		c.then = time.Now()
	}
	return c
}

func (c *clock) stage(name string) {
	if c.tracer == nil {
		return
	}
	now := time.Now()
	c.tracer.Stage(name, now.Sub(c.then))
	c.then = now
}
