package crossing

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Func receives the names of two members whose segments overlap or cross.
// a is the member being inserted, b the member already in the model.
type Func func(a, b string)

// Noop discards every notification.
func Noop(string, string) {}

// Message formats the user-facing notification for a crossing pair.
func Message(a, b, model string) string {
	return fmt.Sprintf("Elements %q and %q are crossing in model %q", a, b, model)
}

// LogReporter returns a Func that logs each crossing as a warning.
// A nil logger uses log.Default().
func LogReporter(logger *log.Logger, model string) Func {
	if logger == nil {
		logger = log.Default()
	}
	return func(a, b string) {
		logger.Warn(Message(a, b, model))
	}
}

// Tee fans each notification out to every non-nil fn, in order.
func Tee(fns ...Func) Func {
	return func(a, b string) {
		for _, fn := range fns {
			if fn != nil {
				fn(a, b)
			}
		}
	}
}

// Pair is one reported crossing.
type Pair struct {
	A, B string
}

func (p Pair) String() string { return p.A + " x " + p.B }

// key normalizes the pair so (a, b) and (b, a) collide.
func (p Pair) key() Pair {
	if p.B < p.A {
		return Pair{A: p.B, B: p.A}
	}
	return p
}

// Collector records crossings in the order they were reported, dropping
// repeats of a pair in either orientation.
type Collector struct {
	pairs []Pair
	seen  map[Pair]struct{}
}

// Report records a crossing. Use c.Report as a Func.
func (c *Collector) Report(a, b string) {
	p := Pair{A: a, B: b}
	if c.seen == nil {
		c.seen = make(map[Pair]struct{})
	}
	if _, dup := c.seen[p.key()]; dup {
		return
	}
	c.seen[p.key()] = struct{}{}
	c.pairs = append(c.pairs, p)
}

// Pairs returns the recorded crossings.
func (c *Collector) Pairs() []Pair { return c.pairs }

// Len returns the number of distinct crossings.
func (c *Collector) Len() int { return len(c.pairs) }

// Involves returns every recorded pair that names member.
func (c *Collector) Involves(member string) []Pair {
	var out []Pair
	for _, p := range c.pairs {
		if p.A == member || p.B == member {
			out = append(out, p)
		}
	}
	return out
}

// Reset discards everything recorded.
func (c *Collector) Reset() {
	c.pairs = nil
	c.seen = nil
}
