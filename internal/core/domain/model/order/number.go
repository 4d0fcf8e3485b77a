package order

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// NumberGenerator produces human-facing order numbers of the form
// ORD<yyyymmddhhmmss><4-digit random suffix>. The clock and random source are
// injectable so tests can produce deterministic numbers.
//
// The random suffix only reduces collision probability under concurrent
// creation; uniqueness is enforced by the order repository's unique
// constraint, not by the generation scheme.
type NumberGenerator struct {
	now  func() time.Time
	intn func(int) int
}

// NewNumberGenerator creates a generator with the given clock and random
// source. Passing nil for either selects time.Now and math/rand/v2.
func NewNumberGenerator(now func() time.Time, intn func(int) int) NumberGenerator {
	if now == nil {
		now = time.Now
	}
	if intn == nil {
		intn = rand.IntN
	}
	return NumberGenerator{now: now, intn: intn}
}

// Next returns a new order number.
func (g NumberGenerator) Next() string {
	return fmt.Sprintf("ORD%s%04d", g.now().Format("20060102150405"), g.intn(10000))
}
