package order_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
)

func TestNumberGenerator_Next(t *testing.T) {
	fixed := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)
	gen := order.NewNumberGenerator(
		func() time.Time { return fixed },
		func(int) int { return 42 },
	)

	assert.Equal(t, "ORD202601021504050042", gen.Next())
}

func TestNumberGenerator_Defaults(t *testing.T) {
	gen := order.NewNumberGenerator(nil, nil)

	no := gen.Next()
	assert.Len(t, no, 3+14+4)
	assert.Equal(t, "ORD", no[:3])
}
