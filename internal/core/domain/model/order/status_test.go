package order_test

import (
	"errors"
	"testing"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	tests := map[order.Status]string{
		order.Pending:    "pending",
		order.Confirmed:  "confirmed",
		order.Assigned:   "assigned",
		order.PickedUp:   "picked_up",
		order.InTransit:  "in_transit",
		order.Delivered:  "delivered",
		order.Signed:     "signed",
		order.Cancelled:  "cancelled",
		order.Abnormal:   "abnormal",
		order.Unknown:    "unknown",
		order.Status(42): "unknown",
	}

	for status, want := range tests {
		assert.Equal(t, want, status.String())
	}
}

func TestStatusFromString(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Pending, order.Confirmed, order.Assigned, order.PickedUp,
			order.InTransit, order.Delivered, order.Signed, order.Cancelled, order.Abnormal,
		} {
			parsed, err := order.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("unknown value", func(t *testing.T) {
		_, err := order.StatusFromString("shipped")
		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrValueIsInvalid))
	})
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, order.Pending.Validate())
	require.NoError(t, order.Abnormal.Validate())
	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(42).Validate())
}

func TestStatus_Transitions(t *testing.T) {
	type transition struct {
		name    string
		apply   func(order.Status) (order.Status, error)
		allowed map[order.Status]order.Status
	}

	all := []order.Status{
		order.Pending, order.Confirmed, order.Assigned, order.PickedUp,
		order.InTransit, order.Delivered, order.Signed, order.Cancelled, order.Abnormal,
	}

	transitions := []transition{
		{
			name:    "confirm",
			apply:   order.Status.Confirm,
			allowed: map[order.Status]order.Status{order.Pending: order.Confirmed},
		},
		{
			name:    "assign",
			apply:   order.Status.Assign,
			allowed: map[order.Status]order.Status{order.Confirmed: order.Assigned},
		},
		{
			name:    "pick up",
			apply:   order.Status.PickUp,
			allowed: map[order.Status]order.Status{order.Assigned: order.PickedUp},
		},
		{
			name:    "start transit",
			apply:   order.Status.StartTransit,
			allowed: map[order.Status]order.Status{order.PickedUp: order.InTransit},
		},
		{
			name:    "deliver",
			apply:   order.Status.Deliver,
			allowed: map[order.Status]order.Status{order.InTransit: order.Delivered},
		},
		{
			name:    "sign",
			apply:   order.Status.Sign,
			allowed: map[order.Status]order.Status{order.Delivered: order.Signed},
		},
		{
			name:  "cancel",
			apply: order.Status.Cancel,
			allowed: map[order.Status]order.Status{
				order.Pending:   order.Cancelled,
				order.Confirmed: order.Cancelled,
			},
		},
		{
			name:  "mark abnormal",
			apply: order.Status.MarkAbnormal,
			allowed: map[order.Status]order.Status{
				order.Pending:   order.Abnormal,
				order.Confirmed: order.Abnormal,
				order.Assigned:  order.Abnormal,
				order.PickedUp:  order.Abnormal,
				order.InTransit: order.Abnormal,
				order.Delivered: order.Abnormal,
			},
		},
	}

	for _, tr := range transitions {
		t.Run(tr.name, func(t *testing.T) {
			for _, from := range all {
				result, err := tr.apply(from)
				if want, ok := tr.allowed[from]; ok {
					require.NoError(t, err, "from %s", from)
					assert.Equal(t, want, result)
				} else {
					require.Error(t, err, "from %s", from)
					assert.True(t, errors.Is(err, errs.ErrInvalidTransition), "from %s", from)
				}
			}
		})
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Signed.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.True(t, order.Abnormal.IsTerminal())
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.Delivered.IsTerminal())
}

func TestStatus_ValidateCanHaveAgent(t *testing.T) {
	require.Error(t, order.Pending.ValidateCanHaveAgent(true))
	require.Error(t, order.Confirmed.ValidateCanHaveAgent(true))
	require.Error(t, order.Cancelled.ValidateCanHaveAgent(true))
	require.NoError(t, order.Pending.ValidateCanHaveAgent(false))

	require.Error(t, order.Assigned.ValidateCanHaveAgent(false))
	require.Error(t, order.Signed.ValidateCanHaveAgent(false))
	require.NoError(t, order.Assigned.ValidateCanHaveAgent(true))

	// abnormal can be reached both before and after assignment
	require.NoError(t, order.Abnormal.ValidateCanHaveAgent(true))
	require.NoError(t, order.Abnormal.ValidateCanHaveAgent(false))
}
