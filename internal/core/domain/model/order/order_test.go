package order_test

import (
	"errors"
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validShipping() order.ShippingInfo {
	return order.ShippingInfo{
		Address:       "12 Elm Street",
		ReceiverName:  "Alice",
		ReceiverPhone: "555-0101",
		SenderAddress: "1 Warehouse Road",
		Remark:        "leave at door",
	}
}

func newPendingOrder(t *testing.T) (*order.Order, kernel.UUID, kernel.UUID) {
	t.Helper()
	customerID := kernel.NewUUID()
	merchantID := kernel.NewUUID()

	o, err := order.NewOrder(
		kernel.NewUUID(), "ORD202601021504050042", customerID, merchantID,
		"Espresso Beans", 3, 4500, validShipping(), time.Now(),
	)
	require.NoError(t, err)
	return o, customerID, merchantID
}

func TestNewOrder(t *testing.T) {
	t.Run("valid order starts pending", func(t *testing.T) {
		o, _, _ := newPendingOrder(t)

		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.AgentID())
		assert.Nil(t, o.ConfirmedAt())
		assert.Nil(t, o.DeliveredAt())
		assert.Nil(t, o.SignedAt())
		assert.Equal(t, int64(4500), o.TotalPrice())
		require.NoError(t, o.Validate())
	})

	t.Run("quantity below one is rejected", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), "ORD1", kernel.NewUUID(), kernel.NewUUID(),
			"Beans", 0, 0, validShipping(), time.Now(),
		)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrValueIsInvalid))
	})

	t.Run("missing shipping fields are rejected", func(t *testing.T) {
		shipping := validShipping()
		shipping.ReceiverPhone = ""
		_, err := order.NewOrder(
			kernel.NewUUID(), "ORD1", kernel.NewUUID(), kernel.NewUUID(),
			"Beans", 1, 100, shipping, time.Now(),
		)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrValueIsRequired))
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var o order.Order
		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})
}

func TestOrder_Confirm(t *testing.T) {
	t.Run("merchant confirms pending order", func(t *testing.T) {
		o, _, merchantID := newPendingOrder(t)
		now := time.Now()

		require.NoError(t, o.Confirm(merchantID, now))
		assert.Equal(t, order.Confirmed, o.Status())
		require.NotNil(t, o.ConfirmedAt())
		assert.Equal(t, now, *o.ConfirmedAt())
	})

	t.Run("other merchant is forbidden", func(t *testing.T) {
		o, _, _ := newPendingOrder(t)

		err := o.Confirm(kernel.NewUUID(), time.Now())
		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrForbidden))
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("second confirm fails without side effects", func(t *testing.T) {
		o, _, merchantID := newPendingOrder(t)
		first := time.Now()
		require.NoError(t, o.Confirm(merchantID, first))

		err := o.Confirm(merchantID, first.Add(time.Minute))
		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrInvalidTransition))
		assert.Equal(t, first, *o.ConfirmedAt())
	})
}

func TestOrder_FullLifecycle(t *testing.T) {
	o, customerID, merchantID := newPendingOrder(t)
	agentID := kernel.NewUUID()
	now := time.Now()

	require.NoError(t, o.Confirm(merchantID, now))
	require.NoError(t, o.AssignAgent(agentID, now))
	assert.Equal(t, order.Assigned, o.Status())
	require.NotNil(t, o.AgentID())
	assert.True(t, o.AgentID().IsEqual(agentID))

	require.NoError(t, o.PickUp(agentID, now))
	require.NoError(t, o.StartTransit(agentID, now))
	require.NoError(t, o.Deliver(agentID, now))
	require.NotNil(t, o.DeliveredAt())

	require.NoError(t, o.Sign(customerID, now))
	assert.Equal(t, order.Signed, o.Status())
	require.NotNil(t, o.SignedAt())
}

func TestOrder_AgentOperationsRequireAssignedAgent(t *testing.T) {
	o, _, merchantID := newPendingOrder(t)
	agentID := kernel.NewUUID()
	now := time.Now()
	require.NoError(t, o.Confirm(merchantID, now))
	require.NoError(t, o.AssignAgent(agentID, now))

	stranger := kernel.NewUUID()
	for name, op := range map[string]func() error{
		"pick up":       func() error { return o.PickUp(stranger, now) },
		"start transit": func() error { return o.StartTransit(stranger, now) },
		"deliver":       func() error { return o.Deliver(stranger, now) },
	} {
		err := op()
		require.Error(t, err, name)
		assert.True(t, errors.Is(err, errs.ErrForbidden), name)
	}
	assert.Equal(t, order.Assigned, o.Status())
}

func TestOrder_Sign(t *testing.T) {
	t.Run("only the customer may sign", func(t *testing.T) {
		o, _, merchantID := newPendingOrder(t)
		agentID := kernel.NewUUID()
		now := time.Now()
		require.NoError(t, o.Confirm(merchantID, now))
		require.NoError(t, o.AssignAgent(agentID, now))
		require.NoError(t, o.PickUp(agentID, now))
		require.NoError(t, o.StartTransit(agentID, now))
		require.NoError(t, o.Deliver(agentID, now))

		err := o.Sign(kernel.NewUUID(), now)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrForbidden))
	})

	t.Run("signing before delivery is rejected", func(t *testing.T) {
		o, customerID, _ := newPendingOrder(t)

		err := o.Sign(customerID, time.Now())
		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrInvalidTransition))
		assert.Nil(t, o.SignedAt())
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("customer cancels pending order", func(t *testing.T) {
		o, customerID, _ := newPendingOrder(t)

		require.NoError(t, o.Cancel(customerID, false, time.Now()))
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("admin cancels confirmed order", func(t *testing.T) {
		o, _, merchantID := newPendingOrder(t)
		require.NoError(t, o.Confirm(merchantID, time.Now()))

		require.NoError(t, o.Cancel(kernel.NewUUID(), true, time.Now()))
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("other customer is forbidden", func(t *testing.T) {
		o, _, _ := newPendingOrder(t)

		err := o.Cancel(kernel.NewUUID(), false, time.Now())
		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrForbidden))
	})

	t.Run("cancel in transit is rejected", func(t *testing.T) {
		o, customerID, merchantID := newPendingOrder(t)
		agentID := kernel.NewUUID()
		now := time.Now()
		require.NoError(t, o.Confirm(merchantID, now))
		require.NoError(t, o.AssignAgent(agentID, now))
		require.NoError(t, o.PickUp(agentID, now))
		require.NoError(t, o.StartTransit(agentID, now))

		err := o.Cancel(customerID, false, now)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrInvalidTransition))
		assert.Equal(t, order.InTransit, o.Status())
	})
}

func TestOrder_MarkAbnormal(t *testing.T) {
	t.Run("assigned agent marks abnormal with reason", func(t *testing.T) {
		o, _, merchantID := newPendingOrder(t)
		agentID := kernel.NewUUID()
		now := time.Now()
		require.NoError(t, o.Confirm(merchantID, now))
		require.NoError(t, o.AssignAgent(agentID, now))

		require.NoError(t, o.MarkAbnormal(agentID, false, "receiver unreachable", now))
		assert.Equal(t, order.Abnormal, o.Status())
		assert.Equal(t, "receiver unreachable", o.AbnormalReason())
		// assignment is kept; only signing releases an agent
		assert.NotNil(t, o.AgentID())
	})

	t.Run("admin marks pending order abnormal", func(t *testing.T) {
		o, _, _ := newPendingOrder(t)

		require.NoError(t, o.MarkAbnormal(kernel.NewUUID(), true, "merchant unresponsive", time.Now()))
		assert.Equal(t, order.Abnormal, o.Status())
	})

	t.Run("non-agent non-admin is forbidden", func(t *testing.T) {
		o, _, _ := newPendingOrder(t)

		err := o.MarkAbnormal(kernel.NewUUID(), false, "reason", time.Now())
		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrForbidden))
	})

	t.Run("reason is required", func(t *testing.T) {
		o, _, _ := newPendingOrder(t)

		err := o.MarkAbnormal(kernel.NewUUID(), true, "", time.Now())
		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrValueIsRequired))
	})

	t.Run("terminal states are rejected", func(t *testing.T) {
		o, customerID, _ := newPendingOrder(t)
		require.NoError(t, o.Cancel(customerID, false, time.Now()))

		err := o.MarkAbnormal(kernel.NewUUID(), true, "too late", time.Now())
		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrInvalidTransition))
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores a persisted order", func(t *testing.T) {
		id := kernel.NewUUID()
		agentID := kernel.NewUUID()
		now := time.Now()
		confirmedAt := now.Add(-time.Hour)

		o, err := order.RestoreOrder(
			id, "ORD202601021504050042", kernel.NewUUID(), kernel.NewUUID(), &agentID,
			"Espresso Beans", 3, 4500, validShipping(),
			order.Assigned, "", now.Add(-2*time.Hour), now, &confirmedAt, nil, nil, 4,
		)
		require.NoError(t, err)
		assert.Equal(t, order.Assigned, o.Status())
		assert.Equal(t, 4, o.Version())
		assert.True(t, o.AgentID().IsEqual(agentID))
	})

	t.Run("rejects agent on pending order", func(t *testing.T) {
		agentID := kernel.NewUUID()
		_, err := order.RestoreOrder(
			kernel.NewUUID(), "ORD1", kernel.NewUUID(), kernel.NewUUID(), &agentID,
			"Beans", 1, 100, validShipping(),
			order.Pending, "", time.Now(), time.Now(), nil, nil, nil, 0,
		)
		require.Error(t, err)
	})

	t.Run("rejects missing agent on assigned order", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), "ORD1", kernel.NewUUID(), kernel.NewUUID(), nil,
			"Beans", 1, 100, validShipping(),
			order.Assigned, "", time.Now(), time.Now(), nil, nil, nil, 0,
		)
		require.Error(t, err)
	})
}
