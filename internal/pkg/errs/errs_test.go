package errs_test

import (
	"errors"
	"testing"

	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.True(t, errors.Is(err, errs.ErrObjectNotFound))
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("quantity")

		assert.Equal(t, "quantity", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: quantity", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("0 is not greater than 0")
		err := errs.NewValueIsInvalidErrorWithCause("quantity", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: quantity (cause: 0 is not greater than 0)", err.Error())
		assert.True(t, errors.Is(err, errs.ErrValueIsInvalid))
	})

	t.Run("sanitize flattens newlines", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("remark\nwith newline")
		assert.Contains(t, err.Error(), "remark with newline")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("receiverName")

	assert.Equal(t, "value is required: receiverName", err.Error())
	assert.True(t, errors.Is(err, errs.ErrValueIsRequired))
}

func TestInvalidTransitionError(t *testing.T) {
	err := errs.NewInvalidTransitionError("confirm", "confirmed")

	assert.Equal(t, "confirm", err.Operation)
	assert.Equal(t, "confirmed", err.FromStatus)
	assert.Equal(t, "invalid status transition: cannot confirm from status confirmed", err.Error())
	assert.True(t, errors.Is(err, errs.ErrInvalidTransition))
}

func TestInsufficientStockError(t *testing.T) {
	err := errs.NewInsufficientStockError("p-1", 5, 2)

	assert.Equal(t, 5, err.Requested)
	assert.Equal(t, 2, err.Available)
	assert.Equal(t, "insufficient stock: product p-1 has 2, requested 5", err.Error())
	assert.True(t, errors.Is(err, errs.ErrInsufficientStock))
}

func TestForbiddenError(t *testing.T) {
	err := errs.NewForbiddenError("sign", "u-9")

	assert.Equal(t, "operation is forbidden: sign is not permitted for caller u-9", err.Error())
	assert.True(t, errors.Is(err, errs.ErrForbidden))
}

func TestConflictError(t *testing.T) {
	err := errs.NewConflictError("order", "o-1")

	assert.Equal(t, "concurrent modification conflict: order o-1 was modified by another operation", err.Error())
	assert.True(t, errors.Is(err, errs.ErrConflict))
}
