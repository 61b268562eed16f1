package errs_test

import (
	"errors"
	"testing"

	"returns/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("returnId", "123")

		assert.Equal(t, "returnId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("returnId", "123", cause)

		assert.Equal(t, "returnId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: returnId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestOperationNotAllowedError(t *testing.T) {
	t.Run("NewOperationNotAllowedError", func(t *testing.T) {
		err := errs.NewOperationNotAllowedError("cannot cancel a received return")

		assert.Equal(t, "cannot cancel a received return", err.Reason)
		require.NoError(t, err.Cause)
		assert.Equal(t, "operation not allowed: cannot cancel a received return", err.Error())
		assert.Equal(t, errs.ErrOperationNotAllowed, err.Unwrap())
	})

	t.Run("NewOperationNotAllowedErrorWithCause", func(t *testing.T) {
		cause := errors.New("status is received")
		err := errs.NewOperationNotAllowedErrorWithCause("return cannot be mutated", cause)

		assert.Equal(t, "return cannot be mutated", err.Reason)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"operation not allowed: return cannot be mutated (cause: status is received)",
			err.Error())
		assert.Equal(t, errs.ErrOperationNotAllowed, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("itemId")

		assert.Equal(t, "itemId", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: itemId", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("itemId", cause)

		assert.Equal(t, "itemId", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: itemId (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", 5, 1, 3)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, 5, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 3, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 5 is quantity, min value is 1, max value is 3", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("refund", -5, 0, 100, cause)

		assert.Equal(t, "refund", err.ParamName)
		assert.Equal(t, -5, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 100, err.Max)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -5 is refund, min value is 0, max value is 100 (cause: validation failed)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("orderId")

		assert.Equal(t, "orderId", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: orderId", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("orderId", cause)

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: orderId (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrOperationNotAllowed)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "operation not allowed", errs.ErrOperationNotAllowed.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		objectNotFoundErr := errs.NewObjectNotFoundError("returnId", "123")
		require.ErrorIs(t, objectNotFoundErr, errs.ErrObjectNotFound)

		notAllowedErr := errs.NewOperationNotAllowedError("return is canceled")
		require.ErrorIs(t, notAllowedErr, errs.ErrOperationNotAllowed)

		valueInvalidErr := errs.NewValueIsInvalidError("itemId")
		require.ErrorIs(t, valueInvalidErr, errs.ErrValueIsInvalid)

		valueOutOfRangeErr := errs.NewValueIsOutOfRangeError("quantity", 5, 1, 3)
		require.ErrorIs(t, valueOutOfRangeErr, errs.ErrValueIsOutOfRange)

		valueRequiredErr := errs.NewValueIsRequiredError("orderId")
		require.ErrorIs(t, valueRequiredErr, errs.ErrValueIsRequired)
	})
}
