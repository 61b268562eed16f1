package commands_test

import (
	"testing"

	"returns/internal/core/application/usecases/commands"
	"returns/internal/core/domain/model/kernel"
	"returns/internal/core/domain/model/orderreturn"
	"returns/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receivedLines(quantity int) []orderreturn.ReceivedLine {
	return []orderreturn.ReceivedLine{
		{ItemID: kernel.NewUUID(), Quantity: quantity},
	}
}

func TestNewReceiveReturnCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	lines := receivedLines(3)
	refund := int64(1200)

	cmd, err := commands.NewReceiveReturnCommand(id, lines, &refund, true)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.ReturnID())
	assert.Equal(t, lines, cmd.Items())
	require.NotNil(t, cmd.RefundAmount())
	assert.Equal(t, int64(1200), cmd.RefundAmount().Amount())
	assert.True(t, cmd.AllowMismatch())
}

func TestNewReceiveReturnCommand_EmptyItems(t *testing.T) {
	_, err := commands.NewReceiveReturnCommand(kernel.NewUUID(), nil, nil, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewReceiveReturnCommand_ZeroQuantity(t *testing.T) {
	_, err := commands.NewReceiveReturnCommand(kernel.NewUUID(), receivedLines(0), nil, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewReceiveReturnCommand_NegativeRefund(t *testing.T) {
	refund := int64(-5)
	_, err := commands.NewReceiveReturnCommand(kernel.NewUUID(), receivedLines(1), &refund, false)
	require.Error(t, err)
}

func TestReceiveReturnCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.ReceiveReturnCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrReceiveReturnCommandIsNotConstructed)
}
