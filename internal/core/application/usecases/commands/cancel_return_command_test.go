package commands_test

import (
	"testing"

	"returns/internal/core/application/usecases/commands"
	"returns/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCancelReturnCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewCancelReturnCommand(id)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.ReturnID())
	assert.NoError(t, cmd.Validate())
}

func TestNewCancelReturnCommand_InvalidReturnID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCancelReturnCommand(invalidID)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCancelReturnCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.CancelReturnCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCancelReturnCommandIsNotConstructed)
}
