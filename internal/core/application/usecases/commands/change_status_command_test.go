package commands_test

import (
	"testing"

	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChangeStatusCommand_ValidInput(t *testing.T) {
	entityID := kernel.NewUUID()
	cmd, err := commands.NewChangeStatusCommand(
		commands.EntityOrderItem, entityID, "Press", true, "press@customer.example")
	require.NoError(t, err)
	assert.Equal(t, commands.EntityOrderItem, cmd.EntityType())
	assert.Equal(t, entityID, cmd.EntityID())
	assert.Equal(t, "Press", cmd.TargetStatus())
	assert.True(t, cmd.Notify())
	assert.Equal(t, "press@customer.example", cmd.RecipientOverride())
}

func TestNewChangeStatusCommand_UnknownEntityType(t *testing.T) {
	_, err := commands.NewChangeStatusCommand(
		commands.EntityUnknown, kernel.NewUUID(), "Press", false, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewChangeStatusCommand_InvalidEntityID(t *testing.T) {
	_, err := commands.NewChangeStatusCommand(
		commands.EntityOrder, kernel.UUID{}, "Shipping", false, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewChangeStatusCommand_EmptyTargetStatus(t *testing.T) {
	_, err := commands.NewChangeStatusCommand(
		commands.EntityOrder, kernel.NewUUID(), "", false, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewChangeStatusCommand_NotifyRequiresRecipient(t *testing.T) {
	_, err := commands.NewChangeStatusCommand(
		commands.EntityOrder, kernel.NewUUID(), "Shipping", true, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewChangeStatusCommand_RecipientIgnoredWithoutNotify(t *testing.T) {
	cmd, err := commands.NewChangeStatusCommand(
		commands.EntityOrder, kernel.NewUUID(), "Shipping", false, "")
	require.NoError(t, err)
	assert.False(t, cmd.Notify())
	assert.Empty(t, cmd.RecipientOverride())
}

func TestEntityTypeFromString(t *testing.T) {
	tests := []struct {
		name string
		want commands.EntityType
	}{
		{"Estimate", commands.EntityEstimate},
		{"EstimateItem", commands.EntityEstimateItem},
		{"Order", commands.EntityOrder},
		{"OrderItem", commands.EntityOrderItem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := commands.EntityTypeFromString(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.name, got.String())
		})
	}
}

func TestEntityTypeFromString_Invalid(t *testing.T) {
	_, err := commands.EntityTypeFromString("Courier")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
