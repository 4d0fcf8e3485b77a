package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/agent"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSetAgentAvailabilityCommandHandler_Handle_GoOffline(t *testing.T) {
	ctx := t.Context()
	agentID := kernel.NewUUID()
	testAgent, err := agent.RestoreAgent(agentID, "Jane Smith", agent.Available, true)
	require.NoError(t, err)

	cmd, err := commands.NewSetAgentAvailabilityCommand(agentID, agent.Offline)
	require.NoError(t, err)

	directory := new(MockAgentDirectory)
	uow := new(MockFulfillmentUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AgentDirectory").Return(directory).Once(),
		directory.On("Get", ctx, agentID).Return(testAgent, nil).Once(),
		directory.On("SetAvailability", ctx, agentID, agent.Offline).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSetAgentAvailabilityCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, agent.Offline, updated.Availability())

	directory.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSetAgentAvailabilityCommandHandler_Handle_BusyAgentRejected(t *testing.T) {
	ctx := t.Context()
	agentID := kernel.NewUUID()
	testAgent, err := agent.RestoreAgent(agentID, "Jane Smith", agent.Busy, true)
	require.NoError(t, err)

	cmd, err := commands.NewSetAgentAvailabilityCommand(agentID, agent.Available)
	require.NoError(t, err)

	directory := new(MockAgentDirectory)
	uow := new(MockFulfillmentUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AgentDirectory").Return(directory).Once(),
		directory.On("Get", ctx, agentID).Return(testAgent, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSetAgentAvailabilityCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrConflict)
	assert.Nil(t, updated)
	directory.AssertNotCalled(t, "SetAvailability", ctx, agentID, agent.Available)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestNewSetAgentAvailabilityCommand_InvalidAvailability(t *testing.T) {
	_, err := commands.NewSetAgentAvailabilityCommand(kernel.NewUUID(), agent.UnknownAvailability)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
