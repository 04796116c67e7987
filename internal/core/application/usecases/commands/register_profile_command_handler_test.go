package commands_test

import (
	"context"
	"errors"
	"testing"

	"laundromart/internal/core/application/usecases/commands"
	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/core/domain/model/profile"
	"laundromart/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProfileUoW struct{ mock.Mock }

func (m *MockProfileUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockProfileUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockProfileUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProfileUoW) ProfileRepository() ports.ProfileRepository {
	args := m.Called()
	return args.Get(0).(ports.ProfileRepository)
}

type MockProfileUoWFactory struct{ mock.Mock }

func (m *MockProfileUoWFactory) Create() commands.ProfileUoW {
	args := m.Called()
	return args.Get(0).(commands.ProfileUoW)
}

func TestNewRegisterProfileCommand_ValidInput(t *testing.T) {
	profileID := kernel.NewUUID()
	cmd, err := commands.NewRegisterProfileCommand(profileID, profile.Driver,
		"Ravi Kumar", "ravi@example.com", "+1-555-0101")
	require.NoError(t, err)
	assert.Equal(t, profileID, cmd.ProfileID())
	assert.Equal(t, profile.Driver, cmd.Role())
	assert.Equal(t, "ravi@example.com", cmd.Email())
}

func TestNewRegisterProfileCommand_InvalidRole(t *testing.T) {
	_, err := commands.NewRegisterProfileCommand(kernel.NewUUID(), profile.RoleUnknown,
		"", "ravi@example.com", "")
	require.Error(t, err)
}

func TestNewRegisterProfileCommand_EmptyEmail(t *testing.T) {
	_, err := commands.NewRegisterProfileCommand(kernel.NewUUID(), profile.Customer, "", "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrEmailIsRequired)
}

func TestRegisterProfileCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	profileID := kernel.NewUUID()
	cmd, _ := commands.NewRegisterProfileCommand(profileID, profile.Customer,
		"Asha Rao", "asha@example.com", "")

	profileRepo := new(MockTransitionProfileRepository)
	uow := new(MockProfileUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProfileRepository").Return(profileRepo).Once(),
		profileRepo.On("Add", ctx, mock.AnythingOfType("*profile.Profile")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProfileUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterProfileCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)

	addedProfile := profileRepo.Calls[0].Arguments[1].(*profile.Profile)
	assert.Equal(t, profileID, addedProfile.ID())
	assert.True(t, addedProfile.IsCustomer())

	profileRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRegisterProfileCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRegisterProfileCommand(kernel.NewUUID(), profile.Admin,
		"Meera Iyer", "meera@example.com", "")

	profileRepo := new(MockTransitionProfileRepository)
	uow := new(MockProfileUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProfileRepository").Return(profileRepo).Once(),
		profileRepo.On("Add", ctx, mock.AnythingOfType("*profile.Profile")).
			Return(errors.New("add error")).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProfileUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterProfileCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "add error")
	uow.AssertNotCalled(t, "Commit")
}
