package commands

import (
	"context"

	"laundromart/internal/core/domain/model/profile"
)

// RegisterProfileCommandHandler handles profile signup.
// Creates the profile with its immutable role and persists it.
type RegisterProfileCommandHandler struct {
	uowFactory ProfileUoWFactory
}

// NewRegisterProfileCommandHandler creates a handler for signup operations.
// Requires a ProfileUoWFactory for transactional persistence.
func NewRegisterProfileCommandHandler(uowFactory ProfileUoWFactory) RegisterProfileCommandHandler {
	return RegisterProfileCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the signup command.
func (h *RegisterProfileCommandHandler) Handle(ctx context.Context, cmd RegisterProfileCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	newProfile, err := profile.NewProfile(cmd.ProfileID(), cmd.Role(), cmd.FullName(), cmd.Email(), cmd.Phone())
	if err != nil {
		return err
	}

	if err = uow.ProfileRepository().Add(ctx, newProfile); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
