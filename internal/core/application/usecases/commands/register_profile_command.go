package commands

import (
	"errors"

	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/core/domain/model/profile"
	"laundromart/internal/pkg/guard"
)

var (
	ErrRegisterProfileCommandIsNotConstructed = errors.New(
		"RegisterProfileCommand must be created via NewRegisterProfileCommand constructor",
	)
	ErrEmailIsRequired = errors.New("email is required")
)

// RegisterProfileCommand represents a signup: binding an identifier to a role.
// The role is fixed here and never changes afterwards.
type RegisterProfileCommand struct { //nolint:recvcheck //using for validation
	profileID kernel.UUID
	role      profile.Role
	fullName  string
	email     string
	phone     string

	guard guard.ConstructorGuard
}

// NewRegisterProfileCommand creates a command to register a new profile.
// Validates that the identifier is valid, the role is known, and the email is
// not empty. Full name and phone are optional.
func NewRegisterProfileCommand(
	profileID kernel.UUID,
	role profile.Role,
	fullName string,
	email string,
	phone string,
) (RegisterProfileCommand, error) {
	command := RegisterProfileCommand{
		fullName: fullName,
		phone:    phone,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setProfileID(profileID),
		command.setRole(role),
		command.setEmail(email),
	); err != nil {
		return RegisterProfileCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterProfileCommandIsNotConstructed if validation fails.
func (c RegisterProfileCommand) Validate() error {
	return c.guard.Validate(ErrRegisterProfileCommandIsNotConstructed)
}

// ProfileID returns the new profile's identifier.
func (c RegisterProfileCommand) ProfileID() kernel.UUID {
	return c.profileID
}

// Role returns the role the profile signs up with.
func (c RegisterProfileCommand) Role() profile.Role {
	return c.role
}

// FullName returns the display name, possibly empty.
func (c RegisterProfileCommand) FullName() string {
	return c.fullName
}

// Email returns the contact email.
func (c RegisterProfileCommand) Email() string {
	return c.email
}

// Phone returns the contact phone, possibly empty.
func (c RegisterProfileCommand) Phone() string {
	return c.phone
}

func (c *RegisterProfileCommand) setProfileID(profileID kernel.UUID) error {
	if err := profileID.Validate(); err != nil {
		return err
	}

	c.profileID = profileID
	return nil
}

func (c *RegisterProfileCommand) setRole(role profile.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}

func (c *RegisterProfileCommand) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}
