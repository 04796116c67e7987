// Package profile provides the actor entity shared by the identity provider
// and the order lifecycle. A profile binds an identifier to a role; the
// lifecycle trusts this binding completely and performs no authentication of
// its own.
package profile

import (
	"errors"
	"time"

	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/pkg/errs"
)

var (
	// ErrProfileIsNotConstructed is returned when a Profile was not created
	// through NewProfile or RestoreProfile.
	ErrProfileIsNotConstructed = errors.New("Profile must be created via NewProfile or RestoreProfile constructor")
)

// Profile represents an acting party: a customer, a driver, or an admin.
// The role is fixed at signup; there is no transition between roles.
type Profile struct {
	id       kernel.UUID
	role     Role
	fullName string
	email    string
	phone    string

	createdAt time.Time

	isConstructed bool
}

// NewProfile creates a profile with validation.
// Email is required; full name and phone are optional contact details.
func NewProfile(id kernel.UUID, role Role, fullName string, email string, phone string) (*Profile, error) {
	p := &Profile{
		fullName:      fullName,
		phone:         phone,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setRole(role),
		p.setEmail(email),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProfile reconstructs a profile from persistence.
func RestoreProfile(
	id kernel.UUID,
	role Role,
	fullName string,
	email string,
	phone string,
	createdAt time.Time,
) (*Profile, error) {
	p, err := NewProfile(id, role, fullName, email, phone)
	if err != nil {
		return nil, err
	}

	p.createdAt = createdAt
	return p, nil
}

// Validate ensures the profile was created through a factory.
func (p *Profile) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProfileIsNotConstructed
	}
	return nil
}

// ID returns the profile's unique identifier.
func (p *Profile) ID() kernel.UUID {
	return p.id
}

// Role returns the profile's immutable role.
func (p *Profile) Role() Role {
	return p.role
}

// FullName returns the display name, possibly empty.
func (p *Profile) FullName() string {
	return p.fullName
}

// Email returns the contact email.
func (p *Profile) Email() string {
	return p.email
}

// Phone returns the contact phone, possibly empty.
func (p *Profile) Phone() string {
	return p.phone
}

// CreatedAt returns the signup timestamp.
func (p *Profile) CreatedAt() time.Time {
	return p.createdAt
}

// IsCustomer reports whether the profile may place orders.
func (p *Profile) IsCustomer() bool {
	return p.role == Customer
}

// IsDriver reports whether the profile may claim and advance orders.
func (p *Profile) IsDriver() bool {
	return p.role == Driver
}

// IsAdmin reports whether the profile may approve, reject, and assign orders.
func (p *Profile) IsAdmin() bool {
	return p.role == Admin
}

func (p *Profile) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Profile) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	p.role = role
	return nil
}

func (p *Profile) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	p.email = email
	return nil
}
