package queries

import (
	"errors"
	"time"

	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/core/domain/model/profile"
	"laundromart/internal/pkg/guard"
)

var (
	ErrGetProfileQueryIsNotConstructed = errors.New(
		"GetProfileQuery must be created via NewGetProfileQuery constructor",
	)
)

// GetProfileQuery resolves a profile by its identifier. The HTTP layer uses
// it to turn the acting profile's ID into a role before dispatching requests.
type GetProfileQuery struct { //nolint:recvcheck //using for validation
	profileID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetProfileQuery creates a query for the given profile ID.
func NewGetProfileQuery(profileID kernel.UUID) (GetProfileQuery, error) {
	query := GetProfileQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setProfileID(profileID); err != nil {
		return GetProfileQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetProfileQueryIsNotConstructed if validation fails.
func (q GetProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetProfileQueryIsNotConstructed)
}

// ProfileID returns the requested profile's identifier.
func (q GetProfileQuery) ProfileID() kernel.UUID {
	return q.profileID
}

func (q *GetProfileQuery) setProfileID(profileID kernel.UUID) error {
	if err := profileID.Validate(); err != nil {
		return err
	}

	q.profileID = profileID
	return nil
}

// GetProfileQueryResponse is the flat read model of one profile row.
type GetProfileQueryResponse struct {
	ID        kernel.UUID
	Role      profile.Role
	FullName  string
	Email     string
	Phone     string
	CreatedAt time.Time
}
