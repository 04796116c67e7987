package queries

import (
	"context"
	"database/sql"
	"errors"

	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/core/domain/model/profile"
	"laundromart/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProfileQueryHandler reads a single profile row.
// Uses direct SQL for optimal read performance in the CQRS pattern.
type GetProfileQueryHandler struct {
	db *gorm.DB
}

// NewGetProfileQueryHandler creates a handler for profile lookup queries.
// Requires a GORM database connection for query execution.
func NewGetProfileQueryHandler(db *gorm.DB) GetProfileQueryHandler {
	return GetProfileQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when no profile
// with the given ID exists.
func (h GetProfileQueryHandler) Handle(
	ctx context.Context,
	query GetProfileQuery,
) (GetProfileQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetProfileQueryResponse{}, err
	}

	var resp GetProfileQueryResponse
	var id uuid.UUID
	var role string

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			role,
			full_name,
			email,
			phone,
			created_at
		FROM profiles
		WHERE id = ?
	`, query.ProfileID().String()).Row()

	err := row.Scan(&id, &role, &resp.FullName, &resp.Email, &resp.Phone, &resp.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return GetProfileQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(
			"profileId", query.ProfileID(), err)
	}
	if err != nil {
		return GetProfileQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetProfileQueryResponse{}, err
	}
	if resp.Role, err = profile.RoleFromString(role); err != nil {
		return GetProfileQueryResponse{}, err
	}

	return resp, nil
}
