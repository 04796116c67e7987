// Package profilerepo persists actor profiles.
package profilerepo

import (
	"time"

	"laundromart/internal/core/domain/model/kernel"
	"laundromart/internal/core/domain/model/profile"

	"github.com/google/uuid"
)

// ProfileDTO represents the database structure for persisting profiles.
type ProfileDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role      string    `gorm:"type:varchar(16);index"`
	FullName  string
	Email     string `gorm:"uniqueIndex"`
	Phone     string
	CreatedAt time.Time
}

// TableName specifies the database table name for profile entities.
func (ProfileDTO) TableName() string {
	return "profiles"
}

func fromDomain(aggregate *profile.Profile) ProfileDTO {
	return ProfileDTO{
		ID:        aggregate.ID().Bytes(),
		Role:      aggregate.Role().String(),
		FullName:  aggregate.FullName(),
		Email:     aggregate.Email(),
		Phone:     aggregate.Phone(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

func toDomain(dto ProfileDTO) (*profile.Profile, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := profile.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return profile.RestoreProfile(id, role, dto.FullName, dto.Email, dto.Phone, dto.CreatedAt)
}
