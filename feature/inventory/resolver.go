package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"skinfolio/feature/inventory/models"

	"gorm.io/gorm"
)

// ErrUserNotFound is returned when the internal user id has no account.
var ErrUserNotFound = errors.New("user not found")

// Identity is the external identity a sync operates on.
type Identity struct {
	UserID         uint
	SteamID        string
	LastActivityAt time.Time
}

// UserResolver maps an internal user id to its Steam identity and
// last-activity timestamp.
type UserResolver interface {
	Resolve(ctx context.Context, userID uint) (*Identity, error)
}

// GormUserResolver resolves identities from the users table.
type GormUserResolver struct {
	db *gorm.DB
}

// NewUserResolver creates a resolver backed by the given database.
func NewUserResolver(db *gorm.DB) *GormUserResolver {
	return &GormUserResolver{db: db}
}

// Resolve loads the user row. Unknown ids return ErrUserNotFound.
func (r *GormUserResolver) Resolve(ctx context.Context, userID uint) (*Identity, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("id = ?", userID).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}
	return &Identity{
		UserID:         user.ID,
		SteamID:        user.SteamID,
		LastActivityAt: user.LastActivityAt,
	}, nil
}
