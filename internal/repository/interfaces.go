package repository

import (
	"context"

	"github.com/iliyamo/rock-catalog/internal/model"
)

// UserStore is the user persistence surface consumed by the auth handler.
// *UserRepo is the MySQL implementation; tests substitute in-memory fakes.
type UserStore interface {
	// Create hashes the password at the given bcrypt cost and inserts a new
	// user, returning its ID. Returns ErrEmailExists on a duplicate email.
	Create(ctx context.Context, email, password string, cost int) (uint64, error)
	// GetByEmail fetches a user by normalized email. Returns ErrUserNotFound
	// when no account exists.
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// RockStore is the specimen persistence surface consumed by the rock handler.
type RockStore interface {
	// ListByOwner returns all rocks owned by ownerID, newest first.
	ListByOwner(ctx context.Context, ownerID uint64) ([]*model.Rock, error)
	// Create inserts the rock and populates ID and timestamps.
	Create(ctx context.Context, r *model.Rock) error
	// DeleteByIDAndOwner removes the rock only when both id and owner match.
	// The returned flag is false for missing records and for rocks owned by
	// someone else; callers must not be able to tell those apart.
	DeleteByIDAndOwner(ctx context.Context, id, ownerID uint64) (bool, error)
}
