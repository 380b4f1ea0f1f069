package store

import (
	"context"

	"github.com/sunjoo-dev/movein-registry/models"
)

// UserRepository is the data-access contract for user accounts.
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields populated. Returns ErrEmailAlreadyExists on a duplicate email.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks an account up by its email.
	// Returns ErrNoUserWasFound when no account matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// GetUserByID looks an account up by its numeric identifier.
	// Returns ErrNoUserWasFound when no account matches.
	GetUserByID(ctx context.Context, userID int64) (models.User, error)

	// FindFirstAdmin returns the oldest account with the admin role.
	// Returns ErrNoUserWasFound when no admin exists yet.
	FindFirstAdmin(ctx context.Context) (models.User, error)

	// ListUsers returns all accounts ordered by id.
	ListUsers(ctx context.Context) ([]models.User, error)

	// UpdateUsername replaces the display name of an account.
	// Returns ErrNoUserWasFound when the account does not exist.
	UpdateUsername(ctx context.Context, userID int64, username string) error

	// DeleteUser removes an account.
	// Returns ErrNoUserWasFound when the account does not exist.
	DeleteUser(ctx context.Context, userID int64) error
}

// MoveInRepository is the data-access contract for relocation notices.
// The RRN column always holds the cipher token; encryption and decryption are
// the service layer's responsibility.
type MoveInRepository interface {
	// CreateMoveIn persists a new notice and returns it with server-assigned
	// fields populated.
	CreateMoveIn(ctx context.Context, movein models.MoveIn) (models.MoveIn, error)

	// GetMoveIn fetches a single notice by id.
	// Returns ErrMoveInNotFound when no notice matches.
	GetMoveIn(ctx context.Context, id int64) (models.MoveIn, error)

	// ListMoveIns returns notices ordered by id, optionally filtered to names
	// containing nameFilter (case-insensitive).
	ListMoveIns(ctx context.Context, nameFilter string) ([]models.MoveIn, error)

	// UpdateMoveIn applies a partial update and returns the updated notice.
	// Returns ErrEmptyUpdate when the update carries no fields and
	// ErrMoveInNotFound when the notice does not exist.
	UpdateMoveIn(ctx context.Context, id int64, update models.MoveInUpdate) (models.MoveIn, error)

	// ApproveMoveIn sets the approval flag, stamps the approval time, and
	// returns the updated notice. Returns ErrMoveInNotFound when the notice
	// does not exist.
	ApproveMoveIn(ctx context.Context, id int64) (models.MoveIn, error)

	// DeleteMoveIn removes a notice.
	// Returns ErrMoveInNotFound when the notice does not exist.
	DeleteMoveIn(ctx context.Context, id int64) error
}

// FileRepository is the data-access contract for profile-image metadata.
type FileRepository interface {
	// CreateFile persists a new file record and returns it with the
	// server-assigned sequence number.
	CreateFile(ctx context.Context, file models.File) (models.File, error)

	// FindFileByUserID returns the profile-image record of the given account.
	// Returns ErrFileNotFound when the account has no stored image.
	FindFileByUserID(ctx context.Context, userID int64) (models.File, error)

	// DeleteFilesByUserID removes all file records of the given account.
	DeleteFilesByUserID(ctx context.Context, userID int64) error
}
