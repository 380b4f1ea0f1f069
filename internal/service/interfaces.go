package service

import (
	"context"

	"github.com/sunjoo-dev/movein-registry/models"
)

// AuthService handles credential verification and the JWT token lifecycle.
type AuthService interface {
	// SignIn verifies email+password and returns the matching account.
	// Returns ErrWrongPassword on a bcrypt mismatch and a wrapped
	// store.ErrNoUserWasFound when the email is unknown.
	SignIn(ctx context.Context, email, password string) (models.User, error)

	// CreateToken issues a signed JWT carrying the user's id, email and role.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken verifies a raw JWT string. Returns ErrTokenExpired for
	// well-signed but expired tokens and ErrTokenInvalid for everything else.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// Authenticate verifies a raw token and returns the caller's user id.
	// Returns ErrMissingToken for empty input.
	Authenticate(ctx context.Context, rawToken string) (int64, error)

	// RequireRole verifies the Authorization header value (with or without a
	// "Bearer " prefix) and checks the role claim. Returns ErrMissingToken
	// for an empty header and ErrForbidden on role mismatch.
	RequireRole(ctx context.Context, authorizationHeader string, role models.Role) (models.Token, error)
}

// ImageUpload is an in-memory profile image received from a multipart form.
type ImageUpload struct {
	Name string
	Data []byte
}

// UserService manages accounts and their profile images.
type UserService interface {
	// SignUp creates an account with a bcrypt-hashed password and an optional
	// profile image. If the image upload fails after the user row was
	// created, the row is rolled back.
	SignUp(ctx context.Context, user models.User, password string, image *ImageUpload) (models.User, error)

	// Profile returns the account together with its profile-image URL
	// (empty string when no image is stored).
	Profile(ctx context.Context, userID int64) (models.User, string, error)

	// UpdateProfile replaces the username and/or the profile image.
	// A nil image and empty username leave the respective part untouched.
	UpdateProfile(ctx context.Context, userID int64, username string, image *ImageUpload) (models.User, string, error)

	// ListUsers returns every account.
	ListUsers(ctx context.Context) ([]models.User, error)

	// DeleteUser removes the account along with its profile image blob and
	// file records.
	DeleteUser(ctx context.Context, userID int64) error

	// EnsureAdmin creates the bootstrap admin account if no admin exists yet.
	EnsureAdmin(ctx context.Context) error
}

// MoveInService orchestrates the relocation-notice lifecycle, including
// encryption of the resident registration number (RRN).
type MoveInService interface {
	// Create encrypts the RRN, stamps the registration time server-side, and
	// persists the notice for the authenticated user. A cipher failure
	// aborts the whole write with ErrEncryptionFailed.
	Create(ctx context.Context, movein models.MoveIn, userID int64) (models.MoveIn, error)

	// Get returns a single notice with the RRN decrypted. When decryption
	// fails the RRN field carries a fixed placeholder and the rest of the
	// record is served as stored.
	Get(ctx context.Context, id int64) (models.MoveIn, error)

	// List returns notices with the RRN in its stored, encrypted form,
	// optionally filtered to names containing nameFilter.
	List(ctx context.Context, nameFilter string) ([]models.MoveIn, error)

	// Update applies a partial update; a replacement RRN is re-encrypted
	// before being applied.
	Update(ctx context.Context, id int64, update models.MoveInUpdate) (models.MoveIn, error)

	// Approve marks the notice approved and stamps the approval time.
	Approve(ctx context.Context, id int64) (models.MoveIn, error)

	// Delete removes the notice.
	Delete(ctx context.Context, id int64) error
}
