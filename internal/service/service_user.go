package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sunjoo-dev/movein-registry/internal/blob"
	"github.com/sunjoo-dev/movein-registry/internal/config"
	"github.com/sunjoo-dev/movein-registry/internal/crypto"
	"github.com/sunjoo-dev/movein-registry/internal/logger"
	"github.com/sunjoo-dev/movein-registry/internal/store"
	"github.com/sunjoo-dev/movein-registry/models"
)

// Bootstrap admin identity created on first start when no admin exists.
const (
	bootstrapAdminUsername = "admin"
	bootstrapAdminEmail    = "admin@test.com"
)

// userService is the concrete implementation of UserService. It owns the
// account lifecycle together with the profile-image blob: image bytes go to
// object storage, their metadata to the files table, and both are cleaned up
// when the account goes away.
type userService struct {
	userRepository store.UserRepository
	fileRepository store.FileRepository
	objectStorage  blob.ObjectStorage

	// adminPassword is the bootstrap password for the first admin account.
	adminPassword string

	logger *logger.Logger
}

// NewUserService constructs a UserService over the given repositories and
// object storage.
func NewUserService(userRepository store.UserRepository, fileRepository store.FileRepository, objectStorage blob.ObjectStorage, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		fileRepository: fileRepository,
		objectStorage:  objectStorage,
		adminPassword:  cfg.AdminPassword,
		logger:         logger,
	}
}

// SignUp creates a new account.
//
// The password is bcrypt-hashed before persistence. When an image is
// provided it is uploaded to object storage and recorded in the files table;
// if the upload fails after the user row was created the row is rolled back,
// so signup is all-or-nothing.
//
// Returns the created account or:
//   - ErrInvalidDataProvided if username, email or password is empty.
//   - store.ErrEmailAlreadyExists (wrapped) on a duplicate email.
//   - ErrBlobStorage (wrapped) when the image upload fails.
func (s *userService) SignUp(ctx context.Context, user models.User, password string, image *ImageUpload) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Username == "" || user.Email == "" || password == "" {
		log.Error().Str("email", user.Email).Msg("invalid signup data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}
	user.PasswordHash = hash

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	if image != nil {
		if err := s.attachImage(ctx, created.UserID, image); err != nil {
			// all-or-nothing: take the user row back out
			if rollbackErr := s.userRepository.DeleteUser(ctx, created.UserID); rollbackErr != nil {
				log.Err(rollbackErr).Int64("user_id", created.UserID).Msg("failed to roll back user after image upload failure")
			}
			return models.User{}, err
		}
	}

	return created, nil
}

// Profile returns the account and its profile-image URL. An account without
// an image yields an empty URL, not an error.
func (s *userService) Profile(ctx context.Context, userID int64) (models.User, string, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("profile lookup failed")
		return models.User{}, "", fmt.Errorf("profile lookup failed: %w", err)
	}

	imageURL, err := s.imageURL(ctx, userID)
	if err != nil {
		return models.User{}, "", err
	}

	return user, imageURL, nil
}

// UpdateProfile replaces the username and/or the profile image. An empty
// username and nil image make the call a no-op.
func (s *userService) UpdateProfile(ctx context.Context, userID int64, username string, image *ImageUpload) (models.User, string, error) {
	log := logger.FromContext(ctx)

	if username != "" {
		if err := s.userRepository.UpdateUsername(ctx, userID, username); err != nil {
			log.Err(err).Int64("user_id", userID).Msg("username update failed")
			return models.User{}, "", fmt.Errorf("username update failed: %w", err)
		}
	}

	if image != nil {
		if err := s.removeImage(ctx, userID); err != nil {
			return models.User{}, "", err
		}
		if err := s.attachImage(ctx, userID, image); err != nil {
			return models.User{}, "", err
		}
	}

	return s.Profile(ctx, userID)
}

// ListUsers returns every account.
func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("user listing failed: %w", err)
	}

	return users, nil
}

// DeleteUser removes the account together with its profile-image blob and
// file records.
func (s *userService) DeleteUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if err := s.removeImage(ctx, userID); err != nil {
		return err
	}

	if err := s.userRepository.DeleteUser(ctx, userID); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user deletion failed")
		return fmt.Errorf("user deletion failed: %w", err)
	}

	return nil
}

// EnsureAdmin creates the bootstrap admin account when no account with the
// admin role exists yet. Safe to call on every start.
func (s *userService) EnsureAdmin(ctx context.Context) error {
	log := logger.FromContext(ctx)

	_, err := s.userRepository.FindFirstAdmin(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		return fmt.Errorf("admin lookup failed: %w", err)
	}

	if s.adminPassword == "" {
		return fmt.Errorf("%w: bootstrap admin password is not configured", ErrInvalidDataProvided)
	}

	hash, err := crypto.HashPassword(s.adminPassword)
	if err != nil {
		return fmt.Errorf("password hashing failed: %w", err)
	}

	admin := models.User{
		Username:     bootstrapAdminUsername,
		Email:        bootstrapAdminEmail,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}

	created, err := s.userRepository.CreateUser(ctx, admin)
	if err != nil {
		return fmt.Errorf("bootstrap admin creation failed: %w", err)
	}
	log.Info().Int64("user_id", created.UserID).Str("email", created.Email).Msg("bootstrap admin account created")

	return nil
}

// attachImage uploads the image bytes and records the file metadata.
// A metadata insert failure removes the just-uploaded blob again.
func (s *userService) attachImage(ctx context.Context, userID int64, image *ImageUpload) error {
	log := logger.FromContext(ctx)

	stored, err := s.objectStorage.Upload(ctx, image.Name, image.Data)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("profile image upload failed")
		return fmt.Errorf("%w: %w", ErrBlobStorage, err)
	}

	file := models.File{
		UserID:      userID,
		FileName:    stored.Name,
		FilePath:    stored.Key,
		OrgFileName: image.Name,
		FileSize:    stored.Size,
		FileURL:     stored.URL,
	}
	if _, err := s.fileRepository.CreateFile(ctx, file); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("file record creation failed")
		if deleteErr := s.objectStorage.Delete(ctx, stored.URL); deleteErr != nil {
			log.Err(deleteErr).Str("url", stored.URL).Msg("failed to remove orphaned blob")
		}
		return fmt.Errorf("file record creation failed: %w", err)
	}

	return nil
}

// removeImage deletes the stored blob and the file records of an account.
// An account without an image is not an error.
func (s *userService) removeImage(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	file, err := s.fileRepository.FindFileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrFileNotFound) {
			return nil
		}
		return fmt.Errorf("file lookup failed: %w", err)
	}

	if err := s.objectStorage.Delete(ctx, file.FileURL); err != nil {
		log.Err(err).Str("url", file.FileURL).Msg("profile image deletion failed")
		return fmt.Errorf("%w: %w", ErrBlobStorage, err)
	}

	if err := s.fileRepository.DeleteFilesByUserID(ctx, userID); err != nil {
		return fmt.Errorf("file record deletion failed: %w", err)
	}

	return nil
}

// imageURL resolves the profile-image URL, treating a missing image as an
// empty URL.
func (s *userService) imageURL(ctx context.Context, userID int64) (string, error) {
	file, err := s.fileRepository.FindFileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrFileNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("file lookup failed: %w", err)
	}

	return file.FileURL, nil
}
