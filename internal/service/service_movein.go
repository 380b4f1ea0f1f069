package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sunjoo-dev/movein-registry/internal/crypto"
	"github.com/sunjoo-dev/movein-registry/internal/logger"
	"github.com/sunjoo-dev/movein-registry/internal/store"
	"github.com/sunjoo-dev/movein-registry/internal/validators"
	"github.com/sunjoo-dev/movein-registry/models"
)

// decryptionFailedPlaceholder is served in place of the RRN when a stored
// cipher token can no longer be decrypted (key rotation, corrupted row).
// The rest of the record stays readable.
const decryptionFailedPlaceholder = "decryption failed"

// moveInService is the concrete implementation of MoveInService. It is the
// only layer that sees the resident registration number (RRN) in plaintext:
// the store below it holds cipher tokens, the handlers above it pass through
// whatever this service hands them.
type moveInService struct {
	moveInRepository store.MoveInRepository
	cipher           *crypto.Cipher
	validator        validators.Validator
	logger           *logger.Logger
}

// NewMoveInService constructs a MoveInService over the given repository and
// sensitive-field cipher.
func NewMoveInService(moveInRepository store.MoveInRepository, cipher *crypto.Cipher, validator validators.Validator, logger *logger.Logger) MoveInService {
	return &moveInService{
		moveInRepository: moveInRepository,
		cipher:           cipher,
		validator:        validator,
		logger:           logger,
	}
}

// Create registers a new relocation notice for the authenticated user.
//
// The RRN is encrypted before anything is written; a cipher failure aborts
// the whole operation with ErrEncryptionFailed and nothing reaches the
// store. The registration timestamp is stamped here, never taken from the
// client.
//
// Returns the persisted notice or:
//   - ErrInvalidDataProvided (wrapped) if a field fails validation.
//   - ErrEncryptionFailed (wrapped) on a cipher failure.
func (s *moveInService) Create(ctx context.Context, movein models.MoveIn, userID int64) (models.MoveIn, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, movein); err != nil {
		log.Error().Err(err).Str("name", movein.Name).Msg("invalid relocation notice data provided")
		return models.MoveIn{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	encrypted, err := s.cipher.Encrypt(movein.RRN)
	if err != nil {
		log.Err(err).Msg("rrn encryption failed")
		return models.MoveIn{}, fmt.Errorf("%w: %w", ErrEncryptionFailed, err)
	}

	movein.RRN = encrypted
	movein.RegisteredAt = time.Now()
	movein.UserID = userID
	movein.IsApproval = false

	created, err := s.moveInRepository.CreateMoveIn(ctx, movein)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("relocation notice creation failed")
		return models.MoveIn{}, fmt.Errorf("relocation notice creation failed: %w", err)
	}

	return created, nil
}

// Get returns a single notice with the RRN decrypted.
//
// A failed decryption is not an error here: the RRN field is replaced with a
// fixed placeholder and the rest of the record is served as stored. The
// cipher itself always reports its true error; the substitution policy lives
// in this one place.
func (s *moveInService) Get(ctx context.Context, id int64) (models.MoveIn, error) {
	log := logger.FromContext(ctx)

	movein, err := s.moveInRepository.GetMoveIn(ctx, id)
	if err != nil {
		return models.MoveIn{}, fmt.Errorf("relocation notice lookup failed: %w", err)
	}

	plaintext, err := s.cipher.Decrypt(movein.RRN)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("stored rrn could not be decrypted")
		movein.RRN = decryptionFailedPlaceholder
		return movein, nil
	}

	movein.RRN = plaintext
	return movein, nil
}

// List returns notices with the RRN in its stored, encrypted form. The
// optional nameFilter narrows the result to names containing it.
func (s *moveInService) List(ctx context.Context, nameFilter string) ([]models.MoveIn, error) {
	moveins, err := s.moveInRepository.ListMoveIns(ctx, nameFilter)
	if err != nil {
		return nil, fmt.Errorf("relocation notice listing failed: %w", err)
	}

	return moveins, nil
}

// Update applies a partial update. A replacement RRN is re-encrypted before
// being applied; all other fields pass through as given.
//
// Returns the updated notice or:
//   - ErrInvalidDataProvided (wrapped) on an empty update or a field that
//     fails validation.
//   - ErrEncryptionFailed (wrapped) on a cipher failure.
func (s *moveInService) Update(ctx context.Context, id int64, update models.MoveInUpdate) (models.MoveIn, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, update); err != nil {
		return models.MoveIn{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if update.RRN != nil {
		encrypted, err := s.cipher.Encrypt(*update.RRN)
		if err != nil {
			log.Err(err).Int64("id", id).Msg("rrn re-encryption failed")
			return models.MoveIn{}, fmt.Errorf("%w: %w", ErrEncryptionFailed, err)
		}
		update.RRN = &encrypted
	}

	updated, err := s.moveInRepository.UpdateMoveIn(ctx, id, update)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("relocation notice update failed")
		return models.MoveIn{}, fmt.Errorf("relocation notice update failed: %w", err)
	}

	return updated, nil
}

// Approve marks the notice approved and stamps the approval time. The
// stored RRN is untouched.
func (s *moveInService) Approve(ctx context.Context, id int64) (models.MoveIn, error) {
	approved, err := s.moveInRepository.ApproveMoveIn(ctx, id)
	if err != nil {
		return models.MoveIn{}, fmt.Errorf("relocation notice approval failed: %w", err)
	}

	return approved, nil
}

// Delete removes the notice.
func (s *moveInService) Delete(ctx context.Context, id int64) error {
	if err := s.moveInRepository.DeleteMoveIn(ctx, id); err != nil {
		return fmt.Errorf("relocation notice deletion failed: %w", err)
	}

	return nil
}
