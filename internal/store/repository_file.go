package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sunjoo-dev/movein-registry/internal/logger"
	"github.com/sunjoo-dev/movein-registry/models"
)

// fileRepository is the PostgreSQL-backed implementation of [FileRepository].
// It stores profile-image metadata in the "files" table; the image bytes
// themselves live in object storage.
type fileRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewFileRepository constructs a [FileRepository] backed by the provided
// database connection and logger.
func NewFileRepository(db *DB, logger *logger.Logger) FileRepository {
	logger.Debug().Msg("creating file repository")
	return &fileRepository{
		db:     db,
		logger: logger,
	}
}

// CreateFile persists a new file record and returns it with the
// server-assigned sequence number.
func (r *fileRepository) CreateFile(ctx context.Context, file models.File) (models.File, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createFile,
		file.UserID, file.FileName, file.FilePath, file.OrgFileName, file.FileSize, file.FileURL,
	)

	var created models.File
	err := row.Scan(
		&created.FileSeq, &created.UserID, &created.FileName,
		&created.FilePath, &created.OrgFileName, &created.FileSize, &created.FileURL,
	)
	if err != nil {
		log.Err(err).Str("func", "*fileRepository.CreateFile").Int64("user_id", file.UserID).Msg("error creating file record")
		return models.File{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindFileByUserID returns the profile-image record of the given account.
// Returns [ErrFileNotFound] when the account has no stored image.
func (r *fileRepository) FindFileByUserID(ctx context.Context, userID int64) (models.File, error) {
	log := logger.FromContext(ctx)

	var file models.File
	row := r.db.QueryRowContext(ctx, findFileByUserID, userID)
	err := row.Scan(
		&file.FileSeq, &file.UserID, &file.FileName,
		&file.FilePath, &file.OrgFileName, &file.FileSize, &file.FileURL,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.File{}, ErrFileNotFound
		}
		log.Err(err).Str("func", "*fileRepository.FindFileByUserID").Int64("user_id", userID).Msg("error scanning file row")
		return models.File{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return file, nil
}

// DeleteFilesByUserID removes all file records of the given account.
// Deleting for an account with no records is not an error.
func (r *fileRepository) DeleteFilesByUserID(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteFilesByUserID, userID); err != nil {
		log.Err(err).Str("func", "*fileRepository.DeleteFilesByUserID").Int64("user_id", userID).Msg("failed to delete file records")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
