package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/sunjoo-dev/movein-registry/internal/logger"
	"github.com/sunjoo-dev/movein-registry/models"
)

// moveInColumns is the canonical column order shared by all single-notice
// queries and the squirrel-built list/update statements.
var moveInColumns = []string{
	"id", "name", "rrn", "email", "before_addr", "after_addr",
	"reg_dt", "approval_dt", "move_in_dt", "is_approval", "user_id",
}

// psql builds squirrel statements with PostgreSQL $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// moveInRepository is the PostgreSQL-backed implementation of
// [MoveInRepository]. It executes all relocation-notice CRUD operations
// against the "movein_info" table. The rrn column is opaque to this layer:
// whatever value the service hands over is stored and returned verbatim.
type moveInRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMoveInRepository constructs a [MoveInRepository] backed by the provided
// database connection and logger.
func NewMoveInRepository(db *DB, logger *logger.Logger) MoveInRepository {
	logger.Debug().Msg("creating movein repository")
	return &moveInRepository{
		db:     db,
		logger: logger,
	}
}

// CreateMoveIn persists a new relocation notice and returns it with the
// server-assigned id. reg_dt is taken from the model — the service stamps it
// server-side before calling.
func (r *moveInRepository) CreateMoveIn(ctx context.Context, movein models.MoveIn) (models.MoveIn, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createMoveIn,
		movein.Name, movein.RRN, movein.Email, movein.BeforeAddr, movein.AfterAddr,
		movein.RegisteredAt, nullableTime(movein.MoveInAt), movein.UserID,
	)

	created, err := scanMoveIn(row)
	if err != nil {
		log.Err(err).Str("func", "*moveInRepository.CreateMoveIn").Int64("user_id", movein.UserID).Msg("error creating relocation notice")
		return models.MoveIn{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// GetMoveIn fetches a single notice by id.
// Returns [ErrMoveInNotFound] when no row matches.
func (r *moveInRepository) GetMoveIn(ctx context.Context, id int64) (models.MoveIn, error) {
	log := logger.FromContext(ctx)

	movein, err := scanMoveIn(r.db.QueryRowContext(ctx, getMoveIn, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.MoveIn{}, ErrMoveInNotFound
		}
		log.Err(err).Str("func", "*moveInRepository.GetMoveIn").Int64("id", id).Msg("error scanning relocation notice")
		return models.MoveIn{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return movein, nil
}

// ListMoveIns returns notices ordered by id. A non-empty nameFilter narrows
// the result to names containing the filter, case-insensitively.
func (r *moveInRepository) ListMoveIns(ctx context.Context, nameFilter string) ([]models.MoveIn, error) {
	log := logger.FromContext(ctx)

	builder := psql.Select(moveInColumns...).From("movein_info").OrderBy("id")
	if nameFilter != "" {
		builder = builder.Where(sq.ILike{"name": "%" + nameFilter + "%"})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*moveInRepository.ListMoveIns").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*moveInRepository.ListMoveIns").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.MoveIn, 0, 32)
	for rows.Next() {
		movein, err := scanMoveIn(rows)
		if err != nil {
			log.Err(err).Str("func", "*moveInRepository.ListMoveIns").Msg("failed to scan relocation notice row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		results = append(results, movein)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*moveInRepository.ListMoveIns").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return results, nil
}

// UpdateMoveIn applies a partial update built dynamically from the non-nil
// fields of update, and returns the updated notice.
//
// Returns [ErrEmptyUpdate] when no field is set and [ErrMoveInNotFound] when
// the notice does not exist.
func (r *moveInRepository) UpdateMoveIn(ctx context.Context, id int64, update models.MoveInUpdate) (models.MoveIn, error) {
	log := logger.FromContext(ctx)

	if update.IsEmpty() {
		return models.MoveIn{}, ErrEmptyUpdate
	}

	builder := psql.Update("movein_info").Where(sq.Eq{"id": id})
	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.RRN != nil {
		builder = builder.Set("rrn", *update.RRN)
	}
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}
	if update.BeforeAddr != nil {
		builder = builder.Set("before_addr", *update.BeforeAddr)
	}
	if update.AfterAddr != nil {
		builder = builder.Set("after_addr", *update.AfterAddr)
	}
	if update.MoveInAt != nil {
		builder = builder.Set("move_in_dt", *update.MoveInAt)
	}
	builder = builder.Suffix("RETURNING " + returningColumns())

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*moveInRepository.UpdateMoveIn").Int64("id", id).Msg("failed to build update query")
		return models.MoveIn{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	movein, err := scanMoveIn(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.MoveIn{}, ErrMoveInNotFound
		}
		log.Err(err).Str("func", "*moveInRepository.UpdateMoveIn").Int64("id", id).Msg("error executing update")
		return models.MoveIn{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return movein, nil
}

// ApproveMoveIn sets the approval flag and stamps the approval time.
// Returns [ErrMoveInNotFound] when the notice does not exist.
func (r *moveInRepository) ApproveMoveIn(ctx context.Context, id int64) (models.MoveIn, error) {
	log := logger.FromContext(ctx)

	movein, err := scanMoveIn(r.db.QueryRowContext(ctx, approveMoveIn, id, time.Now()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.MoveIn{}, ErrMoveInNotFound
		}
		log.Err(err).Str("func", "*moveInRepository.ApproveMoveIn").Int64("id", id).Msg("error approving relocation notice")
		return models.MoveIn{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return movein, nil
}

// DeleteMoveIn removes a notice.
// Returns [ErrMoveInNotFound] when zero rows were affected.
func (r *moveInRepository) DeleteMoveIn(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteMoveIn, id)
	if err != nil {
		log.Err(err).Str("func", "*moveInRepository.DeleteMoveIn").Int64("id", id).Msg("failed to delete relocation notice")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrMoveInNotFound
	}

	return nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scanning.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanMoveIn scans one movein_info row in [moveInColumns] order.
func scanMoveIn(row rowScanner) (models.MoveIn, error) {
	var movein models.MoveIn
	var approvalDt, moveInDt sql.NullTime

	err := row.Scan(
		&movein.ID,
		&movein.Name,
		&movein.RRN,
		&movein.Email,
		&movein.BeforeAddr,
		&movein.AfterAddr,
		&movein.RegisteredAt,
		&approvalDt,
		&moveInDt,
		&movein.IsApproval,
		&movein.UserID,
	)
	if err != nil {
		return models.MoveIn{}, err
	}

	if approvalDt.Valid {
		movein.ApprovedAt = &approvalDt.Time
	}
	if moveInDt.Valid {
		movein.MoveInAt = &moveInDt.Time
	}

	return movein, nil
}

// nullableTime converts an optional time into its sql representation.
func nullableTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

// returningColumns joins [moveInColumns] for RETURNING clauses.
func returningColumns() string {
	out := moveInColumns[0]
	for _, col := range moveInColumns[1:] {
		out += ", " + col
	}
	return out
}
