package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-points-gateway/internal/logger"
	"github.com/sbilibin2017/gw-points-gateway/internal/models"
)

// TransferWriteRepository journals transfer attempts.
type TransferWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

// NewTransferWriteRepository creates a journal writer. txGetter may be nil.
func NewTransferWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TransferWriteRepository {
	return &TransferWriteRepository{db: db, txGetter: txGetter}
}

// SaveTransfer inserts a transfer record. Saving the same id twice is a no-op.
func (r *TransferWriteRepository) SaveTransfer(ctx context.Context, rec models.TransferRecord) error {
	query := `
		INSERT INTO transfers (transfer_id, game_id, raw_amount, points, converted_units, status, reason, created_at)
		VALUES (:transfer_id, :game_id, :raw_amount, :points, :converted_units, :status, :reason, :created_at)
		ON CONFLICT (transfer_id) DO NOTHING
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	_, err := sqlx.NamedExecContext(ctx, executor, query, rec)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{rec.TransferID, rec.GameID, rec.Points, rec.Status},
		"error", err,
	)

	return err
}

// TransferReadRepository reads the transfer journal.
type TransferReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

// NewTransferReadRepository creates a journal reader. txGetter may be nil.
func NewTransferReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TransferReadRepository {
	return &TransferReadRepository{db: db, txGetter: txGetter}
}

// ListTransfers returns the latest records, newest first.
func (r *TransferReadRepository) ListTransfers(ctx context.Context, limit int) ([]models.TransferRecord, error) {
	const query = `
		SELECT transfer_id, game_id, raw_amount, points, converted_units, status, reason, created_at
		FROM transfers
		ORDER BY created_at DESC
		LIMIT $1
	`

	var executor sqlx.QueryerContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	records := []models.TransferRecord{}
	err := sqlx.SelectContext(ctx, executor, &records, query, limit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{limit},
		"result", len(records),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return records, nil
}
