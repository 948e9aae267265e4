// Package importer implements the bank-statement import pipeline:
// parse CSV -> coerce -> categorize -> atomic batch write.
package importer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bhavika1504/my-finance-planner/internal/category"
	"github.com/bhavika1504/my-finance-planner/internal/csvparse"
	"github.com/bhavika1504/my-finance-planner/internal/models"
	"github.com/bhavika1504/my-finance-planner/internal/util"

	"github.com/rs/zerolog"
)

// Pipeline-level failures. Row-level issues (unparseable amount,
// missing description) are defaulted and never abort an import.
var (
	ErrBadInput    = errors.New("statement is not valid CSV")
	ErrTooManyRows = errors.New("statement has too many rows")
)

// Store persists transactions. SaveBatch must be atomic: either every
// transaction in the batch is written or none are. Implementations
// assign IDs on the passed records.
type Store interface {
	SaveBatch(ctx context.Context, txs []models.Transaction) error
}

// ParsedRow is an already-parsed statement row, as submitted by an
// interactive client. Amount keeps the producer's string form so the
// coercion policy matches the CSV path.
type ParsedRow struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Date        string `json:"date"`
}

// Options tunes an Importer.
type Options struct {
	// MaxRows caps a single statement; 0 means no cap.
	MaxRows int
	// StoreTimeout bounds the batch write; 0 means no timeout.
	StoreTimeout time.Duration
}

// Importer orchestrates statement imports for authenticated owners.
// The store is injected so the pipeline is independent of the backend.
type Importer struct {
	store Store
	log   zerolog.Logger
	opts  Options
}

func New(store Store, log zerolog.Logger, opts Options) *Importer {
	return &Importer{
		store: store,
		log:   log,
		opts:  opts,
	}
}

// ImportCSV runs the full pipeline over raw statement text on behalf of
// ownerID and returns the number of transactions written. The whole
// batch commits atomically; re-importing the same statement duplicates
// its rows (no deduplication).
func (imp *Importer) ImportCSV(ctx context.Context, ownerID uint, raw string) (int, error) {
	rows, err := csvparse.Parse(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBadInput, err)
	}
	if imp.opts.MaxRows > 0 && len(rows) > imp.opts.MaxRows {
		return 0, ErrTooManyRows
	}

	now := time.Now()
	txs := make([]models.Transaction, 0, len(rows))
	for _, row := range rows {
		txs = append(txs, imp.build(ownerID, row.Description(), row.AmountCent(), now))
	}

	if err := imp.save(ctx, txs); err != nil {
		return 0, err
	}

	imp.log.Info().
		Uint("owner_id", ownerID).
		Int("count", len(txs)).
		Msg("statement imported")
	return len(txs), nil
}

// ImportRows imports rows an interactive client parsed itself. Unlike
// the original one-insert-per-row client flow this goes through the
// same atomic batch write as ImportCSV, and returns the assigned IDs.
func (imp *Importer) ImportRows(ctx context.Context, ownerID uint, rows []ParsedRow) ([]uint, error) {
	if imp.opts.MaxRows > 0 && len(rows) > imp.opts.MaxRows {
		return nil, ErrTooManyRows
	}

	now := time.Now()
	txs := make([]models.Transaction, 0, len(rows))
	for _, row := range rows {
		cent, err := util.CentFromString(row.Amount)
		if err != nil {
			cent = 0 // same coercion policy as the CSV path
		}
		txs = append(txs, imp.build(ownerID, row.Description, cent, now))
	}

	if err := imp.save(ctx, txs); err != nil {
		return nil, err
	}

	ids := make([]uint, len(txs))
	for i := range txs {
		ids[i] = txs[i].ID
	}

	imp.log.Info().
		Uint("owner_id", ownerID).
		Int("count", len(ids)).
		Msg("parsed rows imported")
	return ids, nil
}

func (imp *Importer) build(ownerID uint, description string, amountCent int64, now time.Time) models.Transaction {
	return models.Transaction{
		UserID:      ownerID,
		AmountCent:  amountCent,
		Description: description,
		Category:    category.Detect(description),
		Source:      models.SourceBankUpload,
		CreatedAt:   now,
	}
}

func (imp *Importer) save(ctx context.Context, txs []models.Transaction) error {
	if len(txs) == 0 {
		return nil
	}

	if imp.opts.StoreTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, imp.opts.StoreTimeout)
		defer cancel()
	}

	if err := imp.store.SaveBatch(ctx, txs); err != nil {
		imp.log.Error().Err(err).Int("count", len(txs)).Msg("batch write failed")
		return fmt.Errorf("save batch: %w", err)
	}
	return nil
}
