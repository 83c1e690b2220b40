package jobs

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/txproof/txproof-api/internal/db"
)

// ErrInvalidSubmission marks a submission that fails validation before it
// ever reaches the store.
var ErrInvalidSubmission = errors.New("jobs: invalid submission")

var txHashPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)

// Store wraps the durable job queue. All cross-worker coordination happens
// through its atomic claim; workers themselves are stateless.
type Store struct {
	queries db.Querier
}

func NewStore(queries db.Querier) *Store {
	return &Store{queries: queries}
}

// Submit enqueues a generation request. Duplicate submissions coalesce onto
// the live job for (chainID, txHash): a pending or processing row is returned
// as-is, a completed row is returned with its result instead of re-processing,
// and a failed row is requeued as pending so callers can retry after a
// terminal failure.
func (s *Store) Submit(ctx context.Context, chainID int64, txHash string) (db.GenerationJob, error) {
	if chainID <= 0 {
		return db.GenerationJob{}, fmt.Errorf("%w: chain id must be positive", ErrInvalidSubmission)
	}
	if !txHashPattern.MatchString(txHash) {
		return db.GenerationJob{}, fmt.Errorf("%w: malformed transaction hash %q", ErrInvalidSubmission, txHash)
	}
	txHash = strings.ToLower(txHash)

	job, err := s.queries.CreateOrGetJob(ctx, db.CreateOrGetJobParams{
		ID:      uuid.New(),
		ChainID: chainID,
		TxHash:  txHash,
	})
	if errors.Is(err, pgx.ErrNoRows) {
		// Conflict with a row that is not failed: the upsert touched nothing,
		// so read the live row back.
		return s.queries.GetJobByChainTx(ctx, db.GetJobByChainTxParams{
			ChainID: chainID,
			TxHash:  txHash,
		})
	}
	return job, err
}

// GetStatus is the polling read. Safe to call arbitrarily often; it never
// blocks workers.
func (s *Store) GetStatus(ctx context.Context, id uuid.UUID) (db.GenerationJob, error) {
	return s.queries.GetJob(ctx, id)
}

// ClaimNext atomically claims the oldest pending job for this worker.
// Returns (nil, nil) when the queue is empty.
func (s *Store) ClaimNext(ctx context.Context) (*db.GenerationJob, error) {
	job, err := s.queries.ClaimNextJob(ctx)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// Complete transitions a processing job to its terminal completed state.
func (s *Store) Complete(ctx context.Context, id uuid.UUID, payload []byte) error {
	_, err := s.queries.CompleteJob(ctx, db.CompleteJobParams{
		ID:            id,
		ResultPayload: payload,
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("job %s is not processing; refusing transition to completed", id)
	}
	return err
}

// Fail transitions a processing job to its terminal failed state.
func (s *Store) Fail(ctx context.Context, id uuid.UUID, code ErrorCode) error {
	_, err := s.queries.FailJob(ctx, db.FailJobParams{
		ID:        id,
		ErrorCode: pgtype.Text{String: string(code), Valid: true},
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("job %s is not processing; refusing transition to failed", id)
	}
	return err
}

// RecoverStalled requeues jobs stuck in processing beyond the timeout and
// force-fails the ones that already burned through the attempt cap. It
// bounds worst-case latency after a worker crash.
func (s *Store) RecoverStalled(ctx context.Context, timeout time.Duration, maxAttempts int32) (reclaimed, failed []db.GenerationJob, err error) {
	cutoff := pgtype.Timestamptz{Time: time.Now().Add(-timeout), Valid: true}

	failed, err = s.queries.FailExhaustedJobs(ctx, db.FailExhaustedJobsParams{
		ErrorCode:   pgtype.Text{String: string(CodeJobTimeout), Valid: true},
		ClaimedAt:   cutoff,
		MaxAttempts: maxAttempts,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fail exhausted jobs: %w", err)
	}

	reclaimed, err = s.queries.ReclaimStalledJobs(ctx, db.ReclaimStalledJobsParams{
		ClaimedAt:   cutoff,
		MaxAttempts: maxAttempts,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to reclaim stalled jobs: %w", err)
	}

	return reclaimed, failed, nil
}
