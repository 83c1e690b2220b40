package jobs_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/txproof/txproof-api/internal/db"
	"github.com/txproof/txproof-api/internal/jobs"
	"github.com/txproof/txproof-api/internal/logger"
	"github.com/txproof/txproof-api/internal/mocks"
)

func init() {
	logger.InitLogger("test")
}

const validTxHash = "0x88df016429689c079f3b2f6ad39fa052532c56795b733da78a91ebe6a713944b"

func TestStoreSubmitValidation(t *testing.T) {
	tests := []struct {
		name    string
		chainID int64
		txHash  string
	}{
		{"zero chain id", 0, validTxHash},
		{"negative chain id", -1, validTxHash},
		{"empty hash", 1, ""},
		{"missing 0x prefix", 1, validTxHash[2:]},
		{"too short", 1, "0x88df01"},
		{"too long", 1, validTxHash + "ab"},
		{"non-hex characters", 1, "0x" + "zz" + validTxHash[4:]},
	}

	mockQuerier := mocks.NewMockQuerierForTest(t)
	store := jobs.NewStore(mockQuerier)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.Submit(context.Background(), tt.chainID, tt.txHash)
			assert.ErrorIs(t, err, jobs.ErrInvalidSubmission)
		})
	}
}

func TestStoreSubmitNormalizesHash(t *testing.T) {
	mixedCase := "0x88DF016429689C079F3B2F6AD39FA052532C56795B733DA78A91EBE6A713944B"

	mockQuerier := mocks.NewMockQuerierForTest(t)
	mockQuerier.EXPECT().
		CreateOrGetJob(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreateOrGetJobParams) (db.GenerationJob, error) {
			assert.Equal(t, validTxHash, arg.TxHash)
			return db.GenerationJob{ID: arg.ID, ChainID: arg.ChainID, TxHash: arg.TxHash, State: db.JobStatePending}, nil
		})

	store := jobs.NewStore(mockQuerier)
	job, err := store.Submit(context.Background(), 1, mixedCase)
	require.NoError(t, err)
	assert.Equal(t, db.JobStatePending, job.State)
}

// Conflicting with a live (non-failed) row leaves the upsert with nothing to
// update, so Submit reads the existing row back instead of creating a
// duplicate.
func TestStoreSubmitCoalescesOntoLiveJob(t *testing.T) {
	existing := db.GenerationJob{
		ID:            uuid.New(),
		ChainID:       1,
		TxHash:        validTxHash,
		State:         db.JobStateCompleted,
		ResultPayload: []byte(`{"chainId":1}`),
	}

	mockQuerier := mocks.NewMockQuerierForTest(t)
	gomock.InOrder(
		mockQuerier.EXPECT().
			CreateOrGetJob(gomock.Any(), gomock.Any()).
			Return(db.GenerationJob{}, pgx.ErrNoRows),
		mockQuerier.EXPECT().
			GetJobByChainTx(gomock.Any(), db.GetJobByChainTxParams{ChainID: 1, TxHash: validTxHash}).
			Return(existing, nil),
	)

	store := jobs.NewStore(mockQuerier)
	job, err := store.Submit(context.Background(), 1, validTxHash)
	require.NoError(t, err)
	assert.Equal(t, existing.ID, job.ID)
	assert.Equal(t, db.JobStateCompleted, job.State)
}

// Resubmitting a pair whose previous run failed terminally must produce new
// work: the conflict branch requeues the failed row and Submit returns it
// pending, with the earlier error wiped.
func TestStoreSubmitRequeuesFailedJob(t *testing.T) {
	jobID := uuid.New()

	mockQuerier := mocks.NewMockQuerierForTest(t)
	mockQuerier.EXPECT().
		CreateOrGetJob(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreateOrGetJobParams) (db.GenerationJob, error) {
			// The failed row keeps its identity but comes back reset.
			return db.GenerationJob{
				ID:       jobID,
				ChainID:  arg.ChainID,
				TxHash:   arg.TxHash,
				State:    db.JobStatePending,
				Attempts: 0,
			}, nil
		})

	store := jobs.NewStore(mockQuerier)
	job, err := store.Submit(context.Background(), 1, validTxHash)
	require.NoError(t, err)
	assert.Equal(t, jobID, job.ID)
	assert.Equal(t, db.JobStatePending, job.State)
	assert.Zero(t, job.Attempts)
	assert.False(t, job.ErrorCode.Valid)
}

func TestStoreClaimNextEmptyQueue(t *testing.T) {
	mockQuerier := mocks.NewMockQuerierForTest(t)
	mockQuerier.EXPECT().
		ClaimNextJob(gomock.Any()).
		Return(db.GenerationJob{}, pgx.ErrNoRows)

	store := jobs.NewStore(mockQuerier)
	job, err := store.ClaimNext(context.Background())
	require.NoError(t, err)
	assert.Nil(t, job)
}

func TestStoreCompleteRequiresProcessingState(t *testing.T) {
	jobID := uuid.New()

	mockQuerier := mocks.NewMockQuerierForTest(t)
	mockQuerier.EXPECT().
		CompleteJob(gomock.Any(), gomock.Any()).
		Return(db.GenerationJob{}, pgx.ErrNoRows)

	store := jobs.NewStore(mockQuerier)
	err := store.Complete(context.Background(), jobID, []byte(`{}`))
	assert.ErrorContains(t, err, "not processing")
}

func TestStoreFailRecordsErrorCode(t *testing.T) {
	jobID := uuid.New()

	mockQuerier := mocks.NewMockQuerierForTest(t)
	mockQuerier.EXPECT().
		FailJob(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.FailJobParams) (db.GenerationJob, error) {
			assert.Equal(t, jobID, arg.ID)
			assert.True(t, arg.ErrorCode.Valid)
			assert.Equal(t, string(jobs.CodeInvalidInput), arg.ErrorCode.String)
			return db.GenerationJob{ID: jobID, State: db.JobStateFailed}, nil
		})

	store := jobs.NewStore(mockQuerier)
	require.NoError(t, store.Fail(context.Background(), jobID, jobs.CodeInvalidInput))
}

func TestStoreRecoverStalled(t *testing.T) {
	exhausted := db.GenerationJob{ID: uuid.New(), State: db.JobStateFailed}
	requeued := db.GenerationJob{ID: uuid.New(), State: db.JobStatePending}

	mockQuerier := mocks.NewMockQuerierForTest(t)
	// Exhausted jobs are failed first so the reclaim pass cannot hand them
	// straight back to a worker.
	gomock.InOrder(
		mockQuerier.EXPECT().
			FailExhaustedJobs(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg db.FailExhaustedJobsParams) ([]db.GenerationJob, error) {
				assert.Equal(t, string(jobs.CodeJobTimeout), arg.ErrorCode.String)
				assert.Equal(t, int32(3), arg.MaxAttempts)
				assert.WithinDuration(t, time.Now().Add(-2*time.Minute), arg.ClaimedAt.Time, 5*time.Second)
				return []db.GenerationJob{exhausted}, nil
			}),
		mockQuerier.EXPECT().
			ReclaimStalledJobs(gomock.Any(), gomock.Any()).
			Return([]db.GenerationJob{requeued}, nil),
	)

	store := jobs.NewStore(mockQuerier)
	reclaimed, failed, err := store.RecoverStalled(context.Background(), 2*time.Minute, 3)
	require.NoError(t, err)
	assert.Equal(t, []db.GenerationJob{requeued}, reclaimed)
	assert.Equal(t, []db.GenerationJob{exhausted}, failed)
}
