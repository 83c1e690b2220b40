package jobs_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/txproof/txproof-api/internal/chain"
	"github.com/txproof/txproof-api/internal/db"
	"github.com/txproof/txproof-api/internal/jobs"
	"github.com/txproof/txproof-api/internal/mocks"
	"github.com/txproof/txproof-api/internal/pricing"
)

func strPtr(s string) *string { return &s }

func claimedJob() *db.GenerationJob {
	return &db.GenerationJob{
		ID:       uuid.New(),
		ChainID:  1,
		TxHash:   validTxHash,
		State:    db.JobStateProcessing,
		Attempts: 1,
	}
}

func nativeTransferFixture() (*chain.Transaction, *chain.Receipt) {
	tx := &chain.Transaction{
		Hash:      validTxHash,
		From:      "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		To:        strPtr("0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"),
		Value:     big.NewInt(1_000_000_000_000_000_000),
		GasFeeCap: big.NewInt(30_000_000_000),
		GasTipCap: big.NewInt(1_000_000_000),
	}
	receipt := &chain.Receipt{
		Status:            1,
		GasUsed:           21_000,
		EffectiveGasPrice: big.NewInt(20_000_000_000),
		BlockNumber:       19_000_000,
		BlockTimestamp:    1714571241,
	}
	return tx, receipt
}

func newTestProcessor(t *testing.T, querier db.Querier, fetcher jobs.TxFetcher, prices jobs.PriceGetter) *jobs.Processor {
	t.Helper()
	return jobs.NewProcessor(jobs.NewStore(querier), fetcher, prices, jobs.ProcessorConfig{
		WorkerCount:  1,
		PollInterval: 10 * time.Millisecond,
		JobTimeout:   time.Minute,
		MaxAttempts:  3,
	})
}

func TestProcessorSuccess(t *testing.T) {
	job := claimedJob()
	tx, receipt := nativeTransferFixture()

	fetcher := mocks.NewMockTxFetcherForTest(t)
	fetcher.EXPECT().
		FetchTransaction(gomock.Any(), job.ChainID, job.TxHash).
		Return(tx, receipt, nil)

	prices := mocks.NewMockPriceGetterForTest(t)
	prices.EXPECT().
		GetPrice(gomock.Any(), job.ChainID, pricing.NativeAsset, int64(receipt.BlockTimestamp)).
		Return(&pricing.Quote{
			ChainID:  1,
			AssetID:  pricing.NativeAsset,
			BucketTs: pricing.BucketTimestamp(int64(receipt.BlockTimestamp)),
			Price:    decimal.RequireFromString("2514.37"),
			Source:   "coinmarketcap",
		}, nil)

	var payload []byte
	mockQuerier := mocks.NewMockQuerierForTest(t)
	mockQuerier.EXPECT().
		CompleteJob(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CompleteJobParams) (db.GenerationJob, error) {
			payload = arg.ResultPayload
			return db.GenerationJob{ID: arg.ID, State: db.JobStateCompleted}, nil
		})

	p := newTestProcessor(t, mockQuerier, fetcher, prices)
	require.NoError(t, p.Process(context.Background(), job))

	var result jobs.Result
	require.NoError(t, json.Unmarshal(payload, &result))
	assert.Equal(t, chain.TypeNativeTransfer, result.Type)
	assert.Equal(t, chain.EnvelopeDynamicFee, result.Envelope)
	assert.Equal(t, chain.ConfidenceHigh, result.Confidence)
	assert.Equal(t, []string{"tx:value_no_calldata"}, result.Evidence)
	assert.Equal(t, "1000000000000000000", result.ValueWei)
	assert.Equal(t, "420000000000000", result.FeeWei) // 21000 * 20 gwei
	require.NotNil(t, result.Price)
	assert.Equal(t, "2514.37", result.Price.Amount)
	assert.Equal(t, "USD", result.Price.Currency)
	assert.Empty(t, result.Warnings)
}

// A dead price source degrades the receipt, it does not fail the job.
func TestProcessorCompletesWithoutPriceOnSourceFailure(t *testing.T) {
	job := claimedJob()
	tx, receipt := nativeTransferFixture()

	fetcher := mocks.NewMockTxFetcherForTest(t)
	fetcher.EXPECT().
		FetchTransaction(gomock.Any(), job.ChainID, job.TxHash).
		Return(tx, receipt, nil)

	prices := mocks.NewMockPriceGetterForTest(t)
	prices.EXPECT().
		GetPrice(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, pricing.ErrPriceUnavailable)

	var payload []byte
	mockQuerier := mocks.NewMockQuerierForTest(t)
	mockQuerier.EXPECT().
		CompleteJob(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CompleteJobParams) (db.GenerationJob, error) {
			payload = arg.ResultPayload
			return db.GenerationJob{ID: arg.ID, State: db.JobStateCompleted}, nil
		})

	p := newTestProcessor(t, mockQuerier, fetcher, prices)
	require.NoError(t, p.Process(context.Background(), job))

	var result jobs.Result
	require.NoError(t, json.Unmarshal(payload, &result))
	assert.Nil(t, result.Price)
	assert.Equal(t, []string{string(jobs.CodePriceUnavailable)}, result.Warnings)
	assert.Equal(t, chain.TypeNativeTransfer, result.Type)
}

func TestProcessorFailsOnUnknownTransaction(t *testing.T) {
	job := claimedJob()

	fetcher := mocks.NewMockTxFetcherForTest(t)
	fetcher.EXPECT().
		FetchTransaction(gomock.Any(), job.ChainID, job.TxHash).
		Return(nil, nil, fmt.Errorf("transaction not found on chain 1: %w", chain.ErrInvalidInput))

	prices := mocks.NewMockPriceGetterForTest(t)

	mockQuerier := mocks.NewMockQuerierForTest(t)
	mockQuerier.EXPECT().
		FailJob(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.FailJobParams) (db.GenerationJob, error) {
			assert.Equal(t, string(jobs.CodeInvalidInput), arg.ErrorCode.String)
			return db.GenerationJob{ID: arg.ID, State: db.JobStateFailed}, nil
		})

	p := newTestProcessor(t, mockQuerier, fetcher, prices)
	assert.Error(t, p.Process(context.Background(), job))
}

// A transient fetch failure must not burn the job: no FailJob call, the row
// stays processing and the reaper decides whether to requeue or time it out.
func TestProcessorLeavesJobProcessingOnTransientFetchError(t *testing.T) {
	job := claimedJob()

	fetcher := mocks.NewMockTxFetcherForTest(t)
	fetcher.EXPECT().
		FetchTransaction(gomock.Any(), job.ChainID, job.TxHash).
		Return(nil, nil, errors.New("rpc: connection reset by peer"))

	prices := mocks.NewMockPriceGetterForTest(t)

	// No FailJob (or CompleteJob) expectation: the strict mock turns any
	// terminal transition into a test failure.
	mockQuerier := mocks.NewMockQuerierForTest(t)

	p := newTestProcessor(t, mockQuerier, fetcher, prices)
	assert.Error(t, p.Process(context.Background(), job))
}

// Start/Stop drains cleanly with an empty queue.
func TestProcessorStartStop(t *testing.T) {
	mockQuerier := mocks.NewMockQuerierForTest(t)
	mockQuerier.EXPECT().
		ClaimNextJob(gomock.Any()).
		Return(db.GenerationJob{}, pgx.ErrNoRows).
		AnyTimes()

	fetcher := mocks.NewMockTxFetcherForTest(t)
	prices := mocks.NewMockPriceGetterForTest(t)

	p := newTestProcessor(t, mockQuerier, fetcher, prices)
	p.Start()
	time.Sleep(30 * time.Millisecond)
	p.Stop()
}
