package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/txproof/txproof-api/internal/chain"
	"github.com/txproof/txproof-api/internal/db"
	"github.com/txproof/txproof-api/internal/logger"
	"github.com/txproof/txproof-api/internal/pricing"
)

// TxFetcher retrieves normalized transaction data for a chain.
type TxFetcher interface {
	FetchTransaction(ctx context.Context, chainID int64, txHash string) (*chain.Transaction, *chain.Receipt, error)
}

// PriceGetter resolves a historical unit price.
type PriceGetter interface {
	GetPrice(ctx context.Context, chainID int64, assetID string, unixTS int64) (*pricing.Quote, error)
}

const processTimeout = 60 * time.Second

// ProcessorConfig tunes the worker pool and stuck-job recovery.
type ProcessorConfig struct {
	WorkerCount  int
	PollInterval time.Duration
	JobTimeout   time.Duration
	MaxAttempts  int32
}

// Processor runs the worker pool that drains the job queue. Each worker
// claims a job, assembles the receipt (decode, classify, price) and drives
// the job to a terminal state. Workers hold no shared in-memory job state;
// the store's atomic claim is the only coordination point.
type Processor struct {
	store   *Store
	fetcher TxFetcher
	prices  PriceGetter
	cfg     ProcessorConfig

	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
	log    *zap.Logger
}

// NewProcessor creates a processor with the given pool configuration.
func NewProcessor(store *Store, fetcher TxFetcher, prices PriceGetter, cfg ProcessorConfig) *Processor {
	ctx, cancel := context.WithCancel(context.Background())
	return &Processor{
		store:   store,
		fetcher: fetcher,
		prices:  prices,
		cfg:     cfg,
		ctx:     ctx,
		cancel:  cancel,
		log:     logger.Log,
	}
}

// Start launches the worker goroutines and the stuck-job reaper.
func (p *Processor) Start() {
	p.log.Info("Starting job processor", zap.Int("worker_count", p.cfg.WorkerCount))

	p.wg.Add(1)
	go p.reapLoop()

	for i := 0; i < p.cfg.WorkerCount; i++ {
		workerID := i
		p.wg.Add(1)

		go func() {
			defer p.wg.Done()
			p.log.Debug("Job worker started", zap.Int("worker_id", workerID))
			p.workerLoop(workerID)
		}()
	}
}

// Stop cancels all workers and waits for them to drain.
func (p *Processor) Stop() {
	p.log.Info("Stopping job processor")
	p.cancel()
	p.wg.Wait()
	p.log.Info("Job processor stopped")
}

func (p *Processor) workerLoop(workerID int) {
	for {
		select {
		case <-p.ctx.Done():
			p.log.Debug("Job worker stopped", zap.Int("worker_id", workerID))
			return
		default:
		}

		job, err := p.store.ClaimNext(p.ctx)
		if err != nil {
			p.log.Error("Failed to claim job", zap.Error(err), zap.Int("worker_id", workerID))
			p.sleep(p.cfg.PollInterval)
			continue
		}
		if job == nil {
			p.sleep(p.cfg.PollInterval)
			continue
		}

		if err := p.Process(p.ctx, job); err != nil {
			p.log.Error("Failed to process job",
				zap.Error(err),
				zap.String("job_id", job.ID.String()),
				zap.Int64("chain_id", job.ChainID),
				zap.String("tx_hash", job.TxHash),
			)
		}
	}
}

// Process assembles the receipt for a claimed job and transitions it to a
// terminal state. Pricing failure is soft: the receipt completes with null
// pricing and a warning, because classification correctness must not be
// held hostage to price-source availability. Everything else that goes
// wrong here is terminal.
func (p *Processor) Process(ctx context.Context, job *db.GenerationJob) error {
	ctx, cancel := context.WithTimeout(ctx, processTimeout)
	defer cancel()

	tx, receipt, err := p.fetcher.FetchTransaction(ctx, job.ChainID, job.TxHash)
	if err != nil {
		if errors.Is(err, chain.ErrInvalidInput) {
			if failErr := p.store.Fail(ctx, job.ID, CodeInvalidInput); failErr != nil {
				return failErr
			}
			return fmt.Errorf("failed to fetch transaction: %w", err)
		}
		// Anything else (RPC hiccup, node lagging the tx, still-pending tx)
		// is retryable: the row stays processing so the reaper requeues it
		// until the attempt cap turns it into a job_timeout failure.
		return fmt.Errorf("transient fetch failure, leaving job for reaper: %w", err)
	}

	classification, err := chain.Classify(tx, receipt, job.ChainID)
	if err != nil {
		// Classification never fails on well-formed chain data; reaching
		// this is a programmer error, surfaced instead of swallowed.
		if failErr := p.store.Fail(ctx, job.ID, CodeInternalError); failErr != nil {
			return failErr
		}
		return fmt.Errorf("classifier rejected fetched transaction: %w", err)
	}

	result := p.buildResult(job, tx, receipt, classification)

	// Fees (and any transferred value) are denominated in the native asset,
	// so every receipt wants the native quote at the block timestamp.
	quote, err := p.prices.GetPrice(ctx, job.ChainID, pricing.NativeAsset, int64(receipt.BlockTimestamp))
	if err != nil {
		p.log.Warn("Price resolution failed, completing receipt without pricing",
			zap.String("job_id", job.ID.String()),
			zap.Int64("chain_id", job.ChainID),
			zap.Error(err),
		)
		result.Warnings = append(result.Warnings, string(CodePriceUnavailable))
	} else {
		result.Price = &PriceDetail{
			Amount:          quote.Price.String(),
			Currency:        "USD",
			Source:          quote.Source,
			BucketTimestamp: quote.BucketTs.Unix(),
		}
	}

	payload, err := json.Marshal(result)
	if err != nil {
		if failErr := p.store.Fail(ctx, job.ID, CodeInternalError); failErr != nil {
			return failErr
		}
		return fmt.Errorf("failed to marshal result payload: %w", err)
	}

	if err := p.store.Complete(ctx, job.ID, payload); err != nil {
		return fmt.Errorf("failed to complete job: %w", err)
	}

	p.log.Info("Receipt generated",
		zap.String("job_id", job.ID.String()),
		zap.Int64("chain_id", job.ChainID),
		zap.String("tx_hash", job.TxHash),
		zap.String("type", string(classification.Type)),
	)
	return nil
}

func (p *Processor) buildResult(job *db.GenerationJob, tx *chain.Transaction, receipt *chain.Receipt, classification chain.Classification) *Result {
	feeWei := new(big.Int)
	if receipt.EffectiveGasPrice != nil {
		feeWei.Mul(new(big.Int).SetUint64(receipt.GasUsed), receipt.EffectiveGasPrice)
	}

	value := "0"
	if tx.Value != nil {
		value = tx.Value.String()
	}

	return &Result{
		ChainID:        job.ChainID,
		TxHash:         job.TxHash,
		Envelope:       classification.Envelope,
		Type:           classification.Type,
		Confidence:     classification.Confidence,
		Evidence:       classification.Evidence,
		Status:         receipt.Status,
		BlockNumber:    receipt.BlockNumber,
		BlockTimestamp: receipt.BlockTimestamp,
		From:           tx.From,
		To:             tx.To,
		ValueWei:       value,
		GasUsed:        receipt.GasUsed,
		FeeWei:         feeWei.String(),
	}
}

// reapLoop periodically requeues stalled jobs and force-fails the ones past
// the attempt cap.
func (p *Processor) reapLoop() {
	defer p.wg.Done()

	interval := p.cfg.JobTimeout / 2
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-p.ctx.Done():
			return
		case <-ticker.C:
			reclaimed, failed, err := p.store.RecoverStalled(p.ctx, p.cfg.JobTimeout, p.cfg.MaxAttempts)
			if err != nil {
				p.log.Error("Stuck-job recovery failed", zap.Error(err))
				continue
			}
			if len(reclaimed) > 0 || len(failed) > 0 {
				p.log.Warn("Recovered stalled jobs",
					zap.Int("reclaimed", len(reclaimed)),
					zap.Int("force_failed", len(failed)),
				)
			}
		}
	}
}

func (p *Processor) sleep(d time.Duration) {
	select {
	case <-p.ctx.Done():
	case <-time.After(d):
	}
}
