package guard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/txproof/txproof-api/internal/db"
	"github.com/txproof/txproof-api/internal/logger"
)

// Outcome is the result of an admission check.
type Outcome string

const (
	OutcomeAllowed       Outcome = "allowed"
	OutcomeRateLimited   Outcome = "rate_limited"
	OutcomeQuotaExceeded Outcome = "quota_exceeded"
)

// Decision carries the admission outcome plus the header material exposed
// to callers: remaining bucket tokens, remaining monthly quota, and the
// delay until the next token on denial.
type Decision struct {
	Outcome        Outcome
	RetryAfter     time.Duration
	RateRemaining  int
	QuotaRemaining int32
}

// Allowed reports whether the request may proceed.
func (d Decision) Allowed() bool {
	return d.Outcome == OutcomeAllowed
}

// Guard enforces the two independent admission axes in front of job
// submission: a per-credential token bucket against bursts, and a monthly
// counter against sustained over-use. Both must pass.
type Guard struct {
	queries         db.Querier
	limiters        sync.Map // credential id -> *limiterEntry
	cleanupInterval time.Duration
	log             *zap.Logger
}

// limiterEntry holds a rate limiter and its last access time
type limiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// NewGuard creates a guard and starts the idle-limiter cleanup loop.
func NewGuard(queries db.Querier) *Guard {
	g := &Guard{
		queries:         queries,
		cleanupInterval: 5 * time.Minute,
		log:             logger.Log,
	}
	go g.cleanup()
	return g
}

// cleanup removes limiters that haven't been accessed recently
func (g *Guard) cleanup() {
	ticker := time.NewTicker(g.cleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		g.limiters.Range(func(key, value interface{}) bool {
			if entry, ok := value.(*limiterEntry); ok {
				if now.Sub(entry.lastAccess) > 10*time.Minute {
					g.limiters.Delete(key)
				}
			}
			return true
		})
	}
}

// getLimiter returns the token bucket for a credential, creating it from
// the credential's plan on first use. Refill is lazy: rate.Limiter computes
// available tokens from elapsed time at check time.
func (g *Guard) getLimiter(cred db.Credential) *rate.Limiter {
	if val, ok := g.limiters.Load(cred.ID); ok {
		entry := val.(*limiterEntry)
		entry.lastAccess = time.Now()
		return entry.limiter
	}

	entry := &limiterEntry{
		limiter:    rate.NewLimiter(rate.Limit(cred.RatePerSec), int(cred.Burst)),
		lastAccess: time.Now(),
	}
	actual, _ := g.limiters.LoadOrStore(cred.ID, entry)
	return actual.(*limiterEntry).limiter
}

// Check admits or denies one request for the credential. A denial is an
// expected outcome, not an error; the error return is reserved for store
// failures.
func (g *Guard) Check(ctx context.Context, cred db.Credential) (Decision, error) {
	limiter := g.getLimiter(cred)

	reservation := limiter.Reserve()
	if !reservation.OK() {
		return Decision{Outcome: OutcomeRateLimited, RetryAfter: time.Second}, nil
	}
	if delay := reservation.Delay(); delay > 0 {
		// No token available right now; hand the token back and tell the
		// caller when to retry instead of queueing the request.
		reservation.Cancel()
		return Decision{
			Outcome:        OutcomeRateLimited,
			RetryAfter:     delay,
			QuotaRemaining: cred.MonthlyLimit - cred.MonthlyUsed,
		}, nil
	}

	cred, err := g.consumeQuota(ctx, cred)
	if err != nil {
		// The request is not admitted, so the rate token it reserved goes
		// back; quota-denied bursts must not eat rate capacity.
		reservation.Cancel()
		if errors.Is(err, pgx.ErrNoRows) {
			g.log.Info("Monthly quota exhausted",
				zap.String("credential_id", cred.ID.String()),
				zap.Int32("monthly_limit", cred.MonthlyLimit),
			)
			return Decision{
				Outcome:       OutcomeQuotaExceeded,
				RateRemaining: int(limiter.Tokens()),
			}, nil
		}
		return Decision{}, fmt.Errorf("failed to consume quota: %w", err)
	}

	return Decision{
		Outcome:        OutcomeAllowed,
		RateRemaining:  int(limiter.Tokens()),
		QuotaRemaining: cred.MonthlyLimit - cred.MonthlyUsed,
	}, nil
}

// consumeQuota rolls the billing period forward when a new month has
// started, then takes one unit of monthly quota with a conditional update.
func (g *Guard) consumeQuota(ctx context.Context, cred db.Credential) (db.Credential, error) {
	periodStart := currentPeriodStart(time.Now().UTC())
	if cred.PeriodStart.Before(periodStart) {
		reset, err := g.queries.ResetQuotaPeriod(ctx, db.ResetQuotaPeriodParams{
			ID:          cred.ID,
			PeriodStart: periodStart,
		})
		switch {
		case err == nil:
			cred = reset
		case errors.Is(err, pgx.ErrNoRows):
			// Another request already rolled the period; carry on.
		default:
			return cred, err
		}
	}

	return g.queries.ConsumeMonthlyQuota(ctx, cred.ID)
}

// currentPeriodStart returns the first instant of the month containing t.
func currentPeriodStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
