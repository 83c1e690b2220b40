package jobs

// ErrorCode is the externally visible failure/backpressure taxonomy.
type ErrorCode string

const (
	// CodeInvalidInput marks a malformed request. Never retried.
	CodeInvalidInput ErrorCode = "invalid_input"
	// CodeRateLimited and CodeQuotaExceeded are expected backpressure
	// signals; callers retry with backoff or upgrade their plan. Neither
	// ever creates a job row.
	CodeRateLimited   ErrorCode = "rate_limited"
	CodeQuotaExceeded ErrorCode = "quota_exceeded"
	// CodePriceUnavailable degrades the receipt; it never fails a job.
	CodePriceUnavailable ErrorCode = "price_unavailable"
	// CodeJobTimeout is the terminal state of a job whose worker stalled
	// or crashed past the attempt cap.
	CodeJobTimeout ErrorCode = "job_timeout"
	// CodeInternalError covers everything unexpected. Terminal; logged for
	// operator attention.
	CodeInternalError ErrorCode = "internal_error"
)
