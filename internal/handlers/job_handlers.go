package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/txproof/txproof-api/internal/auth"
	"github.com/txproof/txproof-api/internal/db"
	"github.com/txproof/txproof-api/internal/guard"
	"github.com/txproof/txproof-api/internal/jobs"
)

// JobHandler handles receipt generation job endpoints
type JobHandler struct {
	common *CommonServices
}

// NewJobHandler creates a new JobHandler
func NewJobHandler(common *CommonServices) *JobHandler {
	return &JobHandler{common: common}
}

// SubmitJobRequest is the body for submitting a transaction for receipt generation
type SubmitJobRequest struct {
	ChainID int64  `json:"chainId" binding:"required"`
	TxHash  string `json:"txHash" binding:"required"`
}

// JobResponse is the poll representation of a generation job
type JobResponse struct {
	JobID     string          `json:"jobId"`
	ChainID   int64           `json:"chainId"`
	TxHash    string          `json:"txHash"`
	State     string          `json:"state"`
	Attempts  int32           `json:"attempts"`
	Result    json.RawMessage `json:"result,omitempty"`
	ErrorCode string          `json:"errorCode,omitempty"`
	CreatedAt int64           `json:"createdAt"`
}

func toJobResponse(job db.GenerationJob) JobResponse {
	resp := JobResponse{
		JobID:     job.ID.String(),
		ChainID:   job.ChainID,
		TxHash:    job.TxHash,
		State:     string(job.State),
		Attempts:  job.Attempts,
		CreatedAt: job.CreatedAt.Unix(),
	}
	if job.State == db.JobStateCompleted && len(job.ResultPayload) > 0 {
		resp.Result = json.RawMessage(job.ResultPayload)
	}
	if job.State == db.JobStateFailed && job.ErrorCode.Valid {
		resp.ErrorCode = job.ErrorCode.String
	}
	return resp
}

// SubmitJob accepts a (chain, transaction hash) pair and enqueues receipt
// generation. Resubmitting a pair returns the existing job, whatever state
// it is in. Admission control runs before the enqueue so rejected requests
// never touch the job table.
func (h *JobHandler) SubmitJob(c *gin.Context) {
	credential, ok := auth.CredentialFromContext(c)
	if !ok {
		sendError(c, http.StatusUnauthorized, "No credential in context", nil)
		return
	}

	var req SubmitJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendCodedError(c, http.StatusBadRequest, jobs.CodeInvalidInput, "Invalid request body")
		return
	}

	decision, err := h.common.guard.Check(c.Request.Context(), credential)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to check admission", err)
		return
	}
	c.Header("X-RateLimit-Remaining", strconv.Itoa(decision.RateRemaining))
	c.Header("X-Quota-Remaining", strconv.FormatInt(int64(decision.QuotaRemaining), 10))

	switch decision.Outcome {
	case guard.OutcomeRateLimited:
		c.Header("Retry-After", strconv.Itoa(int(decision.RetryAfter.Seconds())+1))
		sendCodedError(c, http.StatusTooManyRequests, jobs.CodeRateLimited, "Rate limit exceeded")
		return
	case guard.OutcomeQuotaExceeded:
		sendCodedError(c, http.StatusTooManyRequests, jobs.CodeQuotaExceeded, "Monthly quota exhausted")
		return
	}

	job, err := h.common.store.Submit(c.Request.Context(), req.ChainID, req.TxHash)
	if err != nil {
		if errors.Is(err, jobs.ErrInvalidSubmission) {
			sendCodedError(c, http.StatusBadRequest, jobs.CodeInvalidInput, err.Error())
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to submit job", err)
		return
	}

	// A resubmitted pair may already be completed; report 200 so clients
	// can skip the poll round-trip. Failed rows never surface here because
	// submission requeues them as pending.
	status := http.StatusAccepted
	if job.State == db.JobStateCompleted {
		status = http.StatusOK
	}
	sendSuccess(c, status, toJobResponse(job))
}

// GetJob returns the current state of a generation job, including the
// receipt payload once the job has completed.
func (h *JobHandler) GetJob(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("job_id"))
	if err != nil {
		sendCodedError(c, http.StatusBadRequest, jobs.CodeInvalidInput, "Invalid job ID format")
		return
	}

	job, err := h.common.store.GetStatus(c.Request.Context(), jobID)
	if err != nil {
		handleDBError(c, err, fmt.Sprintf("Job %s not found", jobID))
		return
	}

	sendSuccess(c, http.StatusOK, toJobResponse(job))
}
