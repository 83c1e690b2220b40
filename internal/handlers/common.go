package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/txproof/txproof-api/internal/db"
	"github.com/txproof/txproof-api/internal/guard"
	"github.com/txproof/txproof-api/internal/jobs"
	"github.com/txproof/txproof-api/internal/logger"
)

// CommonServices holds common dependencies used across handlers
type CommonServices struct {
	db    db.Querier
	store *jobs.Store
	guard *guard.Guard
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// NewCommonServices creates a new instance of CommonServices
func NewCommonServices(queries db.Querier, store *jobs.Store, g *guard.Guard) *CommonServices {
	return &CommonServices{
		db:    queries,
		store: store,
		guard: g,
	}
}

// sendError is a helper function that combines logging and error response
// It logs the error with the given message and sends a JSON error response
func sendError(c *gin.Context, statusCode int, message string, err error) {
	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
	)
	c.JSON(statusCode, ErrorResponse{Error: message})
}

// sendCodedError sends an error response carrying a machine-readable code.
func sendCodedError(c *gin.Context, statusCode int, code jobs.ErrorCode, message string) {
	c.JSON(statusCode, ErrorResponse{Error: message, Code: string(code)})
}

// handleDBError is a helper function that handles database errors and returns appropriate HTTP status codes
func handleDBError(c *gin.Context, err error, notFoundMsg string) {
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, pgx.ErrNoRows):
		sendError(c, http.StatusNotFound, notFoundMsg, err)
	default:
		sendError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}

// sendSuccess is a helper function that sends a success response
func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}
