package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	return c.GetString("trace_id")
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service sentinels onto HTTP status codes. The logger may be nil.
func HandleServiceError(c *gin.Context, logger *zap.Logger, err error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	switch {
	case errors.Is(err, ErrInputTooLong):
		RespondError(c, http.StatusBadRequest, "Please enter a shorter request.")
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrMissingCredential):
		logger.Warn("missing credential", zap.Error(err), zap.String("trace_id", traceID(c)))
		RespondError(c, http.StatusServiceUnavailable, "Please insert an API key for the configured provider: "+err.Error())
	case errors.Is(err, ErrPlaceNotFound):
		RespondError(c, http.StatusNotFound, "Place not found")
	case errors.Is(err, ErrUpstream):
		logger.Error("upstream error", zap.Error(err), zap.String("trace_id", traceID(c)))
		RespondError(c, http.StatusBadGateway, "Upstream service failed")
	case errors.Is(err, ErrDatabaseError), errors.Is(err, ErrDatasetNotLoaded):
		logger.Error("database error", zap.Error(err), zap.String("trace_id", traceID(c)))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		logger.Error("unknown error", zap.Error(err), zap.String("trace_id", traceID(c)))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
