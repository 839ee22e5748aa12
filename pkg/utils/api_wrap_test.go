package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"too long", ErrInputTooLong, http.StatusBadRequest, "Please enter a shorter request."},
		{"invalid", fmt.Errorf("%w: activities are required", ErrInvalidInput), http.StatusBadRequest, "invalid input: activities are required"},
		{"credential", fmt.Errorf("%w: OPENAI_API_KEY is not set", ErrMissingCredential), http.StatusServiceUnavailable, ""},
		{"not found", ErrPlaceNotFound, http.StatusNotFound, "Place not found"},
		{"upstream", fmt.Errorf("%w: openai: timeout", ErrUpstream), http.StatusBadGateway, "Upstream service failed"},
		{"database", ErrDatabaseError, http.StatusInternalServerError, "Internal server error"},
		{"dataset", ErrDatasetNotLoaded, http.StatusInternalServerError, "Internal server error"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Set("trace_id", "trace-1")

			HandleServiceError(c, nil, tc.err)

			assert.Equal(t, tc.status, w.Code)
			var resp APIResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "error", resp.Status)
			assert.Equal(t, tc.status, resp.Code)
			assert.Equal(t, "trace-1", resp.TraceID)
			if tc.message != "" {
				assert.Equal(t, tc.message, resp.Message)
			} else {
				assert.Contains(t, resp.Message, "OPENAI_API_KEY")
			}
		})
	}
}

func TestRespondSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	RespondSuccess(c, map[string]int{"n": 1}, "ok")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"success","code":200,"message":"ok","data":{"n":1}}`, w.Body.String())
}
