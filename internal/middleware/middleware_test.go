package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/minilms/internal/app/models/dto"
	"github.com/yigit/minilms/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serveError(err error) *httptest.ResponseRecorder {
	router := gin.New()
	router.GET("/", func(c *gin.Context) { HandleAPIError(c, err) })
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) dto.APIResponse {
	t.Helper()
	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHandleAPIError_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   dto.ErrorCode
	}{
		{"not found", apperrors.NewEntityNotFoundError(apperrors.EntityCourse, "c1"), http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"wrapped not found", fmt.Errorf("lookup: %w", apperrors.ErrResourceNotFound), http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"conflict", apperrors.NewConflictError("already enrolled"), http.StatusConflict, dto.ErrorCodeConflict},
		{"validation", apperrors.ErrValidationFailed, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"bad request", apperrors.NewBadRequestError("bad id"), http.StatusBadRequest, dto.ErrorCodeBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serveError(tt.err)

			assert.Equal(t, tt.status, w.Code)
			resp := decode(t, w)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code)
		})
	}
}

func TestHandleAPIError_KeepsMessageAndHidesInternals(t *testing.T) {
	resp := decode(t, serveError(apperrors.NewEntityNotFoundError(apperrors.EntityStudent, "s9")))
	assert.Equal(t, "Student with ID s9 not found", resp.Error.Message)

	resp = decode(t, serveError(apperrors.NewBadRequestError("courseId must be a valid GUID")))
	assert.Equal(t, "courseId must be a valid GUID", resp.Error.Message)

	resp = decode(t, serveError(errors.New("database password is hunter2")))
	assert.Equal(t, "Internal server error", resp.Error.Message)
}

type sampleRequest struct {
	Title string `json:"title" binding:"required,min=2"`
}

func TestBindJSON(t *testing.T) {
	router := gin.New()
	router.POST("/", func(c *gin.Context) {
		var req sampleRequest
		if !BindJSON(c, &req) {
			return
		}
		c.JSON(http.StatusOK, dto.NewSuccessResponse(req.Title))
	})

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"valid", `{"title":"Go"}`, http.StatusOK},
		{"too short", `{"title":"G"}`, http.StatusBadRequest},
		{"missing", `{}`, http.StatusBadRequest},
		{"malformed", `{"title":`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusBadRequest {
				resp := decode(t, w)
				assert.Equal(t, dto.ErrorCodeValidationFailed, resp.Error.Code)
				if tt.name != "malformed" {
					assert.Equal(t, "Title", resp.Error.Field)
				}
			}
		})
	}
}

func TestRecovery(t *testing.T) {
	router := gin.New()
	router.Use(Recovery())
	router.GET("/", func(c *gin.Context) { panic("unexpected") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, dto.ErrorCodeInternalServer, decode(t, w).Error.Code)
}

func TestCORS_AllowsConfiguredOrigin(t *testing.T) {
	router := gin.New()
	router.Use(CORS([]string{"http://localhost:5173"}))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	router.ServeHTTP(w, req)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://evil.test")
	router.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	router := gin.New()
	router.Use(RequestLogger(zerolog.New(&buf)))
	router.GET("/items", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items?x=1", nil))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "/items?x=1", entry["path"])
	assert.EqualValues(t, http.StatusNotFound, entry["status"])
}
