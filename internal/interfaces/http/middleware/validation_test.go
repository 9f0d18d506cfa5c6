package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticketera/backend/internal/interfaces/http/middleware"
)

type echoRequest struct {
	Name  string `json:"name" binding:"required"`
	Limit int    `json:"limit" binding:"omitempty,min=1,max=100"`
}

func newEchoRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()

	r := gin.New()
	r.POST("/echo", func(c *gin.Context) {
		var req echoRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			middleware.HandleValidationError(c, err)
			return
		}
		c.JSON(http.StatusOK, req)
	})
	return r
}

func TestValidationErrorUsesJSONFieldNames(t *testing.T) {
	r := newEchoRouter()

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"limit":500}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "ERR_VALIDATION")
	assert.Contains(t, body, `"field":"name"`)
	assert.Contains(t, body, "This field is required")
	assert.Contains(t, body, `"field":"limit"`)
	assert.Contains(t, body, "Must be at most 100")
}

func TestMalformedJSONIsBadRequest(t *testing.T) {
	r := newEchoRouter()

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "ERR_BAD_REQUEST")
}
