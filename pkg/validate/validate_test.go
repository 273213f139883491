package validate

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"Inkwell/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Title  string   `json:"title" binding:"required"`
	Rating int      `json:"rating" binding:"min=1,max=5"`
	IDs    []uint64 `json:"chapterIds" binding:"required,min=1"`
}

func bind(t *testing.T, body string) error {
	t.Helper()
	Setup()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	var s sample
	return c.ShouldBindJSON(&s)
}

func TestBindError_FieldNames(t *testing.T) {
	err := bind(t, `{"rating": 9, "chapterIds": []}`)
	require.Error(t, err)

	verr := BindError(err)
	assert.ErrorIs(t, verr, errs.ErrValidation)
	assert.Contains(t, verr.Error(), "title is required")
	assert.Contains(t, verr.Error(), "rating must be at most 5")
	assert.Contains(t, verr.Error(), "chapterIds must contain at least 1 item(s)")
}

func TestBindError_TypeMismatch(t *testing.T) {
	err := bind(t, `{"title": 3}`)
	require.Error(t, err)

	verr := BindError(err)
	assert.ErrorIs(t, verr, errs.ErrValidation)
	assert.Contains(t, verr.Error(), "title")
}

func TestBindError_Malformed(t *testing.T) {
	err := bind(t, `{`)
	require.Error(t, err)
	assert.EqualError(t, BindError(err), "malformed request body")
}
