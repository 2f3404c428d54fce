package httpresp

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func performRequest(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestOK_Envelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", func(c *gin.Context) {
		OK(c, gin.H{"id": 1})
	})

	w := performRequest(r, http.MethodGet, "/x")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":{"id":1}}`, w.Body.String())
}

func TestList_EnvelopeWithTotal(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", func(c *gin.Context) {
		List(c, []string{"a", "b"})
	})

	w := performRequest(r, http.MethodGet, "/x")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":{"items":["a","b"],"total":2}}`, w.Body.String())
}

func TestList_EmptyIsNotNull(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", func(c *gin.Context) {
		List(c, []int{})
	})

	w := performRequest(r, http.MethodGet, "/x")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":{"items":[],"total":0}}`, w.Body.String())
}
