package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	server := gin.New()
	server.Use(RequestLogger(logger))
	server.GET("/ping", func(c *gin.Context) {
		zerolog.Ctx(c.Request.Context()).Info().Msg("inside handler")
		c.Status(http.StatusOK)
	})

	t.Run("GeneratesRequestID", func(t *testing.T) {
		buf.Reset()

		recorder := httptest.NewRecorder()
		server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/ping", nil))

		id := recorder.Header().Get(RequestIDHeader)
		require.NotEmpty(t, id)
		require.Contains(t, buf.String(), `"request_id":"`+id+`"`)
		require.Contains(t, buf.String(), "inside handler")
		require.Contains(t, buf.String(), `"status_code":200`)
	})

	t.Run("PropagatesRequestID", func(t *testing.T) {
		buf.Reset()

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "req-42")

		recorder := httptest.NewRecorder()
		server.ServeHTTP(recorder, req)

		require.Equal(t, "req-42", recorder.Header().Get(RequestIDHeader))
		require.Contains(t, buf.String(), `"request_id":"req-42"`)
	})
}

func TestRecovery(t *testing.T) {
	server := gin.New()
	server.Use(RequestLogger(zerolog.Nop()))
	server.Use(Recovery())
	server.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/panic", nil))

	require.Equal(t, http.StatusInternalServerError, recorder.Code)
	require.JSONEq(t, `{"message":"Internal Server Error"}`, recorder.Body.String())
}
