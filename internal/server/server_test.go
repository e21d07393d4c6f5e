package server

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("healthy when the database responds", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer db.Close()
		mock.ExpectPing()

		srv := New("127.0.0.1:0", db, "release", 1)
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp := httptest.NewRecorder()
		srv.Engine.ServeHTTP(resp, req)

		require.Equal(t, http.StatusOK, resp.Code)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unhealthy when the ping fails", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer db.Close()
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))

		srv := New("127.0.0.1:0", db, "release", 1)
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp := httptest.NewRecorder()
		srv.Engine.ServeHTTP(resp, req)

		require.Equal(t, http.StatusServiceUnavailable, resp.Code)
	})
}

func TestRegisterCacheInvalidation_CallsEveryHook(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var first, second int
	r := gin.New()
	RegisterCacheInvalidation(r,
		func() { first++ },
		func() { second++ },
	)

	req := httptest.NewRequest(http.MethodPost, "/caches/invalidate", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusNoContent, resp.Code)
	require.Equal(t, 1, first)
	require.Equal(t, 1, second)
}

func TestBodySizeLimit_RejectsOversizedBodies(t *testing.T) {
	gin.SetMode(gin.TestMode)

	srv := New("127.0.0.1:0", nil, "release", 1)
	srv.Engine.POST("/echo", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	oversized := bytes.Repeat([]byte("x"), 1024*1024+1)
	req := httptest.NewRequest(http.MethodPost, "/echo", bytes.NewReader(oversized))
	resp := httptest.NewRecorder()
	srv.Engine.ServeHTTP(resp, req)
	require.Equal(t, http.StatusRequestEntityTooLarge, resp.Code)

	req = httptest.NewRequest(http.MethodPost, "/echo", bytes.NewBufferString(`{}`))
	resp = httptest.NewRecorder()
	srv.Engine.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)
}
