package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/haisum/smsinfo/pkg/config"
	"github.com/haisum/smsinfo/pkg/logger"
	"github.com/stretchr/testify/assert"
)

func TestServer(t *testing.T) {
	cfg := config.Config{HTTPPort: 8080, ShutdownTimeout: time.Second, MaxTextLength: 100}
	h := accessControl(newMux(cfg, logger.Get().With("component", "test")))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/message/v1/info?Text=hello", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Body.String(), `"Encoding":"gsm7"`)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("OPTIONS", "/message/v1/info", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/user/v1/info", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
