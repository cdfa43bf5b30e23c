package tests

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/mariepimienta/task-app/internal/adapter/http/handlers"
	"github.com/mariepimienta/task-app/internal/adapter/http/middleware"
)

type pingerStub struct {
	err error
}

func (p pingerStub) Ping(context.Context) error {
	return p.err
}

func healthRouter(store handlers.Pinger) *gin.Engine {
	handler := handlers.NewHealthHandler(store)

	router := gin.New()
	router.GET("/health", handler.CheckHealth)
	router.GET("/health/report", middleware.LanguageMiddleware(), handler.CheckHealthReport)
	return router
}

func TestHealthHandler_CheckHealth_Ok(t *testing.T) {
	rec := doJSON(t, healthRouter(pingerStub{}), http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var got handlers.HealthBasic
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, handlers.StatusOk, got.Message)
}

func TestHealthHandler_CheckHealth_StorageDown(t *testing.T) {
	rec := doJSON(t, healthRouter(pingerStub{err: errors.New("gone")}), http.MethodGet, "/health", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var got handlers.HealthBasic
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, handlers.StatusDown, got.Message)
}

func TestHealthHandler_CheckHealthReport(t *testing.T) {
	rec := doJSON(t, healthRouter(pingerStub{err: errors.New("gone")}), http.MethodGet, "/health/report", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var got handlers.HealthAdvanced
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, handlers.StatusDown, got.Status.Storage)
	require.Equal(t, "en", got.Language)
}
