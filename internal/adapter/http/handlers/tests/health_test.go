package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"taskboard/internal/adapter/http/dto"
	"taskboard/internal/adapter/http/handlers"
	"taskboard/internal/adapter/http/middleware"
	"taskboard/pkg/translator"
)

func newHealthRouter() *gin.Engine {
	handler := handlers.NewHealthHandler(nil)

	router := gin.New()
	api := router.Group("/api", middleware.LanguageMiddleware())
	api.GET("/health", handler.CheckHealth)
	api.GET("/health/report", handler.CheckHealthReport)
	return router
}

func TestHealthHandler_CheckHealth(t *testing.T) {
	router := newHealthRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.True(t, got.Success)
	require.Equal(t, "API is running", got.Message)

	_, err := time.Parse(time.RFC3339, got.Timestamp)
	require.NoError(t, err)
}

func TestHealthHandler_CheckHealthReport_NoClient(t *testing.T) {
	router := newHealthRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/health/report", nil)
	req.Header.Set("Accept-Language", translator.LanguageFr)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got handlers.HealthReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, handlers.StatusDown, got.Status.Mongo)
	require.Equal(t, translator.LanguageFr, got.Language)
}
