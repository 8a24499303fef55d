package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"engelsiz-ankara-backend/internal/usecase"
)

// AnalyticsHandler pano istatistik uçlarına ilişkin HTTP handler'ı
type AnalyticsHandler struct {
	analyticsUseCase usecase.AnalyticsUseCase
}

// NewAnalyticsHandler AnalyticsHandler'ın yeni örneğini oluşturur
func NewAnalyticsHandler(analyticsUseCase usecase.AnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsUseCase: analyticsUseCase}
}

// Summary GET /analytics/summary - pano özet istatistikleri
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	summary, err := h.analyticsUseCase.Summary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Trend GET /analytics/trend - günlük şikayet sayıları
func (h *AnalyticsHandler) Trend(c *gin.Context) {
	days, ok := intQuery(c, "days", 30, 1, 365)
	if !ok {
		return
	}

	trend, err := h.analyticsUseCase.Trend(c.Request.Context(), days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, trend)
}

// Hotspots GET /analytics/hotspots - şikayetlerin yoğunlaştığı bölgeler
func (h *AnalyticsHandler) Hotspots(c *gin.Context) {
	hotspots, err := h.analyticsUseCase.Hotspots(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, hotspots)
}

// Urgent GET /analytics/urgent - bekleyen acil şikayetler
func (h *AnalyticsHandler) Urgent(c *gin.Context) {
	urgent, err := h.analyticsUseCase.Urgent(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, urgent)
}
