package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"engelsiz-ankara-backend/internal/domain/model"
	"engelsiz-ankara-backend/internal/metrics"
	"engelsiz-ankara-backend/internal/usecase"
)

// AccessibilityHandler erişilebilirlik sorgularına ilişkin HTTP handler'ı
type AccessibilityHandler struct {
	accessibilityUseCase usecase.AccessibilityUseCase
	metrics              *metrics.Metrics
}

// NewAccessibilityHandler AccessibilityHandler'ın yeni örneğini oluşturur
func NewAccessibilityHandler(accessibilityUseCase usecase.AccessibilityUseCase, m *metrics.Metrics) *AccessibilityHandler {
	return &AccessibilityHandler{
		accessibilityUseCase: accessibilityUseCase,
		metrics:              m,
	}
}

// NearestStops GET /nearest-stops - koordinatı kapsayan hücrenin eğim ve durak bilgisi
func (h *AccessibilityHandler) NearestStops(c *gin.Context) {
	lat, ok := requiredFloatQuery(c, "lat")
	if !ok {
		h.metrics.NearestStopQueries.WithLabelValues(metrics.OutcomeInvalid).Inc()
		return
	}
	lon, ok := requiredFloatQuery(c, "lon")
	if !ok {
		h.metrics.NearestStopQueries.WithLabelValues(metrics.OutcomeInvalid).Inc()
		return
	}

	start := time.Now()
	result, err := h.accessibilityUseCase.NearestStops(lat, lon)
	h.metrics.LocateSeconds.Observe(time.Since(start).Seconds())
	h.metrics.NearestStopQueries.WithLabelValues(nearestStopsOutcome(err)).Inc()

	if err != nil {
		respondAccessibilityError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GridInfo GET /grid/:grid_id - numarası bilinen hücrenin erişilebilirlik bilgisi
func (h *AccessibilityHandler) GridInfo(c *gin.Context) {
	gridID, err := strconv.Atoi(c.Param("grid_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "grid_id must be an integer"})
		return
	}

	result, err := h.accessibilityUseCase.GridInfo(gridID)
	if err != nil {
		respondAccessibilityError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func nearestStopsOutcome(err error) string {
	var incomplete *model.IncompleteDataError
	switch {
	case err == nil:
		return metrics.OutcomeFound
	case errors.Is(err, model.ErrInvalidCoordinate):
		return metrics.OutcomeInvalid
	case errors.As(err, &incomplete):
		return metrics.OutcomeIncomplete
	default:
		return metrics.OutcomeNotFound
	}
}

// respondAccessibilityError coğrafi sorgu hatalarını HTTP yanıtına çevirir
func respondAccessibilityError(c *gin.Context, err error) {
	var incomplete *model.IncompleteDataError
	switch {
	case errors.Is(err, model.ErrInvalidCoordinate):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, model.ErrPointNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Could not find a grid for the given coordinates"})
	case errors.Is(err, model.ErrGridNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Grid not found"})
	case errors.As(err, &incomplete):
		c.JSON(http.StatusNotFound, gin.H{"error": incompleteDataMessage(incomplete)})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func incompleteDataMessage(e *model.IncompleteDataError) string {
	if e.Missing == "slope_score" {
		return fmt.Sprintf("No slope data found for grid_id %d", e.GridID)
	}
	return fmt.Sprintf("No stop data found for grid_id %d", e.GridID)
}
