package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"engelsiz-ankara-backend/internal/domain/model"
	"engelsiz-ankara-backend/internal/usecase"
)

// StopsHandler otobüs durağı sorgularına ilişkin HTTP handler'ı
type StopsHandler struct {
	stopsUseCase usecase.StopsUseCase
}

// NewStopsHandler StopsHandler'ın yeni örneğini oluşturur
func NewStopsHandler(stopsUseCase usecase.StopsUseCase) *StopsHandler {
	return &StopsHandler{stopsUseCase: stopsUseCase}
}

// ListStops GET /bus-stops - bölge içindeki durakları listeler.
// Bölge parametreleri verilmezse Ankara merkez sınırları kullanılır.
func (h *StopsHandler) ListStops(c *gin.Context) {
	minLat, ok := floatQuery(c, "min_lat", model.DefaultBounds.MinLat)
	if !ok {
		return
	}
	maxLat, ok := floatQuery(c, "max_lat", model.DefaultBounds.MaxLat)
	if !ok {
		return
	}
	minLon, ok := floatQuery(c, "min_lon", model.DefaultBounds.MinLon)
	if !ok {
		return
	}
	maxLon, ok := floatQuery(c, "max_lon", model.DefaultBounds.MaxLon)
	if !ok {
		return
	}
	limit, ok := intQuery(c, "limit", 100, 1, 500)
	if !ok {
		return
	}

	bounds := model.Bounds{MinLat: minLat, MaxLat: maxLat, MinLon: minLon, MaxLon: maxLon}
	c.JSON(http.StatusOK, h.stopsUseCase.ListStops(bounds, limit))
}

// NearbyStops GET /bus-stops/nearby - merkez noktanın çevresindeki duraklar
func (h *StopsHandler) NearbyStops(c *gin.Context) {
	lat, ok := requiredFloatQuery(c, "lat")
	if !ok {
		return
	}
	lon, ok := requiredFloatQuery(c, "lon")
	if !ok {
		return
	}
	radiusKM, ok := floatQuery(c, "radius_km", 1.0)
	if !ok {
		return
	}
	if radiusKM < 0.1 || radiusKM > 5.0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "radius_km must be between 0.1 and 5.0"})
		return
	}
	limit, ok := intQuery(c, "limit", 20, 1, 100)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, h.stopsUseCase.NearbyStops(lat, lon, radiusKM, limit))
}

// Bounds GET /bus-stops/bounds - durak verisinin sınırları ve harita merkezi
func (h *StopsHandler) Bounds(c *gin.Context) {
	result, err := h.stopsUseCase.StopsBounds()
	if err != nil {
		// boş veri setinde durum kodu 200 kalır, hata gövdede taşınır; ön yüz bunu bekler
		if errors.Is(err, model.ErrNoStopData) {
			c.JSON(http.StatusOK, gin.H{"error": "Durak verisi bulunamadı"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// requiredFloatQuery zorunlu sayısal parametreyi okur, eksik veya bozuksa isteği 400 ile keser
func requiredFloatQuery(c *gin.Context, name string) (float64, bool) {
	raw := c.Query(name)
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " query parameter is required"})
		return 0, false
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be a number"})
		return 0, false
	}
	return value, true
}

// floatQuery isteğe bağlı sayısal parametreyi okur, verilmemişse varsayılanı döndürür
func floatQuery(c *gin.Context, name string, fallback float64) (float64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be a number"})
		return 0, false
	}
	return value, true
}

// intQuery isteğe bağlı tamsayı parametresini aralık denetimiyle okur
func intQuery(c *gin.Context, name string, fallback, min, max int) (int, bool) {
	raw := c.Query(name)
	value := fallback
	if raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be an integer"})
			return 0, false
		}
		value = parsed
	}
	if value < min || value > max {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("%s must be between %d and %d", name, min, max)})
		return 0, false
	}
	return value, true
}
