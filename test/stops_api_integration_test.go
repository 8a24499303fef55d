package test

import (
	"log"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBusStopsAPI durak listeleme uçlarını doğrular
func TestBusStopsAPI(t *testing.T) {
	log.Printf("🧪 Otobüs durağı API testi başladı")
	s := setupAPIServer(t)

	t.Run("varsayılan bölge", func(t *testing.T) {
		w := s.get(t, "/bus-stops", "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Total  int `json:"total"`
			Bounds struct {
				MinLat float64 `json:"min_lat"`
				MaxLon float64 `json:"max_lon"`
			} `json:"bounds"`
			Stops []struct {
				StopID int `json:"stop_id"`
			} `json:"stops"`
		}
		decodeBody(t, w, &resp)
		assert.Equal(t, 3, resp.Total)
		assert.Len(t, resp.Stops, 3)
		assert.Equal(t, 39.90, resp.Bounds.MinLat)
		assert.Equal(t, 32.90, resp.Bounds.MaxLon)
	})

	t.Run("özel bölge", func(t *testing.T) {
		// yalnızca 1751 numaralı durağı kapsayan dar bölge
		w := s.get(t, "/bus-stops?min_lat=39.9205&max_lat=39.9215&min_lon=32.8505&max_lon=32.8515", "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Total int `json:"total"`
			Stops []struct {
				StopID int `json:"stop_id"`
			} `json:"stops"`
		}
		decodeBody(t, w, &resp)
		assert.Equal(t, 1, resp.Total)
		require.Len(t, resp.Stops, 1)
		assert.Equal(t, 1751, resp.Stops[0].StopID)
	})

	t.Run("limit denetimi", func(t *testing.T) {
		w := s.get(t, "/bus-stops?limit=0", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "limit must be between 1 and 500", errorMessage(t, w))
	})

	t.Run("bozuk bölge parametresi", func(t *testing.T) {
		w := s.get(t, "/bus-stops?min_lat=abc", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "min_lat must be a number", errorMessage(t, w))
	})
}

// TestNearbyBusStopsAPI yarıçap sorgusunu doğrular
func TestNearbyBusStopsAPI(t *testing.T) {
	log.Printf("🧪 Yakın durak API testi başladı")
	s := setupAPIServer(t)

	t.Run("mesafeye göre sıralı sonuç", func(t *testing.T) {
		w := s.get(t, "/bus-stops/nearby?lat=39.92&lon=32.85&radius_km=2", "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Center struct {
				Lat float64 `json:"lat"`
				Lon float64 `json:"lon"`
			} `json:"center"`
			RadiusKM float64 `json:"radius_km"`
			Total    int     `json:"total"`
			Stops    []struct {
				StopID     int     `json:"stop_id"`
				DistanceKM float64 `json:"distance_km"`
				DistanceM  float64 `json:"distance_m"`
			} `json:"stops"`
		}
		decodeBody(t, w, &resp)
		assert.Equal(t, 39.92, resp.Center.Lat)
		assert.Equal(t, 2.0, resp.RadiusKM)
		assert.Equal(t, 3, resp.Total)
		require.Len(t, resp.Stops, 3)

		// merkez 1750 numaralı durağın tam üstünde
		assert.Equal(t, 1750, resp.Stops[0].StopID)
		assert.Equal(t, 0.0, resp.Stops[0].DistanceKM)
		for i := 1; i < len(resp.Stops); i++ {
			assert.GreaterOrEqual(t, resp.Stops[i].DistanceKM, resp.Stops[i-1].DistanceKM)
		}
	})

	t.Run("eksik merkez", func(t *testing.T) {
		w := s.get(t, "/bus-stops/nearby?lat=39.92", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "lon query parameter is required", errorMessage(t, w))
	})

	t.Run("yarıçap denetimi", func(t *testing.T) {
		w := s.get(t, "/bus-stops/nearby?lat=39.92&lon=32.85&radius_km=9", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "radius_km must be between 0.1 and 5.0", errorMessage(t, w))
	})
}

// TestBusStopsBoundsAPI durak sınırları ucunu doğrular
func TestBusStopsBoundsAPI(t *testing.T) {
	log.Printf("🧪 Durak sınırları API testi başladı")
	s := setupAPIServer(t)

	w := s.get(t, "/bus-stops/bounds", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		TotalStops int `json:"total_stops"`
		Bounds     struct {
			MinLat float64 `json:"min_lat"`
			MaxLat float64 `json:"max_lat"`
		} `json:"bounds"`
		Center struct {
			Lat float64 `json:"lat"`
		} `json:"center"`
		DefaultBounds struct {
			MinLat float64 `json:"min_lat"`
		} `json:"default_bounds"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, 3, resp.TotalStops)
	assert.Equal(t, 39.919, resp.Bounds.MinLat)
	assert.Equal(t, 39.921, resp.Bounds.MaxLat)
	assert.InDelta(t, 39.92, resp.Center.Lat, 1e-9)
	assert.Equal(t, 39.90, resp.DefaultBounds.MinLat)
}
