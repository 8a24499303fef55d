package usecase

import (
	"sort"

	"engelsiz-ankara-backend/internal/domain/helper"
	"engelsiz-ankara-backend/internal/domain/model"
	"engelsiz-ankara-backend/internal/domain/repository"
)

type StopsUseCase interface {
	// ListStops verilen bölge içindeki durakları listeler
	ListStops(bounds model.Bounds, limit int) *model.BusStopsResult

	// NearbyStops merkez noktanın çevresindeki durakları mesafeye göre sıralı döndürür
	NearbyStops(lat, lon, radiusKM float64, limit int) *model.NearbyStopsResult

	// StopsBounds tüm durakların kapsadığı alanın sınırlarını döndürür
	StopsBounds() (*model.StopsBoundsResult, error)
}

// stopsUseCaseImpl StopsUseCase'in implementasyonu
type stopsUseCaseImpl struct {
	geoRepo repository.GeoDataRepository
}

// NewStopsUseCase yeni StopsUseCase örneği oluşturur
func NewStopsUseCase(geoRepo repository.GeoDataRepository) StopsUseCase {
	return &stopsUseCaseImpl{geoRepo: geoRepo}
}

func (u *stopsUseCaseImpl) ListStops(bounds model.Bounds, limit int) *model.BusStopsResult {
	stops := make([]model.BusStop, 0)
	for _, s := range u.geoRepo.AllBusStops() {
		if bounds.MinLat <= s.Lat && s.Lat <= bounds.MaxLat &&
			bounds.MinLon <= s.Lon && s.Lon <= bounds.MaxLon {
			stops = append(stops, s)
		}
	}
	if len(stops) > limit {
		stops = stops[:limit]
	}

	return &model.BusStopsResult{
		Total:  len(stops),
		Bounds: bounds,
		Stops:  stops,
	}
}

func (u *stopsUseCaseImpl) NearbyStops(lat, lon, radiusKM float64, limit int) *model.NearbyStopsResult {
	nearby := make([]model.NearbyStop, 0)
	for _, s := range u.geoRepo.AllBusStops() {
		distance := helper.HaversineDistanceKM(model.LatLng{Lat: lat, Lon: lon}, model.LatLng{Lat: s.Lat, Lon: s.Lon})
		if distance <= radiusKM {
			nearby = append(nearby, model.NearbyStop{
				BusStop:    s,
				DistanceKM: model.RoundTo(distance, 3),
				DistanceM:  model.RoundTo(distance*1000, 1),
			})
		}
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].DistanceKM < nearby[j].DistanceKM
	})
	if len(nearby) > limit {
		nearby = nearby[:limit]
	}

	return &model.NearbyStopsResult{
		Center:   model.LatLng{Lat: lat, Lon: lon},
		RadiusKM: radiusKM,
		Total:    len(nearby),
		Stops:    nearby,
	}
}

func (u *stopsUseCaseImpl) StopsBounds() (*model.StopsBoundsResult, error) {
	stops := u.geoRepo.AllBusStops()
	if len(stops) == 0 {
		return nil, model.ErrNoStopData
	}

	bounds := model.Bounds{
		MinLat: stops[0].Lat,
		MaxLat: stops[0].Lat,
		MinLon: stops[0].Lon,
		MaxLon: stops[0].Lon,
	}
	for _, s := range stops[1:] {
		if s.Lat < bounds.MinLat {
			bounds.MinLat = s.Lat
		}
		if s.Lat > bounds.MaxLat {
			bounds.MaxLat = s.Lat
		}
		if s.Lon < bounds.MinLon {
			bounds.MinLon = s.Lon
		}
		if s.Lon > bounds.MaxLon {
			bounds.MaxLon = s.Lon
		}
	}

	return &model.StopsBoundsResult{
		TotalStops: len(stops),
		Bounds:     bounds,
		Center: model.LatLng{
			Lat: (bounds.MinLat + bounds.MaxLat) / 2,
			Lon: (bounds.MinLon + bounds.MaxLon) / 2,
		},
		DefaultBounds: model.DefaultBounds,
	}, nil
}
