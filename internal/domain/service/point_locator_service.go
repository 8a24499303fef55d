package service

import (
	"errors"

	"engelsiz-ankara-backend/internal/domain/helper"
	"engelsiz-ankara-backend/internal/domain/model"
	"engelsiz-ankara-backend/internal/domain/repository"

	"github.com/paulmach/orb"
)

// PointLocatorService koordinattan ızgara hücresi bulan servis
type PointLocatorService interface {
	Locate(lat, lon float64) (*model.GridCell, error)
	LocateNearest(lat, lon float64) (*model.GridCell, error)
}

type pointLocatorService struct {
	geoRepo repository.GeoDataRepository
}

func NewPointLocatorService(geoRepo repository.GeoDataRepository) PointLocatorService {
	return &pointLocatorService{geoRepo: geoRepo}
}

// Locate koordinatı kapsayan ilk hücreyi veri dosyası sırasıyla tarayarak bulur.
// Hücre sınırı üzerindeki noktalar hücreye ait sayılır. Kapsayan hücre yoksa
// ErrPointNotFound döner; bu kapsama alanı dışı için beklenen bir sonuçtur.
func (s *pointLocatorService) Locate(lat, lon float64) (*model.GridCell, error) {
	if err := model.ValidateCoordinate(lat, lon); err != nil {
		return nil, err
	}

	pt := orb.Point{lon, lat}
	cells := s.geoRepo.AllCells()
	for i := range cells {
		cell := &cells[i]
		// sınırlayıcı kutu tutmayan hücreler çokgen testine girmez
		if !cell.Bound.Contains(pt) {
			continue
		}
		if helper.PointInPolygon(pt, cell.Boundary) {
			return cell, nil
		}
	}
	return nil, model.ErrPointNotFound
}

// LocateNearest kapsayan hücre yoksa merkez noktası en yakın hücreyi döndürür.
// Yoğunluk analizi gibi yaklaşık eşlemenin yeterli olduğu yerler içindir.
func (s *pointLocatorService) LocateNearest(lat, lon float64) (*model.GridCell, error) {
	cell, err := s.Locate(lat, lon)
	if err == nil {
		return cell, nil
	}
	if !errors.Is(err, model.ErrPointNotFound) {
		return nil, err
	}

	cells := s.geoRepo.AllCells()
	if len(cells) == 0 {
		return nil, model.ErrPointNotFound
	}

	query := model.LatLng{Lat: lat, Lon: lon}
	best := &cells[0]
	bestDist := helper.HaversineDistanceM(query, model.LatLng{Lat: best.Centroid[1], Lon: best.Centroid[0]})
	for i := 1; i < len(cells); i++ {
		d := helper.HaversineDistanceM(query, model.LatLng{Lat: cells[i].Centroid[1], Lon: cells[i].Centroid[0]})
		if d < bestDist {
			best = &cells[i]
			bestDist = d
		}
	}
	return best, nil
}
