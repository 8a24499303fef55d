package service

import (
	"engelsiz-ankara-backend/internal/domain/model"
	"engelsiz-ankara-backend/internal/domain/repository"
)

// AccessibilityService bir ızgara hücresinin erişilebilirlik verisini birleştirir
type AccessibilityService interface {
	Resolve(gridID int) (*model.AccessibilityResult, error)
}

type accessibilityService struct {
	geoRepo repository.GeoDataRepository
}

func NewAccessibilityService(geoRepo repository.GeoDataRepository) AccessibilityService {
	return &accessibilityService{geoRepo: geoRepo}
}

// Resolve eğim puanı ile en yakın durak listesini tek sonuçta toplar.
// Kayıtlardan herhangi biri eksikse sonuç üretmek yerine IncompleteDataError
// döner; eksik veri sessizce varsayılan değere çevrilmez.
func (s *accessibilityService) Resolve(gridID int) (*model.AccessibilityResult, error) {
	slope, ok := s.geoRepo.SlopeFor(gridID)
	if !ok {
		return nil, &model.IncompleteDataError{GridID: gridID, Missing: "slope_score"}
	}

	stops, ok := s.geoRepo.StopsFor(gridID)
	if !ok || len(stops) == 0 {
		return nil, &model.IncompleteDataError{GridID: gridID, Missing: "nearest_stops"}
	}

	return &model.AccessibilityResult{
		GridID:       gridID,
		SlopeScore:   model.Round2(slope),
		NearestStops: stops,
	}, nil
}
