package usecase

import (
	"engelsiz-ankara-backend/internal/domain/model"
	"engelsiz-ankara-backend/internal/domain/repository"
	"engelsiz-ankara-backend/internal/domain/service"
)

type AccessibilityUseCase interface {
	// NearestStops verilen koordinatı içeren hücrenin eğim ve durak bilgisini döndürür
	NearestStops(lat, lon float64) (*model.AccessibilityResult, error)

	// GridInfo numarası bilinen hücrenin erişilebilirlik bilgisini döndürür
	GridInfo(gridID int) (*model.AccessibilityResult, error)
}

// accessibilityUseCaseImpl AccessibilityUseCase'in implementasyonu
type accessibilityUseCaseImpl struct {
	locator  service.PointLocatorService
	resolver service.AccessibilityService
	geoRepo  repository.GeoDataRepository
}

// NewAccessibilityUseCase yeni AccessibilityUseCase örneği oluşturur
func NewAccessibilityUseCase(
	locator service.PointLocatorService,
	resolver service.AccessibilityService,
	geoRepo repository.GeoDataRepository,
) AccessibilityUseCase {
	return &accessibilityUseCaseImpl{
		locator:  locator,
		resolver: resolver,
		geoRepo:  geoRepo,
	}
}

func (u *accessibilityUseCaseImpl) NearestStops(lat, lon float64) (*model.AccessibilityResult, error) {
	cell, err := u.locator.Locate(lat, lon)
	if err != nil {
		return nil, err
	}
	return u.resolver.Resolve(cell.ID)
}

func (u *accessibilityUseCaseImpl) GridInfo(gridID int) (*model.AccessibilityResult, error) {
	if _, err := u.geoRepo.CellByID(gridID); err != nil {
		return nil, err
	}
	return u.resolver.Resolve(gridID)
}
