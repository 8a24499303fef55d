package service

import (
	"errors"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/stretchr/testify/assert"

	"engelsiz-ankara-backend/internal/domain/model"
)

// stubGeoRepo testlerde kullanılan bellek içi coğrafi veri deposu
type stubGeoRepo struct {
	cells    []model.GridCell
	slopes   map[int]float64
	stops    map[int][]model.StopRef
	busStops []model.BusStop
}

func (s *stubGeoRepo) CellByID(id int) (*model.GridCell, error) {
	for i := range s.cells {
		if s.cells[i].ID == id {
			return &s.cells[i], nil
		}
	}
	return nil, model.ErrGridNotFound
}

func (s *stubGeoRepo) AllCells() []model.GridCell { return s.cells }

func (s *stubGeoRepo) SlopeFor(gridID int) (float64, bool) {
	score, ok := s.slopes[gridID]
	return score, ok
}

func (s *stubGeoRepo) StopsFor(gridID int) ([]model.StopRef, bool) {
	stops, ok := s.stops[gridID]
	return stops, ok
}

func (s *stubGeoRepo) AllBusStops() []model.BusStop { return s.busStops }

func (s *stubGeoRepo) BusStopByID(stopID int) (*model.BusStop, bool) {
	for i := range s.busStops {
		if s.busStops[i].StopID == stopID {
			return &s.busStops[i], true
		}
	}
	return nil, false
}

// makeCell köşe koordinatlarından test hücresi üretir
func makeCell(id int, minLon, minLat, maxLon, maxLat float64) model.GridCell {
	polygon := orb.Polygon{orb.Ring{
		{minLon, minLat}, {maxLon, minLat}, {maxLon, maxLat}, {minLon, maxLat}, {minLon, minLat},
	}}
	centroid, _ := planar.CentroidArea(polygon)
	return model.GridCell{
		ID:       id,
		Boundary: polygon,
		Bound:    polygon.Bound(),
		Centroid: centroid,
	}
}

func newLocatorFixture() *stubGeoRepo {
	return &stubGeoRepo{
		cells: []model.GridCell{
			makeCell(242, 32.848, 39.918, 32.852, 39.922),
			makeCell(243, 32.852, 39.918, 32.856, 39.922),
		},
		slopes: map[int]float64{242: 87.5},
		stops:  map[int][]model.StopRef{},
	}
}

func TestLocateInsideCell(t *testing.T) {
	locator := NewPointLocatorService(newLocatorFixture())

	cell, err := locator.Locate(39.920, 32.850)
	assert.NoError(t, err)
	assert.Equal(t, 242, cell.ID)

	cell, err = locator.Locate(39.920, 32.854)
	assert.NoError(t, err)
	assert.Equal(t, 243, cell.ID)
}

func TestLocateBoundaryBelongsToFirstCell(t *testing.T) {
	locator := NewPointLocatorService(newLocatorFixture())

	// iki hücrenin ortak kenarındaki nokta dosya sırasına göre ilk hücreye düşer
	cell, err := locator.Locate(39.920, 32.852)
	assert.NoError(t, err)
	assert.Equal(t, 242, cell.ID)
}

func TestLocateOutsideCoverage(t *testing.T) {
	locator := NewPointLocatorService(newLocatorFixture())

	_, err := locator.Locate(41.0, 29.0)
	assert.ErrorIs(t, err, model.ErrPointNotFound)
}

func TestLocateInvalidCoordinate(t *testing.T) {
	locator := NewPointLocatorService(newLocatorFixture())

	_, err := locator.Locate(91.0, 32.85)
	assert.ErrorIs(t, err, model.ErrInvalidCoordinate)

	_, err = locator.Locate(39.92, -181.0)
	assert.ErrorIs(t, err, model.ErrInvalidCoordinate)
}

func TestLocateNearestFallsBackToCentroid(t *testing.T) {
	locator := NewPointLocatorService(newLocatorFixture())

	// kapsama alanı dışındaki nokta merkez noktası en yakın hücreye eşlenir
	cell, err := locator.LocateNearest(39.920, 32.860)
	assert.NoError(t, err)
	assert.Equal(t, 243, cell.ID)

	// kapsayan hücre varsa doğrudan o döner
	cell, err = locator.LocateNearest(39.920, 32.850)
	assert.NoError(t, err)
	assert.Equal(t, 242, cell.ID)
}

func TestLocateNearestEmptyRepo(t *testing.T) {
	locator := NewPointLocatorService(&stubGeoRepo{})

	_, err := locator.LocateNearest(39.92, 32.85)
	if !errors.Is(err, model.ErrPointNotFound) {
		t.Fatalf("boş depoda ErrPointNotFound bekleniyordu, %v geldi", err)
	}
}
