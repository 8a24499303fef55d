package usecase

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/stretchr/testify/assert"

	"engelsiz-ankara-backend/internal/domain/model"
)

// fakeGeoRepo usecase testleri için bellek içi coğrafi veri deposu
type fakeGeoRepo struct {
	cells    []model.GridCell
	slopes   map[int]float64
	stops    map[int][]model.StopRef
	busStops []model.BusStop
}

func (f *fakeGeoRepo) CellByID(id int) (*model.GridCell, error) {
	for i := range f.cells {
		if f.cells[i].ID == id {
			return &f.cells[i], nil
		}
	}
	return nil, model.ErrGridNotFound
}

func (f *fakeGeoRepo) AllCells() []model.GridCell { return f.cells }

func (f *fakeGeoRepo) SlopeFor(gridID int) (float64, bool) {
	score, ok := f.slopes[gridID]
	return score, ok
}

func (f *fakeGeoRepo) StopsFor(gridID int) ([]model.StopRef, bool) {
	stops, ok := f.stops[gridID]
	return stops, ok
}

func (f *fakeGeoRepo) AllBusStops() []model.BusStop { return f.busStops }

func (f *fakeGeoRepo) BusStopByID(stopID int) (*model.BusStop, bool) {
	for i := range f.busStops {
		if f.busStops[i].StopID == stopID {
			return &f.busStops[i], true
		}
	}
	return nil, false
}

func testCell(id int, minLon, minLat, maxLon, maxLat float64) model.GridCell {
	polygon := orb.Polygon{orb.Ring{
		{minLon, minLat}, {maxLon, minLat}, {maxLon, maxLat}, {minLon, maxLat}, {minLon, minLat},
	}}
	centroid, _ := planar.CentroidArea(polygon)
	return model.GridCell{ID: id, Boundary: polygon, Bound: polygon.Bound(), Centroid: centroid}
}

func newStopsFixture() *fakeGeoRepo {
	return &fakeGeoRepo{
		busStops: []model.BusStop{
			{StopID: 1, StopName: "KIZILAY", Lat: 39.9208, Lon: 32.8541},
			{StopID: 2, StopName: "ULUS", Lat: 39.9439, Lon: 32.8560},
			{StopID: 3, StopName: "SINCAN", Lat: 39.9672, Lon: 32.5800}, // varsayılan sınırların dışında
		},
	}
}

func TestListStopsFiltersByBounds(t *testing.T) {
	uc := NewStopsUseCase(newStopsFixture())

	result := uc.ListStops(model.DefaultBounds, 100)
	assert.Equal(t, 2, result.Total)
	assert.Len(t, result.Stops, 2)
	assert.Equal(t, model.DefaultBounds, result.Bounds)
	for _, s := range result.Stops {
		assert.NotEqual(t, 3, s.StopID)
	}
}

func TestListStopsAppliesLimit(t *testing.T) {
	uc := NewStopsUseCase(newStopsFixture())

	result := uc.ListStops(model.DefaultBounds, 1)
	// toplam kesilmiş listeyi sayar
	assert.Equal(t, 1, result.Total)
	assert.Len(t, result.Stops, 1)
}

func TestListStopsEmptyBounds(t *testing.T) {
	uc := NewStopsUseCase(newStopsFixture())

	result := uc.ListStops(model.Bounds{MinLat: 10, MaxLat: 11, MinLon: 10, MaxLon: 11}, 100)
	assert.Equal(t, 0, result.Total)
	assert.NotNil(t, result.Stops) // boş liste null değil [] kodlanır
}

func TestNearbyStopsSortsByDistance(t *testing.T) {
	uc := NewStopsUseCase(newStopsFixture())

	// Kızılay'a çok yakın bir merkez: 1 numaralı durak en önde olmalı
	result := uc.NearbyStops(39.9210, 32.8545, 5.0, 20)
	assert.Equal(t, model.LatLng{Lat: 39.9210, Lon: 32.8545}, result.Center)
	assert.Equal(t, 5.0, result.RadiusKM)
	assert.GreaterOrEqual(t, result.Total, 2)
	assert.Equal(t, 1, result.Stops[0].StopID)
	assert.Equal(t, 2, result.Stops[1].StopID)
	assert.LessOrEqual(t, result.Stops[0].DistanceKM, result.Stops[1].DistanceKM)
}

func TestNearbyStopsRespectsRadius(t *testing.T) {
	uc := NewStopsUseCase(newStopsFixture())

	// 1 km yarıçap Ulus ve Sincan'ı dışarıda bırakır
	result := uc.NearbyStops(39.9210, 32.8545, 1.0, 20)
	assert.Equal(t, 1, result.Total)
	assert.Equal(t, 1, result.Stops[0].StopID)
}

func TestNearbyStopsAppliesLimit(t *testing.T) {
	uc := NewStopsUseCase(newStopsFixture())

	result := uc.NearbyStops(39.9210, 32.8545, 50.0, 2)
	assert.Equal(t, 2, result.Total)
	assert.Len(t, result.Stops, 2)
}

func TestStopsBounds(t *testing.T) {
	uc := NewStopsUseCase(newStopsFixture())

	result, err := uc.StopsBounds()
	assert.NoError(t, err)
	assert.Equal(t, 3, result.TotalStops)
	assert.Equal(t, 39.9208, result.Bounds.MinLat)
	assert.Equal(t, 39.9672, result.Bounds.MaxLat)
	assert.Equal(t, 32.58, result.Bounds.MinLon)
	assert.Equal(t, 32.856, result.Bounds.MaxLon)
	assert.InDelta(t, (39.9208+39.9672)/2, result.Center.Lat, 1e-9)
	assert.InDelta(t, (32.58+32.856)/2, result.Center.Lon, 1e-9)
	assert.Equal(t, model.DefaultBounds, result.DefaultBounds)
}

func TestStopsBoundsNoData(t *testing.T) {
	uc := NewStopsUseCase(&fakeGeoRepo{})

	_, err := uc.StopsBounds()
	assert.ErrorIs(t, err, model.ErrNoStopData)
}
