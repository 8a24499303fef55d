package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"engelsiz-ankara-backend/internal/domain/model"
)

func TestResolveCombinesSlopeAndStops(t *testing.T) {
	repo := newLocatorFixture()
	repo.slopes[242] = 87.456
	repo.stops[242] = []model.StopRef{
		{StopID: 1750, StopName: "DURAK ADI", Lat: 39.92, Lon: 32.85, DistanceM: 150.5, DurationMin: 1.79},
		{StopID: 1751, StopName: "İKİNCİ DURAK", Lat: 39.921, Lon: 32.851, DistanceM: 210, DurationMin: 2.5},
	}

	result, err := NewAccessibilityService(repo).Resolve(242)
	assert.NoError(t, err)
	assert.Equal(t, 242, result.GridID)
	assert.Equal(t, 87.46, result.SlopeScore) // iki ondalığa yuvarlanır
	assert.Len(t, result.NearestStops, 2)
	assert.Equal(t, 1750, result.NearestStops[0].StopID)
}

func TestResolveMissingSlope(t *testing.T) {
	repo := newLocatorFixture()
	repo.stops[243] = []model.StopRef{{StopID: 1, DistanceM: 10}}

	_, err := NewAccessibilityService(repo).Resolve(243)
	var incomplete *model.IncompleteDataError
	assert.ErrorAs(t, err, &incomplete)
	assert.Equal(t, "slope_score", incomplete.Missing)
	assert.Equal(t, 243, incomplete.GridID)
}

func TestResolveMissingStops(t *testing.T) {
	repo := newLocatorFixture() // 242'nin eğimi var ama durak listesi yok

	_, err := NewAccessibilityService(repo).Resolve(242)
	var incomplete *model.IncompleteDataError
	assert.ErrorAs(t, err, &incomplete)
	assert.Equal(t, "nearest_stops", incomplete.Missing)
}

func TestResolveEmptyStopListCountsAsMissing(t *testing.T) {
	repo := newLocatorFixture()
	repo.stops[242] = []model.StopRef{}

	_, err := NewAccessibilityService(repo).Resolve(242)
	var incomplete *model.IncompleteDataError
	assert.ErrorAs(t, err, &incomplete)
	assert.Equal(t, "nearest_stops", incomplete.Missing)
}
