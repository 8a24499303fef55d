package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"

	"engelsiz-ankara-backend/internal/domain/model"
)

const testGridGeoJSON = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "properties": {"grid_id": 242}, "geometry": {"type": "Polygon", "coordinates": [[[32.848, 39.918], [32.852, 39.918], [32.852, 39.922], [32.848, 39.922], [32.848, 39.918]]]}},
    {"type": "Feature", "properties": {"grid_id": 243}, "geometry": {"type": "Polygon", "coordinates": [[[32.852, 39.918], [32.856, 39.918], [32.856, 39.922], [32.852, 39.922], [32.852, 39.918]]]}}
  ]
}`

const testSlopeJSON = `[
  {"grid_id": 242, "slope_score": 87.456},
  {"grid_id": 243, "slope_score": 12.0}
]`

const testBusStopsJSON = `[
  {"stop_id": 1750, "stop_name": "DURAK ADI", "lat": 39.92, "lon": 32.85},
  {"stop_id": 1751, "stop_name": "İKİNCİ DURAK", "lat": 39.921, "lon": 32.851},
  {"stop_id": 1752, "stop_name": "ÜÇÜNCÜ DURAK", "lat": 39.919, "lon": 32.849}
]`

// 242 için duraklar kasıtlı olarak karışık sırada, yükleyici sıralamalı
const testNearestStopsJSON = `[
  {"grid_id": 242, "nearest_stops": [
    {"stop_id": 1751, "distance": 210.456},
    {"stop_id": 1750, "distance": 150.5},
    {"stop_id": 1752, "distance": 300.2}
  ]}
]`

// writeGeoFixtures test veri dosyalarını geçici dizine yazar
func writeGeoFixtures(t *testing.T, overrides map[string]string) string {
	t.Helper()

	files := map[string]string{
		GridAccessFile:   testGridGeoJSON,
		GridSlopeFile:    testSlopeJSON,
		BusStopsFile:     testBusStopsJSON,
		NearestStopsFile: testNearestStopsJSON,
	}
	for name, content := range overrides {
		files[name] = content
	}

	dir := t.TempDir()
	for name, content := range files {
		if content == "" {
			continue // boş içerik dosyanın hiç yazılmaması demektir
		}
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("test dosyası yazılamadı: %v", err)
		}
	}
	return dir
}

func TestFileGeoDataRepositoryLoad(t *testing.T) {
	repo, err := NewFileGeoDataRepository(writeGeoFixtures(t, nil))
	assert.NoError(t, err)

	assert.Len(t, repo.AllCells(), 2)
	assert.Len(t, repo.AllBusStops(), 3)

	cell, err := repo.CellByID(242)
	assert.NoError(t, err)
	assert.Equal(t, 242, cell.ID)
	assert.True(t, cell.Bound.Contains(orb.Point{32.85, 39.92}))

	_, err = repo.CellByID(999)
	assert.ErrorIs(t, err, model.ErrGridNotFound)
}

func TestFileGeoDataRepositorySlopes(t *testing.T) {
	repo, err := NewFileGeoDataRepository(writeGeoFixtures(t, nil))
	assert.NoError(t, err)

	slope, ok := repo.SlopeFor(242)
	assert.True(t, ok)
	assert.Equal(t, 87.456, slope) // ham değer saklanır, yuvarlama yanıt katmanındadır

	_, ok = repo.SlopeFor(999)
	assert.False(t, ok)
}

func TestFileGeoDataRepositoryNearestStops(t *testing.T) {
	repo, err := NewFileGeoDataRepository(writeGeoFixtures(t, nil))
	assert.NoError(t, err)

	stops, ok := repo.StopsFor(242)
	assert.True(t, ok)
	assert.Len(t, stops, 3)

	// mesafeye göre artan sıralanır ve durak adlarıyla birleştirilir
	assert.Equal(t, 1750, stops[0].StopID)
	assert.Equal(t, "DURAK ADI", stops[0].StopName)
	assert.Equal(t, 150.5, stops[0].DistanceM)
	assert.Equal(t, 1.79, stops[0].DurationMin)

	assert.Equal(t, 1751, stops[1].StopID)
	assert.Equal(t, 210.46, stops[1].DistanceM)
	assert.Equal(t, 2.51, stops[1].DurationMin)

	assert.Equal(t, 1752, stops[2].StopID)

	// 243 geojson'da var ama durak listesi dosyasında yok
	_, ok = repo.StopsFor(243)
	assert.False(t, ok)
}

func TestFileGeoDataRepositoryBusStopByID(t *testing.T) {
	repo, err := NewFileGeoDataRepository(writeGeoFixtures(t, nil))
	assert.NoError(t, err)

	stop, ok := repo.BusStopByID(1751)
	assert.True(t, ok)
	assert.Equal(t, "İKİNCİ DURAK", stop.StopName)

	_, ok = repo.BusStopByID(42)
	assert.False(t, ok)
}

func TestFileGeoDataRepositoryMissingFile(t *testing.T) {
	_, err := NewFileGeoDataRepository(writeGeoFixtures(t, map[string]string{BusStopsFile: ""}))

	var loadErr *model.DataLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestFileGeoDataRepositoryWrongStopCount(t *testing.T) {
	short := `[{"grid_id": 242, "nearest_stops": [{"stop_id": 1750, "distance": 150.5}, {"stop_id": 1751, "distance": 210.0}]}]`
	_, err := NewFileGeoDataRepository(writeGeoFixtures(t, map[string]string{NearestStopsFile: short}))

	var loadErr *model.DataLoadError
	assert.ErrorAs(t, err, &loadErr)
	assert.Contains(t, err.Error(), "3 bekleniyor")
}

func TestFileGeoDataRepositoryUnknownStopID(t *testing.T) {
	unknown := `[{"grid_id": 242, "nearest_stops": [{"stop_id": 9999, "distance": 150.5}, {"stop_id": 1751, "distance": 210.0}, {"stop_id": 1752, "distance": 300.2}]}]`
	_, err := NewFileGeoDataRepository(writeGeoFixtures(t, map[string]string{NearestStopsFile: unknown}))

	var loadErr *model.DataLoadError
	assert.ErrorAs(t, err, &loadErr)
	assert.Contains(t, err.Error(), "9999")
}

func TestFileGeoDataRepositoryDuplicateGridID(t *testing.T) {
	duplicate := `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "properties": {"grid_id": 242}, "geometry": {"type": "Polygon", "coordinates": [[[32.848, 39.918], [32.852, 39.918], [32.852, 39.922], [32.848, 39.922], [32.848, 39.918]]]}},
    {"type": "Feature", "properties": {"grid_id": 242}, "geometry": {"type": "Polygon", "coordinates": [[[32.852, 39.918], [32.856, 39.918], [32.856, 39.922], [32.852, 39.922], [32.852, 39.918]]]}}
  ]
}`
	_, err := NewFileGeoDataRepository(writeGeoFixtures(t, map[string]string{GridAccessFile: duplicate}))

	var loadErr *model.DataLoadError
	assert.ErrorAs(t, err, &loadErr)
	assert.Contains(t, err.Error(), "birden fazla")
}
