package repository

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"engelsiz-ankara-backend/internal/domain/helper"
	"engelsiz-ankara-backend/internal/domain/model"
	"engelsiz-ankara-backend/internal/domain/repository"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
)

// Statik veri dosyası adları
const (
	GridAccessFile   = "grid_access_only.geojson"
	GridSlopeFile    = "grid_slope_score.json"
	NearestStopsFile = "grid_nearest_3stops.json"
	BusStopsFile     = "bus_stops_list.json"
)

// FileGeoDataRepository statik coğrafi veri dosyalarını açılışta bir kez okuyup
// bellekte tutar. Yükleme sonrası tüm alanlar salt okunurdur, bu yüzden
// eşzamanlı okumalar kilit gerektirmez.
type FileGeoDataRepository struct {
	cells     []model.GridCell // dosya sırası korunur, konum aramada tarama sırası budur
	cellIndex map[int]int      // grid_id -> cells dizini
	slopes    map[int]float64
	stops     map[int][]model.StopRef
	busStops  []model.BusStop
	stopIndex map[int]int // stop_id -> busStops dizini
}

// en yakın durak dosyasındaki ham satırlar
type nearestStopsRow struct {
	GridID       int              `json:"grid_id"`
	NearestStops []nearestStopRow `json:"nearest_stops"`
}

type nearestStopRow struct {
	StopID   int     `json:"stop_id"`
	Distance float64 `json:"distance"`
}

// NewFileGeoDataRepository dört veri dosyasını okur, durak listelerini durak
// detaylarıyla birleştirir ve salt okunur deposunu döndürür. Dosyalardan
// herhangi biri eksik veya bozuksa DataLoadError ile başarısız olur.
func NewFileGeoDataRepository(dataDir string) (repository.GeoDataRepository, error) {
	repo := &FileGeoDataRepository{
		cellIndex: make(map[int]int),
		slopes:    make(map[int]float64),
		stops:     make(map[int][]model.StopRef),
		stopIndex: make(map[int]int),
	}

	if err := repo.loadGridCells(filepath.Join(dataDir, GridAccessFile)); err != nil {
		return nil, err
	}
	if err := repo.loadSlopeScores(filepath.Join(dataDir, GridSlopeFile)); err != nil {
		return nil, err
	}
	if err := repo.loadBusStops(filepath.Join(dataDir, BusStopsFile)); err != nil {
		return nil, err
	}
	if err := repo.loadNearestStops(filepath.Join(dataDir, NearestStopsFile)); err != nil {
		return nil, err
	}

	log.Printf("💾 Coğrafi veri yüklendi: %d hücre, %d eğim kaydı, %d durak, %d durak listesi",
		len(repo.cells), len(repo.slopes), len(repo.busStops), len(repo.stops))

	return repo, nil
}

func (r *FileGeoDataRepository) loadGridCells(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return &model.DataLoadError{Path: path, Err: err}
	}

	fc, err := geojson.UnmarshalFeatureCollection(raw)
	if err != nil {
		return &model.DataLoadError{Path: path, Err: err}
	}

	for _, feature := range fc.Features {
		gridID, err := featureGridID(feature)
		if err != nil {
			return &model.DataLoadError{Path: path, Err: err}
		}

		polygon, err := featurePolygon(feature)
		if err != nil {
			return &model.DataLoadError{Path: path, Err: fmt.Errorf("grid %d: %w", gridID, err)}
		}

		if _, exists := r.cellIndex[gridID]; exists {
			return &model.DataLoadError{Path: path, Err: fmt.Errorf("grid_id %d birden fazla kez tanımlı", gridID)}
		}

		centroid, _ := planar.CentroidArea(polygon)
		r.cells = append(r.cells, model.GridCell{
			ID:       gridID,
			Boundary: polygon,
			Bound:    polygon.Bound(),
			Centroid: centroid,
		})
		r.cellIndex[gridID] = len(r.cells) - 1
	}

	if len(r.cells) == 0 {
		return &model.DataLoadError{Path: path, Err: fmt.Errorf("dosyada hiç ızgara hücresi yok")}
	}

	return nil
}

func (r *FileGeoDataRepository) loadSlopeScores(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return &model.DataLoadError{Path: path, Err: err}
	}

	var rows []model.SlopeRecord
	if err := json.Unmarshal(raw, &rows); err != nil {
		return &model.DataLoadError{Path: path, Err: err}
	}

	for _, row := range rows {
		if _, ok := r.cellIndex[row.GridID]; !ok {
			log.Printf("⚠️ Eğim kaydı tanımsız grid_id %d için, konum aramasından erişilemez", row.GridID)
		}
		r.slopes[row.GridID] = row.SlopeScore
	}

	return nil
}

func (r *FileGeoDataRepository) loadBusStops(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return &model.DataLoadError{Path: path, Err: err}
	}

	var stops []model.BusStop
	if err := json.Unmarshal(raw, &stops); err != nil {
		return &model.DataLoadError{Path: path, Err: err}
	}

	r.busStops = stops
	for i := range stops {
		r.stopIndex[stops[i].StopID] = i
	}

	return nil
}

func (r *FileGeoDataRepository) loadNearestStops(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return &model.DataLoadError{Path: path, Err: err}
	}

	var rows []nearestStopsRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return &model.DataLoadError{Path: path, Err: err}
	}

	for _, row := range rows {
		if _, ok := r.cellIndex[row.GridID]; !ok {
			log.Printf("⚠️ Durak kaydı tanımsız grid_id %d için, konum aramasından erişilemez", row.GridID)
		}

		if len(row.NearestStops) != 3 {
			return &model.DataLoadError{
				Path: path,
				Err:  fmt.Errorf("grid %d için %d durak kaydı var, 3 bekleniyor", row.GridID, len(row.NearestStops)),
			}
		}

		refs := make([]model.StopRef, 0, len(row.NearestStops))
		for _, item := range row.NearestStops {
			idx, ok := r.stopIndex[item.StopID]
			if !ok {
				return &model.DataLoadError{
					Path: path,
					Err:  fmt.Errorf("grid %d bilinmeyen stop_id %d içeriyor", row.GridID, item.StopID),
				}
			}

			stop := r.busStops[idx]
			refs = append(refs, model.StopRef{
				StopID:      item.StopID,
				StopName:    stop.StopName,
				Lat:         stop.Lat,
				Lon:         stop.Lon,
				DistanceM:   model.Round2(item.Distance),
				DurationMin: model.Round2(model.WalkingDurationMin(item.Distance)),
			})
		}

		helper.SortStopsByDistance(refs)
		r.stops[row.GridID] = refs
	}

	return nil
}

// featureGridID GeoJSON özelliklerinden grid_id değerini çıkarır.
// JSON sayıları float64 okunduğundan her iki tip de kabul edilir.
func featureGridID(f *geojson.Feature) (int, error) {
	v, ok := f.Properties["grid_id"]
	if !ok {
		return 0, fmt.Errorf("grid_id özelliği eksik")
	}
	switch id := v.(type) {
	case float64:
		return int(id), nil
	case int:
		return id, nil
	default:
		return 0, fmt.Errorf("grid_id özelliği sayı değil: %v", v)
	}
}

func featurePolygon(f *geojson.Feature) (orb.Polygon, error) {
	polygon, ok := f.Geometry.(orb.Polygon)
	if !ok {
		return nil, fmt.Errorf("geometri tipi çokgen değil: %T", f.Geometry)
	}
	if len(polygon) == 0 {
		return nil, fmt.Errorf("çokgenin dış halkası yok")
	}
	for _, ring := range polygon {
		if err := validateRing(ring); err != nil {
			return nil, err
		}
	}
	return polygon, nil
}

// validateRing halkanın en az 3 ayrık köşe içerdiğini doğrular.
// GeoJSON halkaları kapalı geldiğinden kapanış köşesi sayılmaz.
func validateRing(ring orb.Ring) error {
	n := len(ring)
	if n > 0 && ring[0] == ring[n-1] {
		n--
	}
	if n < 3 {
		return fmt.Errorf("çokgen halkası en az 3 köşe içermeli, %d köşe var", n)
	}
	return nil
}

func (r *FileGeoDataRepository) CellByID(id int) (*model.GridCell, error) {
	idx, ok := r.cellIndex[id]
	if !ok {
		return nil, model.ErrGridNotFound
	}
	return &r.cells[idx], nil
}

func (r *FileGeoDataRepository) AllCells() []model.GridCell {
	return r.cells
}

func (r *FileGeoDataRepository) SlopeFor(gridID int) (float64, bool) {
	score, ok := r.slopes[gridID]
	return score, ok
}

func (r *FileGeoDataRepository) StopsFor(gridID int) ([]model.StopRef, bool) {
	stops, ok := r.stops[gridID]
	return stops, ok
}

func (r *FileGeoDataRepository) AllBusStops() []model.BusStop {
	return r.busStops
}

func (r *FileGeoDataRepository) BusStopByID(stopID int) (*model.BusStop, bool) {
	idx, ok := r.stopIndex[stopID]
	if !ok {
		return nil, false
	}
	return &r.busStops[idx], true
}
