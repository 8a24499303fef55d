package repository

import (
	"engelsiz-ankara-backend/internal/domain/model"
)

type GeoDataRepository interface {
	CellByID(id int) (*model.GridCell, error)
	AllCells() []model.GridCell
	SlopeFor(gridID int) (float64, bool)
	StopsFor(gridID int) ([]model.StopRef, bool)
	AllBusStops() []model.BusStop
	BusStopByID(stopID int) (*model.BusStop, bool)
}
