package model

// BusStop EGO otobüs durağı kaydı
type BusStop struct {
	StopID   int     `json:"stop_id"`
	StopName string  `json:"stop_name"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
}

// NearbyStop yarıçap sorgusunda dönen durak ve uzaklık bilgisi
type NearbyStop struct {
	BusStop
	DistanceKM float64 `json:"distance_km"`
	DistanceM  float64 `json:"distance_m"`
}

// Bounds bir durak kümesinin kapsadığı coğrafi alan
type Bounds struct {
	MinLat float64 `json:"min_lat"`
	MaxLat float64 `json:"max_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLon float64 `json:"max_lon"`
}

// BusStopsResult durak listesi yanıtı
type BusStopsResult struct {
	Total  int       `json:"total"`
	Bounds Bounds    `json:"bounds"`
	Stops  []BusStop `json:"stops"`
}

// NearbyStopsResult yarıçap içindeki duraklar yanıtı
type NearbyStopsResult struct {
	Center   LatLng       `json:"center"`
	RadiusKM float64      `json:"radius_km"`
	Total    int          `json:"total"`
	Stops    []NearbyStop `json:"stops"`
}

// StopsBoundsResult durak verisinin sınırları ve harita merkezi
type StopsBoundsResult struct {
	TotalStops    int    `json:"total_stops"`
	Bounds        Bounds `json:"bounds"`
	Center        LatLng `json:"center"`
	DefaultBounds Bounds `json:"default_bounds"`
}
