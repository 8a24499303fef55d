package model

import "github.com/paulmach/orb"

// LatLng enlem/boylam çiftini temsil eden temel tip
type LatLng struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// GridCell şehir alanını bölen ızgara hücrelerinden biri.
// Sınır çokgeni, sınırlayıcı kutu ve merkez noktası açılışta hesaplanır,
// yükleme sonrası değişmez.
type GridCell struct {
	ID       int         `json:"grid_id"` // ızgara hücre kimliği (benzersiz)
	Boundary orb.Polygon `json:"-"`       // kapalı hücre sınırı, köşeler (lon, lat) sırasında
	Bound    orb.Bound   `json:"-"`       // hızlı eleme için sınırlayıcı kutu
	Centroid orb.Point   `json:"-"`       // alan ağırlıklı merkez (yaklaşık eşleme için)
}

// SlopeRecord bir ızgara hücresinin önceden hesaplanmış eğim zorluk puanı
type SlopeRecord struct {
	GridID     int     `json:"grid_id"`
	SlopeScore float64 `json:"slope_score"` // 0-100 aralığı, yüksek değer daha dik demektir
}

// StopRef en yakın durak listesindeki tek bir durak girdisi
type StopRef struct {
	StopID      int     `json:"stop_id"`
	StopName    string  `json:"stop_name"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	DistanceM   float64 `json:"distance_m"`
	DurationMin float64 `json:"duration_min"` // sabit yürüme hızından türetilen dakika
}

// NearestStopsRecord bir ızgara hücresi için önceden hesaplanmış en yakın 3 durak.
// Liste distance_m değerine göre artan sıralıdır, eşitlikte stop_id belirleyicidir.
type NearestStopsRecord struct {
	GridID int       `json:"grid_id"`
	Stops  []StopRef `json:"nearest_stops"`
}

// AccessibilityResult koordinat veya hücre sorgusunun birleştirilmiş sonucu
type AccessibilityResult struct {
	GridID       int       `json:"grid_id"`
	SlopeScore   float64   `json:"slope_score"`
	NearestStops []StopRef `json:"nearest_stops"`
}
