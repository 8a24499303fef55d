package model

// UrgencyCounts aciliyet seviyelerine göre şikayet sayıları
type UrgencyCounts struct {
	Red    int `json:"red"`
	Yellow int `json:"yellow"`
	Green  int `json:"green"`
}

// PeriodStats tek bir dönemin şikayet dağılımı
type PeriodStats struct {
	Count      int            `json:"count"`
	ByUrgency  UrgencyCounts  `json:"by_urgency"`
	ByCategory map[string]int `json:"by_category"`
}

// AnalyticsSummary pano özet kartlarının verisi.
// Günlük bugün 00:00'dan, haftalık pazartesiden, aylık ayın birinden itibarendir.
type AnalyticsSummary struct {
	TotalComplaints int         `json:"total_complaints"`
	Daily           PeriodStats `json:"daily"`
	Weekly          PeriodStats `json:"weekly"`
	Monthly         PeriodStats `json:"monthly"`
}

// TrendPoint zaman serisindeki tek bir gün
type TrendPoint struct {
	Date   string `json:"date"`
	Total  int    `json:"total"`
	Red    int    `json:"red"`
	Yellow int    `json:"yellow"`
	Green  int    `json:"green"`
}

// TrendResult günlük şikayet zaman serisi yanıtı
type TrendResult struct {
	PeriodDays int          `json:"period_days"`
	Trend      []TrendPoint `json:"trend"`
}

// Hotspot şikayet yoğunluğu yüksek ızgara hücresi
type Hotspot struct {
	GridID        int            `json:"grid_id"`
	Total         int            `json:"total"`
	Red           int            `json:"red"`
	Yellow        int            `json:"yellow"`
	Green         int            `json:"green"`
	TopCategories map[string]int `json:"top_categories"`
}

// HotspotsResult yoğunluk haritası yanıtı, en yoğun 20 hücre ile sınırlıdır
type HotspotsResult struct {
	TotalGridsWithComplaints int       `json:"total_grids_with_complaints"`
	Hotspots                 []Hotspot `json:"hotspots"`
}

// UrgentResult kırmızı aciliyetli şikayetler yanıtı, en yeniden eskiye sıralı
type UrgentResult struct {
	Count      int         `json:"count"`
	Complaints []Complaint `json:"complaints"`
}
