package usecase

import (
	"context"
	"sort"
	"time"

	"engelsiz-ankara-backend/internal/domain/model"
	"engelsiz-ankara-backend/internal/domain/repository"
	"engelsiz-ankara-backend/internal/domain/service"
)

type AnalyticsUseCase interface {
	// Summary günlük, haftalık ve aylık şikayet istatistiklerini döndürür
	Summary(ctx context.Context) (*model.AnalyticsSummary, error)

	// Trend son N gün için günlük şikayet sayılarını döndürür
	Trend(ctx context.Context, days int) (*model.TrendResult, error)

	// Hotspots şikayet yoğunluğu en yüksek bölgeleri döndürür
	Hotspots(ctx context.Context) (*model.HotspotsResult, error)

	// Urgent acil müdahale bekleyen şikayetleri yeniden eskiye sıralı döndürür
	Urgent(ctx context.Context) (*model.UrgentResult, error)
}

// analyticsUseCaseImpl AnalyticsUseCase'in implementasyonu
type analyticsUseCaseImpl struct {
	complaintRepo repository.ComplaintRepository
	locator       service.PointLocatorService
	now           func() time.Time
}

// NewAnalyticsUseCase yeni AnalyticsUseCase örneği oluşturur
func NewAnalyticsUseCase(complaintRepo repository.ComplaintRepository, locator service.PointLocatorService) AnalyticsUseCase {
	return &analyticsUseCaseImpl{
		complaintRepo: complaintRepo,
		locator:       locator,
		now:           time.Now,
	}
}

// parseCreatedAt kayıt zamanını çözer. Yeni kayıtlar RFC3339 yazılır,
// eski kayıtlar saat dilimi bilgisi olmadan tutulmuş olabilir.
func parseCreatedAt(value string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, true
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05.999999", value, time.Local); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func newPeriodStats() model.PeriodStats {
	return model.PeriodStats{ByCategory: make(map[string]int)}
}

func addToPeriod(stats *model.PeriodStats, c *model.Complaint) {
	stats.Count++
	switch c.Urgency {
	case model.UrgencyRed:
		stats.ByUrgency.Red++
	case model.UrgencyYellow:
		stats.ByUrgency.Yellow++
	case model.UrgencyGreen:
		stats.ByUrgency.Green++
	}
	stats.ByCategory[c.Category]++
}

func (u *analyticsUseCaseImpl) Summary(ctx context.Context) (*model.AnalyticsSummary, error) {
	complaints, err := u.complaintRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	now := u.now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	// hafta Pazartesi başlar
	weekday := (int(now.Weekday()) + 6) % 7
	weekStart := todayStart.AddDate(0, 0, -weekday)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	daily := newPeriodStats()
	weekly := newPeriodStats()
	monthly := newPeriodStats()

	for i := range complaints {
		created, ok := parseCreatedAt(complaints[i].CreatedAt)
		if !ok {
			continue
		}
		if !created.Before(todayStart) {
			addToPeriod(&daily, &complaints[i])
		}
		if !created.Before(weekStart) {
			addToPeriod(&weekly, &complaints[i])
		}
		if !created.Before(monthStart) {
			addToPeriod(&monthly, &complaints[i])
		}
	}

	return &model.AnalyticsSummary{
		TotalComplaints: len(complaints),
		Daily:           daily,
		Weekly:          weekly,
		Monthly:         monthly,
	}, nil
}

func (u *analyticsUseCaseImpl) Trend(ctx context.Context, days int) (*model.TrendResult, error) {
	complaints, err := u.complaintRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	now := u.now()
	startDate := now.AddDate(0, 0, -days)

	// şikayet olmayan günler de sıfır sayımla listelenir
	trend := make([]model.TrendPoint, days)
	index := make(map[string]int, days)
	for i := 0; i < days; i++ {
		date := startDate.AddDate(0, 0, i+1).Format("2006-01-02")
		trend[i] = model.TrendPoint{Date: date}
		index[date] = i
	}

	for i := range complaints {
		created, ok := parseCreatedAt(complaints[i].CreatedAt)
		if !ok || created.Before(startDate) {
			continue
		}
		pos, ok := index[created.Format("2006-01-02")]
		if !ok {
			continue
		}
		trend[pos].Total++
		switch complaints[i].Urgency {
		case model.UrgencyRed:
			trend[pos].Red++
		case model.UrgencyYellow:
			trend[pos].Yellow++
		case model.UrgencyGreen:
			trend[pos].Green++
		}
	}

	return &model.TrendResult{PeriodDays: days, Trend: trend}, nil
}

// hotspotCategories bir bölgedeki kategori sayımlarını ilk görülme sırasıyla tutar
type hotspotCategories struct {
	counts map[string]int
	order  []string
}

func (h *hotspotCategories) add(category string) {
	if _, ok := h.counts[category]; !ok {
		h.order = append(h.order, category)
	}
	h.counts[category]++
}

// top en sık görülen n kategoriyi döndürür, eşitlikte önce görülen kazanır
func (h *hotspotCategories) top(n int) map[string]int {
	sorted := make([]string, len(h.order))
	copy(sorted, h.order)
	sort.SliceStable(sorted, func(i, j int) bool {
		return h.counts[sorted[i]] > h.counts[sorted[j]]
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}

	top := make(map[string]int, len(sorted))
	for _, category := range sorted {
		top[category] = h.counts[category]
	}
	return top
}

func (u *analyticsUseCaseImpl) Hotspots(ctx context.Context) (*model.HotspotsResult, error) {
	complaints, err := u.complaintRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	hotspots := make([]model.Hotspot, 0)
	categories := make([]*hotspotCategories, 0)
	index := make(map[int]int)

	for i := range complaints {
		// hücre dışına düşen şikayet en yakın hücreye sayılır
		cell, err := u.locator.LocateNearest(complaints[i].Lat, complaints[i].Lon)
		if err != nil {
			// konumu çözülemeyen şikayet yoğunluk haritasına girmez
			continue
		}

		pos, ok := index[cell.ID]
		if !ok {
			pos = len(hotspots)
			index[cell.ID] = pos
			hotspots = append(hotspots, model.Hotspot{GridID: cell.ID})
			categories = append(categories, &hotspotCategories{counts: make(map[string]int)})
		}

		hotspots[pos].Total++
		switch complaints[i].Urgency {
		case model.UrgencyRed:
			hotspots[pos].Red++
		case model.UrgencyYellow:
			hotspots[pos].Yellow++
		case model.UrgencyGreen:
			hotspots[pos].Green++
		}
		categories[pos].add(complaints[i].Category)
	}

	for i := range hotspots {
		hotspots[i].TopCategories = categories[i].top(3)
	}

	// eşit sayıda şikayeti olan bölgelerde ilk görülen önde kalır
	sort.SliceStable(hotspots, func(i, j int) bool {
		return hotspots[i].Total > hotspots[j].Total
	})

	total := len(hotspots)
	if len(hotspots) > 20 {
		hotspots = hotspots[:20]
	}

	return &model.HotspotsResult{
		TotalGridsWithComplaints: total,
		Hotspots:                 hotspots,
	}, nil
}

func (u *analyticsUseCaseImpl) Urgent(ctx context.Context) (*model.UrgentResult, error) {
	complaints, err := u.complaintRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	urgent := make([]model.Complaint, 0)
	for _, c := range complaints {
		if c.Urgency == model.UrgencyRed {
			urgent = append(urgent, c)
		}
	}

	sort.SliceStable(urgent, func(i, j int) bool {
		return urgent[i].CreatedAt > urgent[j].CreatedAt
	})

	return &model.UrgentResult{
		Count:      len(urgent),
		Complaints: urgent,
	}, nil
}
