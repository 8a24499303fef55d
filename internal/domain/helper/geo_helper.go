package helper

import (
	"math"
	"sort"

	"engelsiz-ankara-backend/internal/domain/model"

	"github.com/paulmach/orb"
)

const edgeEpsilon = 1e-12

// HaversineDistanceM iki koordinat arasındaki büyük daire mesafesini metre cinsinden hesaplar
func HaversineDistanceM(p1, p2 model.LatLng) float64 {
	lat1 := p1.Lat * math.Pi / 180
	lon1 := p1.Lon * math.Pi / 180
	lat2 := p2.Lat * math.Pi / 180
	lon2 := p2.Lon * math.Pi / 180
	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return model.EarthRadiusM * c
}

// HaversineDistanceKM iki koordinat arasındaki mesafeyi kilometre cinsinden hesaplar
func HaversineDistanceKM(p1, p2 model.LatLng) float64 {
	return HaversineDistanceM(p1, p2) / 1000.0
}

// PointInPolygon noktanın çokgen içinde olup olmadığını çift-tek ışın kuralıyla test eder.
// Sınır üzerindeki noktalar içeride sayılır; delik halkalarının içi dışarıda sayılır.
func PointInPolygon(pt orb.Point, poly orb.Polygon) bool {
	if len(poly) == 0 {
		return false
	}
	if !PointInRing(pt, poly[0]) {
		return false
	}
	for _, hole := range poly[1:] {
		if PointOnRingEdge(pt, hole) {
			return true
		}
		if PointInRing(pt, hole) {
			return false
		}
	}
	return true
}

// PointInRing noktanın kapalı halka içinde olup olmadığını test eder.
// Halka kenarı üzerindeki noktalar içeride kabul edilir.
func PointInRing(pt orb.Point, ring orb.Ring) bool {
	if len(ring) < 3 {
		return false
	}
	if PointOnRingEdge(pt, ring) {
		return true
	}
	inside := false
	j := len(ring) - 1
	for i := 0; i < len(ring); i++ {
		xi, yi := ring[i][0], ring[i][1]
		xj, yj := ring[j][0], ring[j][1]
		// kenar noktanın yatay ışınını kesiyor mu
		if (yi > pt[1]) != (yj > pt[1]) {
			crossX := (xj-xi)*(pt[1]-yi)/(yj-yi) + xi
			if pt[0] < crossX {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// PointOnRingEdge nokta halkanın herhangi bir kenarı üzerinde mi
func PointOnRingEdge(pt orb.Point, ring orb.Ring) bool {
	if len(ring) < 2 {
		return false
	}
	j := len(ring) - 1
	for i := 0; i < len(ring); i++ {
		if pointOnSegment(pt, ring[j], ring[i]) {
			return true
		}
		j = i
	}
	return false
}

// pointOnSegment nokta a-b doğru parçası üzerinde mi
func pointOnSegment(pt, a, b orb.Point) bool {
	cross := (b[0]-a[0])*(pt[1]-a[1]) - (b[1]-a[1])*(pt[0]-a[0])
	if math.Abs(cross) > edgeEpsilon {
		return false
	}
	if pt[0] < math.Min(a[0], b[0])-edgeEpsilon || pt[0] > math.Max(a[0], b[0])+edgeEpsilon {
		return false
	}
	if pt[1] < math.Min(a[1], b[1])-edgeEpsilon || pt[1] > math.Max(a[1], b[1])+edgeEpsilon {
		return false
	}
	return true
}

// SortStopsByDistance durakları mesafeye göre artan sıralar, eşitlikte stop_id belirler
func SortStopsByDistance(stops []model.StopRef) {
	sort.Slice(stops, func(i, j int) bool {
		if stops[i].DistanceM != stops[j].DistanceM {
			return stops[i].DistanceM < stops[j].DistanceM
		}
		return stops[i].StopID < stops[j].StopID
	})
}
