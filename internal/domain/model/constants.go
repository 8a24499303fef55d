package model

import (
	"math"
	"strings"
)

// Aciliyet seviyeleri
const (
	UrgencyRed    = "red"    // acil, hemen müdahale gerekir
	UrgencyYellow = "yellow" // orta öncelik
	UrgencyGreen  = "green"  // düşük öncelik
)

// Şikayet durumları
const (
	StatusBeklemede   = "beklemede"
	StatusInceleniyor = "inceleniyor"
	StatusCozuldu     = "cozuldu"
	StatusReddedildi  = "reddedildi"
)

// Personel rolleri
const (
	StaffRoleYonetici  = "yonetici"
	StaffRoleOperasyon = "operasyon"
	StaffRoleAnaliz    = "analiz"
)

// Hesap rolleri
const (
	RoleUser  = "user"
	RoleStaff = "staff"
)

// Coğrafi hesap sabitleri
const (
	EarthRadiusM   = 6371000.0 // dünya yarıçapı (metre)
	WalkingSpeedMS = 1.4       // ortalama yürüme hızı (m/s)
)

// CategoryUrgencyMap kategori adından aciliyet seviyesine eşleme.
// Hem alt çizgili hem aksanlı yazımlar kabul edilir.
var CategoryUrgencyMap = map[string]string{
	"boru_patlamasi": UrgencyRed,
	"boru patlaması": UrgencyRed,
	"su_baskini":     UrgencyRed,
	"su baskını":     UrgencyRed,
	"yangin":         UrgencyRed,
	"yangın":         UrgencyRed,
	"merdiven_kirik": UrgencyYellow,
	"merdiven kırık": UrgencyYellow,
	"kaldirim_bozuk": UrgencyYellow,
	"kaldırım bozuk": UrgencyYellow,
	"rampa_eksik":    UrgencyYellow,
	"rampa eksik":    UrgencyYellow,
	"isik_yanmiyor":  UrgencyGreen,
	"ışık yanmıyor":  UrgencyGreen,
	"cop_toplama":    UrgencyGreen,
	"çöp toplama":    UrgencyGreen,
	"diger":          UrgencyGreen,
	"diğer":          UrgencyGreen,
}

// GetUrgency kategori adından aciliyet seviyesini döndürür.
// Bilinmeyen kategoriler yeşil sayılır.
func GetUrgency(category string) string {
	key := strings.ToLower(strings.TrimSpace(category))
	if urgency, ok := CategoryUrgencyMap[key]; ok {
		return urgency
	}
	return UrgencyGreen
}

// UrgencyMessageMap şikayet oluşturma yanıtına eklenen aciliyet mesajları
var UrgencyMessageMap = map[string]string{
	UrgencyRed:    "Acil durum olarak kaydedildi. En kısa sürede müdahale edilecektir.",
	UrgencyYellow: "Orta öncelikli olarak kaydedildi. En kısa sürede değerlendirilecektir.",
	UrgencyGreen:  "Normal öncelikli olarak kaydedildi. Sırasıyla değerlendirilecektir.",
}

// AutoFeedbackMap durum değişiminde otomatik atanan geri bildirim metinleri
var AutoFeedbackMap = map[string]string{
	StatusBeklemede:   "Şikayetiniz alınmıştır. En kısa sürede değerlendirilecektir.",
	StatusInceleniyor: "Şikayetiniz incelemeye alınmıştır. Ekiplerimiz konuyla ilgilenmektedir.",
	StatusCozuldu:     "Şikayetiniz çözümlenmiştir. İlginiz için teşekkür ederiz.",
	StatusReddedildi:  "Şikayetiniz değerlendirilmiş ancak işlem yapılamamıştır. Detaylı bilgi için belediye ile iletişime geçebilirsiniz.",
}

// AutoFeedbackFor durum için otomatik geri bildirim metnini döndürür
func AutoFeedbackFor(status string) string {
	if msg, ok := AutoFeedbackMap[status]; ok {
		return msg
	}
	return "Şikayetiniz güncellendi."
}

// IsValidStatus durum değerinin tanımlı olup olmadığını kontrol eder
func IsValidStatus(status string) bool {
	switch status {
	case StatusBeklemede, StatusInceleniyor, StatusCozuldu, StatusReddedildi:
		return true
	}
	return false
}

// GetAllStatuses tanımlı durum değerlerini sırayla döndürür
func GetAllStatuses() []string {
	return []string{StatusBeklemede, StatusInceleniyor, StatusCozuldu, StatusReddedildi}
}

// Category şikayet kategorisi ve görünen adı
type Category struct {
	Name    string `json:"name"`
	Label   string `json:"label"`
	Urgency string `json:"urgency"`
}

// GetAllCategories seçilebilir şikayet kategorilerini döndürür
func GetAllCategories() []Category {
	return []Category{
		{Name: "boru_patlamasi", Label: "Boru Patlaması", Urgency: UrgencyRed},
		{Name: "su_baskini", Label: "Su Baskını", Urgency: UrgencyRed},
		{Name: "yangin", Label: "Yangın", Urgency: UrgencyRed},
		{Name: "merdiven_kirik", Label: "Merdiven Kırık", Urgency: UrgencyYellow},
		{Name: "kaldirim_bozuk", Label: "Kaldırım Bozuk", Urgency: UrgencyYellow},
		{Name: "rampa_eksik", Label: "Rampa Eksik", Urgency: UrgencyYellow},
		{Name: "isik_yanmiyor", Label: "Işık Yanmıyor", Urgency: UrgencyGreen},
		{Name: "cop_toplama", Label: "Çöp Toplama", Urgency: UrgencyGreen},
		{Name: "diger", Label: "Diğer", Urgency: UrgencyGreen},
	}
}

// StatusOption pano açılır listesi için durum seçeneği
type StatusOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// GetAllStatusOptions pano için durum seçeneklerini döndürür
func GetAllStatusOptions() []StatusOption {
	return []StatusOption{
		{Value: StatusBeklemede, Label: "Beklemede", Color: "gray"},
		{Value: StatusInceleniyor, Label: "İnceleniyor", Color: "blue"},
		{Value: StatusCozuldu, Label: "Çözüldü", Color: "green"},
		{Value: StatusReddedildi, Label: "Reddedildi", Color: "red"},
	}
}

// StaffRoleOption personel rolü tanımı
type StaffRoleOption struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// GetAllStaffRoles tanımlı personel rollerini döndürür
func GetAllStaffRoles() []StaffRoleOption {
	return []StaffRoleOption{
		{Value: StaffRoleYonetici, Label: "Yönetici", Description: "Tam yetki - personel ekleme dahil"},
		{Value: StaffRoleOperasyon, Label: "Operasyon Ekibi", Description: "Şikayet yönetimi ve takibi"},
		{Value: StaffRoleAnaliz, Label: "Analiz Ekibi", Description: "Raporlama ve analiz görüntüleme"},
	}
}

// IsValidStaffRole personel rolünün tanımlı olup olmadığını kontrol eder
func IsValidStaffRole(role string) bool {
	switch role {
	case StaffRoleYonetici, StaffRoleOperasyon, StaffRoleAnaliz:
		return true
	}
	return false
}

// DefaultBounds bölge parametresi verilmeyen durak sorgularında
// kullanılan Ankara merkez sınırları
var DefaultBounds = Bounds{
	MinLat: 39.90,
	MaxLat: 39.95,
	MinLon: 32.82,
	MaxLon: 32.90,
}

// WalkingDurationMin metre cinsinden mesafeyi yürüme dakikasına çevirir
func WalkingDurationMin(distanceM float64) float64 {
	return distanceM / WalkingSpeedMS / 60.0
}

// RoundTo değeri verilen ondalık basamağa yuvarlar
func RoundTo(value float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return math.Round(value*factor) / factor
}

// Round2 değeri iki ondalık basamağa yuvarlar
func Round2(value float64) float64 {
	return RoundTo(value, 2)
}
