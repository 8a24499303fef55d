package model

import (
	"errors"
	"fmt"
	"math"
)

// Coğrafi sorgu hataları
var (
	ErrInvalidCoordinate = errors.New("geçersiz koordinat")
	ErrPointNotFound     = errors.New("koordinat için ızgara hücresi bulunamadı")
	ErrGridNotFound      = errors.New("ızgara hücresi bulunamadı")
	ErrNoStopData        = errors.New("durak verisi bulunamadı")
)

// Şikayet ve hesap hataları
var (
	ErrComplaintNotFound  = errors.New("şikayet bulunamadı")
	ErrInvalidStatus      = errors.New("geçersiz durum değeri")
	ErrUsernameTaken      = errors.New("kullanıcı adı zaten kullanılıyor")
	ErrInvalidCredentials = errors.New("kullanıcı adı veya şifre hatalı")
	ErrUserNotFound       = errors.New("kullanıcı bulunamadı")
	ErrInvalidStaffRole   = errors.New("geçersiz personel rolü")
)

// IncompleteDataError hücre bulunduğu halde eğim veya durak kaydının
// eksik olduğunu bildirir. Missing alanı hangi kaydın eksik olduğunu taşır.
type IncompleteDataError struct {
	GridID  int
	Missing string // "slope_score" veya "nearest_stops"
}

func (e *IncompleteDataError) Error() string {
	return fmt.Sprintf("grid %d için %s verisi eksik", e.GridID, e.Missing)
}

// DataLoadError açılışta bir veri dosyası okunamadığında veya
// doğrulanamadığında döner. Uygulama bu hatayla başlamayı reddeder.
type DataLoadError struct {
	Path string
	Err  error
}

func (e *DataLoadError) Error() string {
	return fmt.Sprintf("veri dosyası yüklenemedi (%s): %v", e.Path, e.Err)
}

func (e *DataLoadError) Unwrap() error {
	return e.Err
}

// ValidateCoordinate enlem/boylam değerlerinin geçerli aralıkta olduğunu
// doğrular. NaN değerler aralık kontrolünden geçemeyeceği için ayrıca reddedilir.
func ValidateCoordinate(lat, lon float64) error {
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return fmt.Errorf("%w: lat=%v, lon=%v", ErrInvalidCoordinate, lat, lon)
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return fmt.Errorf("%w: lat=%v, lon=%v", ErrInvalidCoordinate, lat, lon)
	}
	return nil
}
