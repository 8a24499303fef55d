package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// PhotoStore şikayet fotoğraflarını yerel diskte tutar.
// Dosya adları şikayet numarasıyla öneklenir, bu yüzden çakışma olmaz.
type PhotoStore struct {
	dir string
}

// NewPhotoStore fotoğraf dizinini oluşturur ve depoyu hazırlar
func NewPhotoStore(dir string) (*PhotoStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("fotoğraf dizini oluşturulamadı: %w", err)
	}
	return &PhotoStore{dir: dir}, nil
}

// Save fotoğraf içeriğini verilen adla diske yazar
func (s *PhotoStore) Save(filename string, data []byte) error {
	// dizin dışına çıkan adlar kabul edilmez
	if filepath.Base(filename) != filename {
		return fmt.Errorf("geçersiz fotoğraf adı: %s", filename)
	}
	if err := os.WriteFile(filepath.Join(s.dir, filename), data, 0o644); err != nil {
		return fmt.Errorf("fotoğraf kaydedilemedi: %w", err)
	}
	return nil
}

// Path fotoğrafın diskteki tam yolunu döndürür
func (s *PhotoStore) Path(filename string) string {
	return filepath.Join(s.dir, filepath.Base(filename))
}

// Exists fotoğraf diskte var mı
func (s *PhotoStore) Exists(filename string) bool {
	info, err := os.Stat(s.Path(filename))
	return err == nil && !info.IsDir()
}

// Dir fotoğraf dizininin yolunu döndürür
func (s *PhotoStore) Dir() string {
	return s.dir
}
