package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"engelsiz-ankara-backend/internal/auth"
	"engelsiz-ankara-backend/internal/domain/model"
	"engelsiz-ankara-backend/internal/domain/repository"
)

// FileStaffRepository belediye personeli hesaplarını JSON dosyasında saklar
type FileStaffRepository struct {
	path string
	mu   sync.Mutex
}

// NewFileStaffRepository depoyu hazırlar, dosya yoksa varsayılan yönetici hesabını yazar
func NewFileStaffRepository(path string) (repository.StaffRepository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("personel dizini oluşturulamadı: %w", err)
	}
	repo := &FileStaffRepository{path: path}
	if err := repo.ensureDefaults(); err != nil {
		return nil, err
	}
	return repo, nil
}

// ensureDefaults dosya henüz yoksa varsayılan belediye yöneticisini oluşturur
func (r *FileStaffRepository) ensureDefaults() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := os.Stat(r.path); err == nil {
		return nil
	}

	hash, err := auth.HashPassword("belediye123")
	if err != nil {
		return err
	}
	department := "IT"
	createdBy := "system"
	defaults := []model.Staff{{
		ID:           1,
		Username:     "belediye_admin",
		PasswordHash: hash,
		FullName:     "Belediye Sistem Yöneticisi",
		Department:   &department,
		StaffRole:    model.StaffRoleYonetici,
		CreatedAt:    time.Now().Format(time.RFC3339),
		CreatedBy:    &createdBy,
	}}
	return r.writeAll(defaults)
}

func (r *FileStaffRepository) readAll() ([]model.Staff, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []model.Staff{}, nil
		}
		return nil, fmt.Errorf("personel dosyası okunamadı: %w", err)
	}
	var staff []model.Staff
	if err := json.Unmarshal(data, &staff); err != nil {
		return nil, fmt.Errorf("personel dosyası çözümlenemedi: %w", err)
	}
	return staff, nil
}

func (r *FileStaffRepository) writeAll(staff []model.Staff) error {
	data, err := json.MarshalIndent(staff, "", "  ")
	if err != nil {
		return fmt.Errorf("personel kayıtları kodlanamadı: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("personel dosyası yazılamadı: %w", err)
	}
	return nil
}

// GetByUsername kullanıcı adına göre personel hesabını döndürür
func (r *FileStaffRepository) GetByUsername(ctx context.Context, username string) (*model.Staff, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	staff, err := r.readAll()
	if err != nil {
		return nil, err
	}
	for i := range staff {
		if staff[i].Username == username {
			found := staff[i]
			return &found, nil
		}
	}
	return nil, model.ErrUserNotFound
}

// Create yeni personel hesabını bir sonraki boş numarayla kaydeder
func (r *FileStaffRepository) Create(ctx context.Context, staff *model.Staff) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.readAll()
	if err != nil {
		return err
	}

	nextID := 1
	for _, s := range records {
		if s.ID >= nextID {
			nextID = s.ID + 1
		}
	}
	staff.ID = nextID

	records = append(records, *staff)
	return r.writeAll(records)
}

// GetAll tüm personel hesaplarını kayıt sırasıyla döndürür
func (r *FileStaffRepository) GetAll(ctx context.Context) ([]model.Staff, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.readAll()
}
