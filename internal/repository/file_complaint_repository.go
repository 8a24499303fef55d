package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"engelsiz-ankara-backend/internal/domain/model"
	"engelsiz-ankara-backend/internal/domain/repository"
)

// FileComplaintRepository şikayetleri tek bir JSON dosyasında saklar.
// Yerel geliştirme ve küçük kurulumlar için varsayılan depodur.
type FileComplaintRepository struct {
	path string
	mu   sync.Mutex
}

// NewFileComplaintRepository verilen dosya yolunu kullanan depoyu hazırlar
func NewFileComplaintRepository(path string) (repository.ComplaintRepository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("şikayet dizini oluşturulamadı: %w", err)
	}
	return &FileComplaintRepository{path: path}, nil
}

// readAll dosyadaki tüm şikayetleri okur, dosya yoksa boş liste döner
func (r *FileComplaintRepository) readAll() ([]model.Complaint, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []model.Complaint{}, nil
		}
		return nil, fmt.Errorf("şikayet dosyası okunamadı: %w", err)
	}

	var complaints []model.Complaint
	if err := json.Unmarshal(data, &complaints); err != nil {
		return nil, fmt.Errorf("şikayet dosyası çözümlenemedi: %w", err)
	}
	// eski kayıtlarda durum ve aciliyet alanları boş olabilir
	for i := range complaints {
		complaints[i].Normalize()
	}
	return complaints, nil
}

func (r *FileComplaintRepository) writeAll(complaints []model.Complaint) error {
	data, err := json.MarshalIndent(complaints, "", "  ")
	if err != nil {
		return fmt.Errorf("şikayetler kodlanamadı: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("şikayet dosyası yazılamadı: %w", err)
	}
	return nil
}

// Create yeni şikayeti bir sonraki boş numarayla kaydeder
func (r *FileComplaintRepository) Create(ctx context.Context, complaint *model.Complaint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	complaints, err := r.readAll()
	if err != nil {
		return err
	}

	nextID := 1
	for _, c := range complaints {
		if c.ID >= nextID {
			nextID = c.ID + 1
		}
	}
	complaint.ID = nextID

	complaints = append(complaints, *complaint)
	return r.writeAll(complaints)
}

// GetByID numarası verilen şikayeti döndürür
func (r *FileComplaintRepository) GetByID(ctx context.Context, id int) (*model.Complaint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	complaints, err := r.readAll()
	if err != nil {
		return nil, err
	}
	for i := range complaints {
		if complaints[i].ID == id {
			found := complaints[i]
			return &found, nil
		}
	}
	return nil, model.ErrComplaintNotFound
}

// GetAll tüm şikayetleri kayıt sırasıyla döndürür
func (r *FileComplaintRepository) GetAll(ctx context.Context) ([]model.Complaint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.readAll()
}

// GetByUserID bir vatandaşın kendi şikayetlerini döndürür
func (r *FileComplaintRepository) GetByUserID(ctx context.Context, userID int) ([]model.Complaint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	complaints, err := r.readAll()
	if err != nil {
		return nil, err
	}
	mine := make([]model.Complaint, 0)
	for _, c := range complaints {
		if c.UserID != nil && *c.UserID == userID {
			mine = append(mine, c)
		}
	}
	return mine, nil
}

// Update mevcut şikayetin tamamını yeni haliyle değiştirir
func (r *FileComplaintRepository) Update(ctx context.Context, complaint *model.Complaint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	complaints, err := r.readAll()
	if err != nil {
		return err
	}
	for i := range complaints {
		if complaints[i].ID == complaint.ID {
			complaints[i] = *complaint
			return r.writeAll(complaints)
		}
	}
	return model.ErrComplaintNotFound
}
