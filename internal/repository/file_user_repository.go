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

// FileUserRepository vatandaş hesaplarını JSON dosyasında saklar
type FileUserRepository struct {
	path string
	mu   sync.Mutex
}

// NewFileUserRepository depoyu hazırlar, dosya yoksa varsayılan hesabı yazar
func NewFileUserRepository(path string) (repository.UserRepository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("kullanıcı dizini oluşturulamadı: %w", err)
	}
	repo := &FileUserRepository{path: path}
	if err := repo.ensureDefaults(); err != nil {
		return nil, err
	}
	return repo, nil
}

// ensureDefaults dosya henüz yoksa varsayılan kullanıcı hesabını oluşturur
func (r *FileUserRepository) ensureDefaults() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := os.Stat(r.path); err == nil {
		return nil
	}

	hash, err := auth.HashPassword("kullanici123")
	if err != nil {
		return err
	}
	email := "admin@kullanici.com"
	fullName := "Kullanıcı Admin"
	defaults := []model.User{{
		ID:           1,
		Username:     "kullanici_admin",
		PasswordHash: hash,
		Email:        &email,
		FullName:     &fullName,
		CreatedAt:    time.Now().Format(time.RFC3339),
	}}
	return r.writeAll(defaults)
}

func (r *FileUserRepository) readAll() ([]model.User, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []model.User{}, nil
		}
		return nil, fmt.Errorf("kullanıcı dosyası okunamadı: %w", err)
	}
	var users []model.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("kullanıcı dosyası çözümlenemedi: %w", err)
	}
	return users, nil
}

func (r *FileUserRepository) writeAll(users []model.User) error {
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("kullanıcılar kodlanamadı: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("kullanıcı dosyası yazılamadı: %w", err)
	}
	return nil
}

// GetByUsername kullanıcı adına göre hesabı döndürür
func (r *FileUserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.readAll()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			found := users[i]
			return &found, nil
		}
	}
	return nil, model.ErrUserNotFound
}

// Create yeni hesabı bir sonraki boş numarayla kaydeder
func (r *FileUserRepository) Create(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.readAll()
	if err != nil {
		return err
	}

	nextID := 1
	for _, u := range users {
		if u.ID >= nextID {
			nextID = u.ID + 1
		}
	}
	user.ID = nextID

	users = append(users, *user)
	return r.writeAll(users)
}
