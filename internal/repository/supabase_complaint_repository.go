package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"engelsiz-ankara-backend/internal/database"
	"engelsiz-ankara-backend/internal/domain/model"
	"engelsiz-ankara-backend/internal/domain/repository"
)

type SupabaseComplaintRepository struct {
	client *database.SupabaseClient
}

func NewSupabaseComplaintRepository(client *database.SupabaseClient) repository.ComplaintRepository {
	return &SupabaseComplaintRepository{
		client: client,
	}
}

// supabaseComplaintRow ekleme ve güncellemede id sütununu dışarıda bırakır,
// numarayı veritabanındaki sıralı anahtar verir
type supabaseComplaintRow struct {
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Urgency     string  `json:"urgency"`
	Photo       *string `json:"photo"`
	CreatedAt   string  `json:"created_at"`
	Status      string  `json:"status"`
	Feedback    *string `json:"feedback"`
	FeedbackAt  *string `json:"feedback_at"`
	FeedbackBy  *string `json:"feedback_by"`
	UserID      *int    `json:"user_id"`
}

func toSupabaseRow(complaint *model.Complaint) supabaseComplaintRow {
	return supabaseComplaintRow{
		Category:    complaint.Category,
		Description: complaint.Description,
		Lat:         complaint.Lat,
		Lon:         complaint.Lon,
		Urgency:     complaint.Urgency,
		Photo:       complaint.Photo,
		CreatedAt:   complaint.CreatedAt,
		Status:      complaint.Status,
		Feedback:    complaint.Feedback,
		FeedbackAt:  complaint.FeedbackAt,
		FeedbackBy:  complaint.FeedbackBy,
		UserID:      complaint.UserID,
	}
}

func (r *SupabaseComplaintRepository) Create(ctx context.Context, complaint *model.Complaint) error {
	payload, err := json.Marshal(toSupabaseRow(complaint))
	if err != nil {
		return fmt.Errorf("şikayet verisi kodlanamadı: %w", err)
	}

	data, count, err := r.client.GetClient().From("complaints").Insert(string(payload), false, "", "representation", "").Execute()
	if err != nil {
		return fmt.Errorf("şikayet kaydedilemedi: %w", err)
	}
	_ = count

	var inserted []model.Complaint
	if err := json.Unmarshal([]byte(data), &inserted); err != nil {
		return fmt.Errorf("ekleme yanıtı çözümlenemedi: %w", err)
	}
	if len(inserted) == 0 {
		return fmt.Errorf("ekleme yanıtı boş döndü")
	}

	complaint.ID = inserted[0].ID
	return nil
}

func (r *SupabaseComplaintRepository) GetByID(ctx context.Context, id int) (*model.Complaint, error) {
	var complaints []model.Complaint
	data, count, err := r.client.GetClient().From("complaints").Select("*", "exact", false).Eq("id", strconv.Itoa(id)).Execute()
	if err != nil {
		return nil, fmt.Errorf("şikayet verisi alınamadı: %w", err)
	}
	_ = count

	if err := json.Unmarshal([]byte(data), &complaints); err != nil {
		return nil, fmt.Errorf("şikayet verisi çözümlenemedi: %w", err)
	}
	if len(complaints) == 0 {
		return nil, model.ErrComplaintNotFound
	}

	complaints[0].Normalize()
	return &complaints[0], nil
}

func (r *SupabaseComplaintRepository) GetAll(ctx context.Context) ([]model.Complaint, error) {
	var complaints []model.Complaint
	data, count, err := r.client.GetClient().From("complaints").Select("*", "exact", false).Execute()
	if err != nil {
		return nil, fmt.Errorf("şikayet listesi alınamadı: %w", err)
	}
	_ = count

	if err := json.Unmarshal([]byte(data), &complaints); err != nil {
		return nil, fmt.Errorf("şikayet listesi çözümlenemedi: %w", err)
	}

	// PostgREST sıralama garantisi vermez, kayıt sırası numarayla korunur
	sort.Slice(complaints, func(i, j int) bool {
		return complaints[i].ID < complaints[j].ID
	})
	for i := range complaints {
		complaints[i].Normalize()
	}
	if complaints == nil {
		complaints = make([]model.Complaint, 0)
	}
	return complaints, nil
}

func (r *SupabaseComplaintRepository) GetByUserID(ctx context.Context, userID int) ([]model.Complaint, error) {
	var complaints []model.Complaint
	data, count, err := r.client.GetClient().From("complaints").Select("*", "exact", false).Eq("user_id", strconv.Itoa(userID)).Execute()
	if err != nil {
		return nil, fmt.Errorf("kullanıcı %d için şikayetler alınamadı: %w", userID, err)
	}
	_ = count

	if err := json.Unmarshal([]byte(data), &complaints); err != nil {
		return nil, fmt.Errorf("şikayet listesi çözümlenemedi: %w", err)
	}

	sort.Slice(complaints, func(i, j int) bool {
		return complaints[i].ID < complaints[j].ID
	})
	for i := range complaints {
		complaints[i].Normalize()
	}
	if complaints == nil {
		complaints = make([]model.Complaint, 0)
	}
	return complaints, nil
}

func (r *SupabaseComplaintRepository) Update(ctx context.Context, complaint *model.Complaint) error {
	payload, err := json.Marshal(toSupabaseRow(complaint))
	if err != nil {
		return fmt.Errorf("şikayet verisi kodlanamadı: %w", err)
	}

	data, count, err := r.client.GetClient().From("complaints").Update(string(payload), "representation", "").Eq("id", strconv.Itoa(complaint.ID)).Execute()
	if err != nil {
		return fmt.Errorf("şikayet güncellenemedi: %w", err)
	}
	_ = count

	var updated []model.Complaint
	if err := json.Unmarshal([]byte(data), &updated); err != nil {
		return fmt.Errorf("güncelleme yanıtı çözümlenemedi: %w", err)
	}
	if len(updated) == 0 {
		return model.ErrComplaintNotFound
	}

	return nil
}
