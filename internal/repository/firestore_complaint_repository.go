package repository

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"

	"cloud.google.com/go/firestore"

	"engelsiz-ankara-backend/internal/domain/model"
	"engelsiz-ankara-backend/internal/domain/repository"
)

// FirestoreComplaintRepository şikayetleri Firestore koleksiyonunda saklar.
// Şikayet numaraları counters/complaints dokümanındaki sayaçtan üretilir,
// böylece dosya deposuyla aynı sıralı numaralama korunur.
type FirestoreComplaintRepository struct {
	client *firestore.Client
}

func NewFirestoreComplaintRepository(client *firestore.Client) repository.ComplaintRepository {
	return &FirestoreComplaintRepository{
		client: client,
	}
}

// FirestoreComplaint Firestore dokümanında saklanan şikayet alanları
type FirestoreComplaint struct {
	ID          int     `firestore:"id"`
	Category    string  `firestore:"category"`
	Description string  `firestore:"description"`
	Lat         float64 `firestore:"lat"`
	Lon         float64 `firestore:"lon"`
	Urgency     string  `firestore:"urgency"`
	Photo       *string `firestore:"photo"`
	CreatedAt   string  `firestore:"created_at"`
	Status      string  `firestore:"status"`
	Feedback    *string `firestore:"feedback"`
	FeedbackAt  *string `firestore:"feedback_at"`
	FeedbackBy  *string `firestore:"feedback_by"`
	UserID      *int    `firestore:"user_id"`
}

// ToComplaint FirestoreComplaint'i model.Complaint'e çevirir
func (fc *FirestoreComplaint) ToComplaint() *model.Complaint {
	complaint := &model.Complaint{
		ID:          fc.ID,
		Category:    fc.Category,
		Description: fc.Description,
		Lat:         fc.Lat,
		Lon:         fc.Lon,
		Urgency:     fc.Urgency,
		Photo:       fc.Photo,
		CreatedAt:   fc.CreatedAt,
		Status:      fc.Status,
		Feedback:    fc.Feedback,
		FeedbackAt:  fc.FeedbackAt,
		FeedbackBy:  fc.FeedbackBy,
		UserID:      fc.UserID,
	}
	complaint.Normalize()
	return complaint
}

func toFirestoreComplaint(complaint *model.Complaint) FirestoreComplaint {
	return FirestoreComplaint{
		ID:          complaint.ID,
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

func isFirestoreNotFound(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "NotFound") || strings.Contains(msg, "not found")
}

// Create sayaç dokümanını artırıp şikayeti yeni numarasıyla kaydeder
func (r *FirestoreComplaintRepository) Create(ctx context.Context, complaint *model.Complaint) error {
	counterRef := r.client.Collection("counters").Doc("complaints")

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		nextID := 1
		snap, err := tx.Get(counterRef)
		if err != nil {
			if !isFirestoreNotFound(err) {
				return err
			}
		} else {
			var counter struct {
				LastID int `firestore:"last_id"`
			}
			if err := snap.DataTo(&counter); err != nil {
				return err
			}
			nextID = counter.LastID + 1
		}

		complaint.ID = nextID
		if err := tx.Set(counterRef, map[string]interface{}{"last_id": nextID}); err != nil {
			return err
		}
		return tx.Set(r.client.Collection("complaints").Doc(strconv.Itoa(nextID)), toFirestoreComplaint(complaint))
	})
	if err != nil {
		log.Printf("❌ Şikayet Firestore'a kaydedilemedi: %v", err)
		return fmt.Errorf("şikayet kaydedilemedi: %w", err)
	}

	return nil
}

func (r *FirestoreComplaintRepository) GetByID(ctx context.Context, id int) (*model.Complaint, error) {
	doc, err := r.client.Collection("complaints").Doc(strconv.Itoa(id)).Get(ctx)
	if err != nil {
		if isFirestoreNotFound(err) {
			return nil, model.ErrComplaintNotFound
		}
		return nil, fmt.Errorf("şikayet verisi alınamadı: %w", err)
	}

	var data FirestoreComplaint
	if err := doc.DataTo(&data); err != nil {
		return nil, fmt.Errorf("şikayet verisi çözümlenemedi: %w", err)
	}

	return data.ToComplaint(), nil
}

func (r *FirestoreComplaintRepository) GetAll(ctx context.Context) ([]model.Complaint, error) {
	snaps, err := r.client.Collection("complaints").Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("şikayet listesi alınamadı: %w", err)
	}

	complaints := make([]model.Complaint, 0, len(snaps))
	for _, snap := range snaps {
		var data FirestoreComplaint
		if err := snap.DataTo(&data); err != nil {
			return nil, fmt.Errorf("şikayet verisi çözümlenemedi: %w", err)
		}
		complaints = append(complaints, *data.ToComplaint())
	}

	// doküman sırası garanti değil, kayıt sırası numarayla korunur
	sort.Slice(complaints, func(i, j int) bool {
		return complaints[i].ID < complaints[j].ID
	})
	return complaints, nil
}

func (r *FirestoreComplaintRepository) GetByUserID(ctx context.Context, userID int) ([]model.Complaint, error) {
	snaps, err := r.client.Collection("complaints").Where("user_id", "==", userID).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("kullanıcı %d için şikayetler alınamadı: %w", userID, err)
	}

	complaints := make([]model.Complaint, 0, len(snaps))
	for _, snap := range snaps {
		var data FirestoreComplaint
		if err := snap.DataTo(&data); err != nil {
			return nil, fmt.Errorf("şikayet verisi çözümlenemedi: %w", err)
		}
		complaints = append(complaints, *data.ToComplaint())
	}

	sort.Slice(complaints, func(i, j int) bool {
		return complaints[i].ID < complaints[j].ID
	})
	return complaints, nil
}

func (r *FirestoreComplaintRepository) Update(ctx context.Context, complaint *model.Complaint) error {
	docRef := r.client.Collection("complaints").Doc(strconv.Itoa(complaint.ID))

	if _, err := docRef.Get(ctx); err != nil {
		if isFirestoreNotFound(err) {
			return model.ErrComplaintNotFound
		}
		return fmt.Errorf("şikayet verisi alınamadı: %w", err)
	}

	if _, err := docRef.Set(ctx, toFirestoreComplaint(complaint)); err != nil {
		return fmt.Errorf("şikayet güncellenemedi: %w", err)
	}

	return nil
}
