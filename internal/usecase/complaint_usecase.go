package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"engelsiz-ankara-backend/internal/domain/model"
	"engelsiz-ankara-backend/internal/domain/repository"
	"engelsiz-ankara-backend/internal/infrastructure/storage"
)

// PhotoUpload multipart yüklemeden gelen ham fotoğraf içeriği
type PhotoUpload struct {
	Filename string
	Data     []byte
}

// PhotoUploadError fotoğraf çözme hatasını taşır, istemci hatası olarak döner
type PhotoUploadError struct {
	Err error
}

func (e *PhotoUploadError) Error() string {
	return fmt.Sprintf("fotoğraf yüklenemedi: %v", e.Err)
}

func (e *PhotoUploadError) Unwrap() error { return e.Err }

type ComplaintUseCase interface {
	// Create yeni şikayeti kaydeder, fotoğrafı diske yazar ve onay mesajı döndürür.
	// username verilirse şikayet o kullanıcının hesabına bağlanır.
	Create(ctx context.Context, req *model.CreateComplaintRequest, photo *PhotoUpload, username *string) (*model.CreateComplaintResponse, error)

	// List tüm şikayetleri fotoğraf adresleriyle birlikte listeler
	List(ctx context.Context) ([]model.ComplaintView, error)

	// GetByID numarası verilen şikayeti döndürür
	GetByID(ctx context.Context, id int) (*model.ComplaintView, error)

	// ListByStatus duruma göre filtrelenmiş şikayetleri listeler
	ListByStatus(ctx context.Context, status string) ([]model.ComplaintView, error)

	// MyComplaints kullanıcının kendi şikayetlerini listeler
	MyComplaints(ctx context.Context, username string) ([]model.ComplaintView, error)

	// AddFeedback şikayetin durumunu ve geri bildirimini günceller
	AddFeedback(ctx context.Context, id int, req *model.FeedbackRequest, staffUsername string) (*model.FeedbackResponse, error)

	// UpdateStatus şikayetin durumunu otomatik geri bildirim mesajıyla günceller
	UpdateStatus(ctx context.Context, id int, status string, staffUsername string) (*model.FeedbackResponse, error)
}

// complaintUseCaseImpl ComplaintUseCase'in implementasyonu
type complaintUseCaseImpl struct {
	complaintRepo repository.ComplaintRepository
	userRepo      repository.UserRepository
	photos        *storage.PhotoStore
}

// NewComplaintUseCase yeni ComplaintUseCase örneği oluşturur
func NewComplaintUseCase(
	complaintRepo repository.ComplaintRepository,
	userRepo repository.UserRepository,
	photos *storage.PhotoStore,
) ComplaintUseCase {
	return &complaintUseCaseImpl{
		complaintRepo: complaintRepo,
		userRepo:      userRepo,
		photos:        photos,
	}
}

func (u *complaintUseCaseImpl) Create(ctx context.Context, req *model.CreateComplaintRequest, photo *PhotoUpload, username *string) (*model.CreateComplaintResponse, error) {
	// base64 fotoğraf kayıttan önce çözülür, bozuk içerik şikayet oluşturmadan reddedilir
	var photoData []byte
	if req.PhotoBase64 != nil && *req.PhotoBase64 != "" {
		decoded, err := base64.StdEncoding.DecodeString(*req.PhotoBase64)
		if err != nil {
			return nil, &PhotoUploadError{Err: err}
		}
		photoData = decoded
	} else if photo != nil {
		photoData = photo.Data
	}

	urgency := model.GetUrgency(req.Category)
	createdAt := time.Now().Format(time.RFC3339)

	// kullanıcı bulunamazsa şikayet anonim kaydedilir
	var userID *int
	if username != nil {
		if user, err := u.userRepo.GetByUsername(ctx, *username); err == nil {
			userID = &user.ID
		}
	}

	complaint := &model.Complaint{
		Category:    req.Category,
		Description: req.Description,
		Lat:         *req.Lat,
		Lon:         *req.Lon,
		Urgency:     urgency,
		CreatedAt:   createdAt,
		Status:      model.StatusBeklemede,
		UserID:      userID,
	}
	if err := u.complaintRepo.Create(ctx, complaint); err != nil {
		return nil, err
	}

	// fotoğraf adı şikayet numarasıyla öneklenir, ad ancak numara atandıktan sonra belli olur
	if photoData != nil {
		filename := fmt.Sprintf("%d_photo.jpg", complaint.ID)
		if photo != nil && photo.Filename != "" {
			filename = fmt.Sprintf("%d_%s", complaint.ID, filepath.Base(photo.Filename))
		}
		if err := u.photos.Save(filename, photoData); err != nil {
			return nil, err
		}
		complaint.Photo = &filename
		if err := u.complaintRepo.Update(ctx, complaint); err != nil {
			return nil, err
		}
	}

	log.Printf("✅ Yeni şikayet #%d alındı (kategori: %s, aciliyet: %s)", complaint.ID, complaint.Category, complaint.Urgency)

	return &model.CreateComplaintResponse{
		Success:     true,
		Message:     fmt.Sprintf("Şikayetiniz başarıyla alınmıştır! Şikayet numaranız: #%d. %s", complaint.ID, model.UrgencyMessageMap[urgency]),
		ComplaintID: complaint.ID,
		Category:    complaint.Category,
		Urgency:     urgency,
		CreatedAt:   createdAt,
	}, nil
}

func (u *complaintUseCaseImpl) List(ctx context.Context) ([]model.ComplaintView, error) {
	complaints, err := u.complaintRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]model.ComplaintView, 0, len(complaints))
	for _, c := range complaints {
		views = append(views, model.NewComplaintView(c))
	}
	return views, nil
}

func (u *complaintUseCaseImpl) GetByID(ctx context.Context, id int) (*model.ComplaintView, error) {
	complaint, err := u.complaintRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	view := model.NewComplaintView(*complaint)
	return &view, nil
}

func (u *complaintUseCaseImpl) ListByStatus(ctx context.Context, status string) ([]model.ComplaintView, error) {
	if !model.IsValidStatus(status) {
		return nil, model.ErrInvalidStatus
	}

	complaints, err := u.complaintRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]model.ComplaintView, 0)
	for _, c := range complaints {
		view := model.NewComplaintView(c)
		if view.Status == status {
			views = append(views, view)
		}
	}
	return views, nil
}

func (u *complaintUseCaseImpl) MyComplaints(ctx context.Context, username string) ([]model.ComplaintView, error) {
	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		// hesabı silinmiş kullanıcı boş liste görür
		if errors.Is(err, model.ErrUserNotFound) {
			return []model.ComplaintView{}, nil
		}
		return nil, err
	}

	complaints, err := u.complaintRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	views := make([]model.ComplaintView, 0, len(complaints))
	for _, c := range complaints {
		views = append(views, model.NewComplaintView(c))
	}
	return views, nil
}

func (u *complaintUseCaseImpl) AddFeedback(ctx context.Context, id int, req *model.FeedbackRequest, staffUsername string) (*model.FeedbackResponse, error) {
	if !model.IsValidStatus(req.Status) {
		return nil, model.ErrInvalidStatus
	}

	complaint, err := u.complaintRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	feedback := model.AutoFeedbackFor(req.Status)
	if req.Feedback != nil && *req.Feedback != "" {
		feedback = *req.Feedback
	}

	feedbackAt := time.Now().Format(time.RFC3339)
	complaint.Status = req.Status
	complaint.Feedback = &feedback
	complaint.FeedbackAt = &feedbackAt
	complaint.FeedbackBy = &staffUsername

	if err := u.complaintRepo.Update(ctx, complaint); err != nil {
		return nil, err
	}

	log.Printf("📝 Şikayet #%d güncellendi (durum: %s, personel: %s)", id, req.Status, staffUsername)

	return &model.FeedbackResponse{
		Success:     true,
		Message:     "Geri bildirim başarıyla eklendi.",
		ComplaintID: id,
		Status:      req.Status,
		Feedback:    feedback,
	}, nil
}

func (u *complaintUseCaseImpl) UpdateStatus(ctx context.Context, id int, status string, staffUsername string) (*model.FeedbackResponse, error) {
	if !model.IsValidStatus(status) {
		return nil, model.ErrInvalidStatus
	}

	complaint, err := u.complaintRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	feedback := model.AutoFeedbackFor(status)
	feedbackAt := time.Now().Format(time.RFC3339)
	complaint.Status = status
	complaint.Feedback = &feedback
	complaint.FeedbackAt = &feedbackAt
	complaint.FeedbackBy = &staffUsername

	if err := u.complaintRepo.Update(ctx, complaint); err != nil {
		return nil, err
	}

	return &model.FeedbackResponse{
		Success:     true,
		Message:     fmt.Sprintf("Durum '%s' olarak güncellendi.", status),
		ComplaintID: id,
		Status:      status,
		Feedback:    feedback,
	}, nil
}
