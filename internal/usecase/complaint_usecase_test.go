package usecase

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"engelsiz-ankara-backend/internal/domain/model"
	"engelsiz-ankara-backend/internal/infrastructure/storage"
	repoimpl "engelsiz-ankara-backend/internal/repository"
)

type complaintFixture struct {
	uc        ComplaintUseCase
	photosDir string
}

func newComplaintFixture(t *testing.T) *complaintFixture {
	t.Helper()
	dir := t.TempDir()

	complaintRepo, err := repoimpl.NewFileComplaintRepository(filepath.Join(dir, "complaints.json"))
	require.NoError(t, err)
	userRepo, err := repoimpl.NewFileUserRepository(filepath.Join(dir, "users.json"))
	require.NoError(t, err)
	photosDir := filepath.Join(dir, "photos")
	photos, err := storage.NewPhotoStore(photosDir)
	require.NoError(t, err)

	return &complaintFixture{
		uc:        NewComplaintUseCase(complaintRepo, userRepo, photos),
		photosDir: photosDir,
	}
}

func complaintRequest(category string) *model.CreateComplaintRequest {
	lat, lon := 39.92, 32.85
	return &model.CreateComplaintRequest{
		Category:    category,
		Description: "Kaldırımda tekerlekli sandalye geçişi mümkün değil",
		Lat:         &lat,
		Lon:         &lon,
	}
}

func TestCreateComplaintWithoutPhoto(t *testing.T) {
	f := newComplaintFixture(t)

	resp, err := f.uc.Create(context.Background(), complaintRequest("rampa_eksik"), nil, nil)
	assert.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.ComplaintID)
	assert.Equal(t, "rampa_eksik", resp.Category)
	assert.Equal(t, model.UrgencyYellow, resp.Urgency)
	assert.Contains(t, resp.Message, "Şikayet numaranız: #1")
	assert.Contains(t, resp.Message, "Orta öncelikli olarak kaydedildi")

	view, err := f.uc.GetByID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, model.StatusBeklemede, view.Status)
	assert.Nil(t, view.Photo)
	assert.Nil(t, view.PhotoURL)
	assert.Nil(t, view.UserID)
}

func TestCreateComplaintUrgentCategory(t *testing.T) {
	f := newComplaintFixture(t)

	resp, err := f.uc.Create(context.Background(), complaintRequest("yangin"), nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, model.UrgencyRed, resp.Urgency)
	assert.Contains(t, resp.Message, "Acil durum olarak kaydedildi")
}

func TestCreateComplaintWithMultipartPhoto(t *testing.T) {
	f := newComplaintFixture(t)

	photo := &PhotoUpload{Filename: "kanit.jpg", Data: []byte("sahte-jpeg-verisi")}
	resp, err := f.uc.Create(context.Background(), complaintRequest("kaldirim_bozuk"), photo, nil)
	assert.NoError(t, err)

	view, err := f.uc.GetByID(context.Background(), resp.ComplaintID)
	assert.NoError(t, err)
	require.NotNil(t, view.Photo)
	assert.Equal(t, "1_kanit.jpg", *view.Photo)
	require.NotNil(t, view.PhotoURL)
	assert.Equal(t, "/photos/1_kanit.jpg", *view.PhotoURL)

	saved, err := os.ReadFile(filepath.Join(f.photosDir, "1_kanit.jpg"))
	assert.NoError(t, err)
	assert.Equal(t, []byte("sahte-jpeg-verisi"), saved)
}

func TestCreateComplaintWithBase64Photo(t *testing.T) {
	f := newComplaintFixture(t)

	encoded := base64.StdEncoding.EncodeToString([]byte("base64-foto"))
	req := complaintRequest("diger")
	req.PhotoBase64 = &encoded

	resp, err := f.uc.Create(context.Background(), req, nil, nil)
	assert.NoError(t, err)

	view, err := f.uc.GetByID(context.Background(), resp.ComplaintID)
	assert.NoError(t, err)
	require.NotNil(t, view.Photo)
	assert.Equal(t, "1_photo.jpg", *view.Photo)

	saved, err := os.ReadFile(filepath.Join(f.photosDir, "1_photo.jpg"))
	assert.NoError(t, err)
	assert.Equal(t, []byte("base64-foto"), saved)
}

func TestCreateComplaintInvalidBase64(t *testing.T) {
	f := newComplaintFixture(t)

	bad := "bu%geçerli✗base64*değil"
	req := complaintRequest("diger")
	req.PhotoBase64 = &bad

	_, err := f.uc.Create(context.Background(), req, nil, nil)
	var photoErr *PhotoUploadError
	assert.ErrorAs(t, err, &photoErr)

	// bozuk fotoğraf hiçbir kayıt bırakmaz
	views, err := f.uc.List(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, views)
}

func TestCreateComplaintLinksKnownUser(t *testing.T) {
	f := newComplaintFixture(t)

	username := "kullanici_admin"
	resp, err := f.uc.Create(context.Background(), complaintRequest("diger"), nil, &username)
	assert.NoError(t, err)

	view, err := f.uc.GetByID(context.Background(), resp.ComplaintID)
	assert.NoError(t, err)
	require.NotNil(t, view.UserID)
	assert.Equal(t, 1, *view.UserID)
}

func TestCreateComplaintUnknownUserStaysAnonymous(t *testing.T) {
	f := newComplaintFixture(t)

	username := "tanimsiz_hesap"
	resp, err := f.uc.Create(context.Background(), complaintRequest("diger"), nil, &username)
	assert.NoError(t, err)

	view, err := f.uc.GetByID(context.Background(), resp.ComplaintID)
	assert.NoError(t, err)
	assert.Nil(t, view.UserID)
}

func TestListByStatus(t *testing.T) {
	f := newComplaintFixture(t)
	ctx := context.Background()

	_, err := f.uc.Create(ctx, complaintRequest("diger"), nil, nil)
	require.NoError(t, err)
	_, err = f.uc.Create(ctx, complaintRequest("yangin"), nil, nil)
	require.NoError(t, err)
	_, err = f.uc.UpdateStatus(ctx, 2, model.StatusInceleniyor, "belediye_admin")
	require.NoError(t, err)

	waiting, err := f.uc.ListByStatus(ctx, model.StatusBeklemede)
	assert.NoError(t, err)
	assert.Len(t, waiting, 1)
	assert.Equal(t, 1, waiting[0].ID)

	inProgress, err := f.uc.ListByStatus(ctx, model.StatusInceleniyor)
	assert.NoError(t, err)
	assert.Len(t, inProgress, 1)
	assert.Equal(t, 2, inProgress[0].ID)
}

func TestListByStatusInvalid(t *testing.T) {
	f := newComplaintFixture(t)

	_, err := f.uc.ListByStatus(context.Background(), "bilinmeyen")
	assert.ErrorIs(t, err, model.ErrInvalidStatus)
}

func TestMyComplaints(t *testing.T) {
	f := newComplaintFixture(t)
	ctx := context.Background()

	username := "kullanici_admin"
	_, err := f.uc.Create(ctx, complaintRequest("diger"), nil, &username)
	require.NoError(t, err)
	_, err = f.uc.Create(ctx, complaintRequest("yangin"), nil, nil)
	require.NoError(t, err)
	_, err = f.uc.Create(ctx, complaintRequest("rampa_eksik"), nil, &username)
	require.NoError(t, err)

	mine, err := f.uc.MyComplaints(ctx, username)
	assert.NoError(t, err)
	assert.Len(t, mine, 2)
	assert.Equal(t, 1, mine[0].ID)
	assert.Equal(t, 3, mine[1].ID)
}

func TestMyComplaintsUnknownUser(t *testing.T) {
	f := newComplaintFixture(t)

	mine, err := f.uc.MyComplaints(context.Background(), "silinen_hesap")
	assert.NoError(t, err)
	assert.Empty(t, mine)
}

func TestAddFeedbackWithCustomMessage(t *testing.T) {
	f := newComplaintFixture(t)
	ctx := context.Background()

	_, err := f.uc.Create(ctx, complaintRequest("diger"), nil, nil)
	require.NoError(t, err)

	custom := "Ekip yönlendirildi, yarın yerinde inceleme yapılacak."
	resp, err := f.uc.AddFeedback(ctx, 1, &model.FeedbackRequest{Status: model.StatusInceleniyor, Feedback: &custom}, "belediye_admin")
	assert.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "Geri bildirim başarıyla eklendi.", resp.Message)
	assert.Equal(t, custom, resp.Feedback)

	view, err := f.uc.GetByID(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, model.StatusInceleniyor, view.Status)
	require.NotNil(t, view.Feedback)
	assert.Equal(t, custom, *view.Feedback)
	require.NotNil(t, view.FeedbackBy)
	assert.Equal(t, "belediye_admin", *view.FeedbackBy)
	assert.NotNil(t, view.FeedbackAt)
}

func TestAddFeedbackFallsBackToAutoMessage(t *testing.T) {
	f := newComplaintFixture(t)
	ctx := context.Background()

	_, err := f.uc.Create(ctx, complaintRequest("diger"), nil, nil)
	require.NoError(t, err)

	resp, err := f.uc.AddFeedback(ctx, 1, &model.FeedbackRequest{Status: model.StatusCozuldu}, "belediye_admin")
	assert.NoError(t, err)
	assert.Equal(t, "Şikayetiniz çözümlenmiştir. İlginiz için teşekkür ederiz.", resp.Feedback)
}

func TestAddFeedbackInvalidStatus(t *testing.T) {
	f := newComplaintFixture(t)

	_, err := f.uc.AddFeedback(context.Background(), 1, &model.FeedbackRequest{Status: "kapandi"}, "belediye_admin")
	assert.ErrorIs(t, err, model.ErrInvalidStatus)
}

func TestAddFeedbackUnknownComplaint(t *testing.T) {
	f := newComplaintFixture(t)

	_, err := f.uc.AddFeedback(context.Background(), 42, &model.FeedbackRequest{Status: model.StatusCozuldu}, "belediye_admin")
	assert.ErrorIs(t, err, model.ErrComplaintNotFound)
}

func TestUpdateStatus(t *testing.T) {
	f := newComplaintFixture(t)
	ctx := context.Background()

	_, err := f.uc.Create(ctx, complaintRequest("diger"), nil, nil)
	require.NoError(t, err)

	resp, err := f.uc.UpdateStatus(ctx, 1, model.StatusReddedildi, "belediye_admin")
	assert.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "Durum 'reddedildi' olarak güncellendi.", resp.Message)
	assert.Equal(t, model.StatusReddedildi, resp.Status)
	assert.Equal(t, model.AutoFeedbackFor(model.StatusReddedildi), resp.Feedback)

	view, err := f.uc.GetByID(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, model.StatusReddedildi, view.Status)
}

func TestUpdateStatusInvalid(t *testing.T) {
	f := newComplaintFixture(t)

	_, err := f.uc.UpdateStatus(context.Background(), 1, "tamamlandi", "belediye_admin")
	assert.ErrorIs(t, err, model.ErrInvalidStatus)
}
