package handler

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"engelsiz-ankara-backend/internal/domain/model"
	"engelsiz-ankara-backend/internal/infrastructure/storage"
	"engelsiz-ankara-backend/internal/metrics"
	"engelsiz-ankara-backend/internal/usecase"
)

// ComplaintHandler şikayet uçlarına ilişkin HTTP handler'ı
type ComplaintHandler struct {
	complaintUseCase usecase.ComplaintUseCase
	photos           *storage.PhotoStore
	metrics          *metrics.Metrics
}

// NewComplaintHandler ComplaintHandler'ın yeni örneğini oluşturur
func NewComplaintHandler(complaintUseCase usecase.ComplaintUseCase, photos *storage.PhotoStore, m *metrics.Metrics) *ComplaintHandler {
	return &ComplaintHandler{
		complaintUseCase: complaintUseCase,
		photos:           photos,
		metrics:          m,
	}
}

// CreateMultipart POST /complaints - form alanları ve isteğe bağlı fotoğraf dosyasıyla şikayet oluşturur
func (h *ComplaintHandler) CreateMultipart(c *gin.Context) {
	req, ok := complaintRequestFromForm(c)
	if !ok {
		return
	}

	var photo *usecase.PhotoUpload
	if file, err := c.FormFile("photo"); err == nil {
		data, err := readUpload(file)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Fotoğraf yüklenirken hata oluştu: " + err.Error()})
			return
		}
		photo = &usecase.PhotoUpload{Filename: file.Filename, Data: data}
	}

	h.create(c, req, photo, nil, "Fotoğraf yüklenirken hata oluştu: ")
}

// CreateBase64 POST /complaints/base64 - form alanları ve base64 fotoğrafla şikayet oluşturur
func (h *ComplaintHandler) CreateBase64(c *gin.Context) {
	req, ok := complaintRequestFromForm(c)
	if !ok {
		return
	}

	if photoBase64 := c.PostForm("photo_base64"); photoBase64 != "" {
		req.PhotoBase64 = &photoBase64
	}

	h.create(c, req, nil, nil, "Fotoğraf yüklenirken hata oluştu: ")
}

// CreateJSON POST /complaints/json - JSON gövdeli şikayet oluşturur
func (h *ComplaintHandler) CreateJSON(c *gin.Context) {
	var req model.CreateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Geçersiz istek gövdesi: " + err.Error()})
		return
	}
	if !validComplaintRequest(c, &req) {
		return
	}

	h.create(c, &req, nil, nil, "Fotoğraf yüklenirken hata oluştu: ")
}

// CreateJSONAuth POST /complaints/json/auth - şikayeti giriş yapmış kullanıcının hesabına bağlar
func (h *ComplaintHandler) CreateJSONAuth(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		unauthorized(c)
		return
	}

	var req model.CreateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Geçersiz istek gövdesi: " + err.Error()})
		return
	}
	if !validComplaintRequest(c, &req) {
		return
	}

	h.create(c, &req, nil, &claims.Username, "Fotoğraf yüklenirken hata: ")
}

func (h *ComplaintHandler) create(c *gin.Context, req *model.CreateComplaintRequest, photo *usecase.PhotoUpload, username *string, photoErrPrefix string) {
	resp, err := h.complaintUseCase.Create(c.Request.Context(), req, photo, username)
	if err != nil {
		var photoErr *usecase.PhotoUploadError
		if errors.As(err, &photoErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": photoErrPrefix + photoErr.Err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Şikayet oluşturulurken bir hata oluştu: " + err.Error()})
		return
	}

	h.metrics.ComplaintsTotal.WithLabelValues(resp.Urgency).Inc()
	c.JSON(http.StatusOK, resp)
}

// List GET /complaints - tüm şikayetler, fotoğraf adresleriyle
func (h *ComplaintHandler) List(c *gin.Context) {
	views, err := h.complaintUseCase.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, views)
}

// GetByID GET /complaints/:complaint_id - tek şikayet
func (h *ComplaintHandler) GetByID(c *gin.Context) {
	id, ok := complaintIDParam(c)
	if !ok {
		return
	}

	view, err := h.complaintUseCase.GetByID(c.Request.Context(), id)
	if err != nil {
		respondComplaintError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ListByStatus GET /complaints/status/:status - duruma göre filtrelenmiş şikayetler
func (h *ComplaintHandler) ListByStatus(c *gin.Context) {
	views, err := h.complaintUseCase.ListByStatus(c.Request.Context(), c.Param("status"))
	if err != nil {
		respondComplaintError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// MyComplaints GET /my-complaints - giriş yapmış kullanıcının şikayetleri
func (h *ComplaintHandler) MyComplaints(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		unauthorized(c)
		return
	}

	views, err := h.complaintUseCase.MyComplaints(c.Request.Context(), claims.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, views)
}

// AddFeedback PUT /complaints/:complaint_id/feedback - durum ve geri bildirim günceller
func (h *ComplaintHandler) AddFeedback(c *gin.Context) {
	id, ok := complaintIDParam(c)
	if !ok {
		return
	}

	var req model.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Geçersiz istek gövdesi: " + err.Error()})
		return
	}

	claims, ok := currentClaims(c)
	if !ok {
		unauthorized(c)
		return
	}

	resp, err := h.complaintUseCase.AddFeedback(c.Request.Context(), id, &req, claims.Username)
	if err != nil {
		respondComplaintError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateStatus PUT /complaints/:complaint_id/status - durumu sorgu parametresinden günceller
func (h *ComplaintHandler) UpdateStatus(c *gin.Context) {
	id, ok := complaintIDParam(c)
	if !ok {
		return
	}

	claims, ok := currentClaims(c)
	if !ok {
		unauthorized(c)
		return
	}

	resp, err := h.complaintUseCase.UpdateStatus(c.Request.Context(), id, c.Query("status"), claims.Username)
	if err != nil {
		respondComplaintError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Categories GET /categories - seçilebilir şikayet kategorileri
func (h *ComplaintHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, model.GetAllCategories())
}

// Statuses GET /complaint-statuses - pano açılır listesi için durum seçenekleri
func (h *ComplaintHandler) Statuses(c *gin.Context) {
	c.JSON(http.StatusOK, model.GetAllStatusOptions())
}

// Photo GET /photo/:filename - şikayet fotoğrafını indirir
func (h *ComplaintHandler) Photo(c *gin.Context) {
	filename := filepath.Base(c.Param("filename"))
	if !h.photos.Exists(filename) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Fotoğraf bulunamadı"})
		return
	}
	c.FileAttachment(h.photos.Path(filename), filename)
}

// complaintRequestFromForm multipart/form gövdesinden oluşturma isteğini ayrıştırır
func complaintRequestFromForm(c *gin.Context) (*model.CreateComplaintRequest, bool) {
	category := c.PostForm("category")
	description := c.PostForm("description")
	if category == "" || description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category ve description alanları zorunludur"})
		return nil, false
	}

	lat, err := strconv.ParseFloat(c.PostForm("lat"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat alanı zorunludur ve sayı olmalıdır"})
		return nil, false
	}
	lon, err := strconv.ParseFloat(c.PostForm("lon"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lon alanı zorunludur ve sayı olmalıdır"})
		return nil, false
	}

	return &model.CreateComplaintRequest{
		Category:    category,
		Description: description,
		Lat:         &lat,
		Lon:         &lon,
	}, true
}

func validComplaintRequest(c *gin.Context, req *model.CreateComplaintRequest) bool {
	if req.Category == "" || req.Description == "" || req.Lat == nil || req.Lon == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category, description, lat ve lon alanları zorunludur"})
		return false
	}
	return true
}

func complaintIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("complaint_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Geçersiz şikayet numarası"})
		return 0, false
	}
	return id, true
}

func readUpload(file *multipart.FileHeader) ([]byte, error) {
	f, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// respondComplaintError şikayet hatalarını HTTP yanıtına çevirir
func respondComplaintError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrComplaintNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Şikayet bulunamadı"})
	case errors.Is(err, model.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Geçersiz durum. Geçerli değerler: " + strings.Join(model.GetAllStatuses(), ", "),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
