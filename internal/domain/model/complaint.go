package model

// Complaint erişilebilirlik şikayeti kaydı.
// Fotoğraf, geri bildirim ve kullanıcı alanları isteğe bağlı olduğundan
// işaretçi tutulur; eski kayıtlarda bulunmayan alanlar null okunur.
type Complaint struct {
	ID          int     `json:"id"`
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

// HasPhoto şikayete fotoğraf eklenmiş mi
func (c *Complaint) HasPhoto() bool {
	return c.Photo != nil && *c.Photo != ""
}

// Normalize eski kayıtlarda boş kalabilen alanları varsayılanlara çeker
func (c *Complaint) Normalize() {
	if c.Status == "" {
		c.Status = StatusBeklemede
	}
	if c.Urgency == "" {
		c.Urgency = GetUrgency(c.Category)
	}
}

// ComplaintView liste ve detay yanıtlarında dönen şikayet görünümü.
// PhotoURL yanıt anında türetilir, kalıcı kayda yazılmaz.
type ComplaintView struct {
	Complaint
	PhotoURL *string `json:"photo_url"`
}

// NewComplaintView kayıttan fotoğraf adresi eklenmiş görünüm üretir
func NewComplaintView(c Complaint) ComplaintView {
	view := ComplaintView{Complaint: c}
	view.Normalize()
	if view.HasPhoto() {
		url := "/photos/" + *view.Photo
		view.PhotoURL = &url
	}
	return view
}

// CreateComplaintRequest JSON gövdeli şikayet oluşturma isteği.
// Sıfır değerli koordinatlar geçerli olduğundan işaretçi ile ayrıştırılır.
type CreateComplaintRequest struct {
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Lat         *float64 `json:"lat"`
	Lon         *float64 `json:"lon"`
	PhotoBase64 *string  `json:"photo_base64"`
}

// CreateComplaintResponse şikayet oluşturma yanıtı
type CreateComplaintResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	ComplaintID int    `json:"complaint_id"`
	Category    string `json:"category"`
	Urgency     string `json:"urgency"`
	CreatedAt   string `json:"created_at"`
}

// FeedbackRequest belediye personelinin şikayet güncelleme isteği.
// Feedback boş bırakılırsa duruma göre otomatik mesaj atanır.
type FeedbackRequest struct {
	Status   string  `json:"status"`
	Feedback *string `json:"feedback"`
}

// FeedbackResponse şikayet güncelleme yanıtı
type FeedbackResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	ComplaintID int    `json:"complaint_id"`
	Status      string `json:"status"`
	Feedback    string `json:"feedback"`
}
