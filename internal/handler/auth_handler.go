package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"engelsiz-ankara-backend/internal/domain/model"
	"engelsiz-ankara-backend/internal/usecase"
)

// AuthHandler kimlik ve personel yönetimi uçlarına ilişkin HTTP handler'ı
type AuthHandler struct {
	authUseCase usecase.AuthUseCase
}

// NewAuthHandler AuthHandler'ın yeni örneğini oluşturur
func NewAuthHandler(authUseCase usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{authUseCase: authUseCase}
}

// Register POST /auth/user/register - vatandaş kaydı, başarılıysa otomatik giriş yapar
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Geçersiz istek gövdesi: " + err.Error()})
		return
	}
	if req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Kullanıcı adı ve şifre zorunludur"})
		return
	}

	resp, err := h.authUseCase.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrUsernameTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Bu kullanıcı adı zaten kullanılıyor"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Kayıt sırasında bir hata oluştu: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LoginUser POST /auth/user/login - vatandaş girişi
func (h *AuthHandler) LoginUser(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Geçersiz istek gövdesi: " + err.Error()})
		return
	}

	resp, err := h.authUseCase.LoginUser(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Kullanıcı adı veya şifre hatalı. Lütfen bilgilerinizi kontrol edin."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LoginStaff POST /auth/staff/login - belediye personeli girişi
func (h *AuthHandler) LoginStaff(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Geçersiz istek gövdesi: " + err.Error()})
		return
	}

	resp, err := h.authUseCase.LoginStaff(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Personel kullanıcı adı veya şifre hatalı. Lütfen bilgilerinizi kontrol edin."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Me GET /auth/me - belirteç sahibinin hesap bilgisi
func (h *AuthHandler) Me(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		unauthorized(c)
		return
	}

	if claims.Role == model.RoleStaff {
		staff, err := h.authUseCase.GetStaff(c.Request.Context(), claims.Username)
		if err == nil {
			c.JSON(http.StatusOK, gin.H{
				"id":         staff.ID,
				"username":   staff.Username,
				"full_name":  staff.FullName,
				"department": staff.Department,
				"staff_role": staff.StaffRole,
				"role":       model.RoleStaff,
			})
			return
		}
		if !errors.Is(err, model.ErrUserNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	} else {
		user, err := h.authUseCase.GetUser(c.Request.Context(), claims.Username)
		if err == nil {
			c.JSON(http.StatusOK, gin.H{
				"id":        user.ID,
				"username":  user.Username,
				"email":     user.Email,
				"full_name": user.FullName,
				"role":      model.RoleUser,
			})
			return
		}
		if !errors.Is(err, model.ErrUserNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "Kullanıcı bulunamadı"})
}

// StaffRoles GET /staff/roles - personel eklerken seçilebilir roller
func (h *AuthHandler) StaffRoles(c *gin.Context) {
	c.JSON(http.StatusOK, model.GetAllStaffRoles())
}

// AddStaff POST /staff/add - yeni personel hesabı açar, yalnızca yönetici
func (h *AuthHandler) AddStaff(c *gin.Context) {
	var req model.StaffCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Geçersiz istek gövdesi: " + err.Error()})
		return
	}
	if req.Username == "" || req.Password == "" || req.FullName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Kullanıcı adı, şifre ve ad soyad zorunludur"})
		return
	}

	claims, ok := currentClaims(c)
	if !ok {
		unauthorized(c)
		return
	}

	resp, err := h.authUseCase.AddStaff(c.Request.Context(), &req, claims.Username)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidStaffRole):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Geçersiz personel rolü. Geçerli roller: yonetici, operasyon, analiz"})
		case errors.Is(err, model.ErrUsernameTaken):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Bu kullanıcı adı zaten kullanılıyor"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListStaff GET /staff/list - tüm personel hesapları, yalnızca yönetici
func (h *AuthHandler) ListStaff(c *gin.Context) {
	staff, err := h.authUseCase.ListStaff(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, staff)
}
