package handler

import (
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"engelsiz-ankara-backend/internal/auth"
	"engelsiz-ankara-backend/internal/domain/model"
	"engelsiz-ankara-backend/internal/metrics"
)

const claimsContextKey = "tokenData"

// CORSMiddleware tüm kaynaklardan gelen isteklere izin verir
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// AuthMiddleware erişim belirtecini doğrulayıp rol denetimi yapan ara katmanları üretir
type AuthMiddleware struct {
	tokens *auth.TokenManager
}

func NewAuthMiddleware(tokens *auth.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (a *AuthMiddleware) authenticate(c *gin.Context) (*model.TokenData, bool) {
	header := c.GetHeader("Authorization")
	tokenString, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || tokenString == "" {
		return nil, false
	}

	claims, err := a.tokens.Parse(tokenString)
	if err != nil {
		return nil, false
	}

	data := &model.TokenData{Username: claims.Subject, Role: claims.Role}
	if claims.StaffRole != nil {
		data.StaffRole = *claims.StaffRole
	}
	return data, true
}

func unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Geçersiz kimlik bilgileri"})
}

// RequireUser geçerli bir belirteç ister, rol ayrımı yapmaz
func (a *AuthMiddleware) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		data, ok := a.authenticate(c)
		if !ok {
			unauthorized(c)
			return
		}
		c.Set(claimsContextKey, data)
		c.Next()
	}
}

// RequireStaff personel rolü taşıyan bir belirteç ister
func (a *AuthMiddleware) RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		data, ok := a.authenticate(c)
		if !ok {
			unauthorized(c)
			return
		}
		if data.Role != model.RoleStaff {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Bu işlem için belediye personeli yetkisi gerekiyor"})
			return
		}
		c.Set(claimsContextKey, data)
		c.Next()
	}
}

// RequireYonetici yönetici alt rolüne sahip personel belirteci ister
func (a *AuthMiddleware) RequireYonetici() gin.HandlerFunc {
	return func(c *gin.Context) {
		data, ok := a.authenticate(c)
		if !ok {
			unauthorized(c)
			return
		}
		if data.Role != model.RoleStaff || data.StaffRole != model.StaffRoleYonetici {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Bu işlem için yönetici yetkisi gerekiyor"})
			return
		}
		c.Set(claimsContextKey, data)
		c.Next()
	}
}

// currentClaims ara katmanın bağlama koyduğu kimliği okur
func currentClaims(c *gin.Context) (*model.TokenData, bool) {
	value, exists := c.Get(claimsContextKey)
	if !exists {
		return nil, false
	}
	data, ok := value.(*model.TokenData)
	return data, ok
}

// RateLimiter istemci IP adresi başına jetonlu kova tutar
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
	metrics  *metrics.Metrics
}

func NewRateLimiter(limit rate.Limit, burst int, m *metrics.Metrics) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    limit,
		burst:    burst,
		metrics:  m,
	}
}

func (rl *RateLimiter) limiterFor(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, ok := rl.limiters[ip]
	if !ok {
		limiter = rate.NewLimiter(rl.limit, rl.burst)
		rl.limiters[ip] = limiter
	}
	return limiter
}

// Middleware kova boşaldığında isteği 429 ile keser
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.limiterFor(c.ClientIP()).Allow() {
			rl.metrics.RateLimited.Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Çok fazla istek gönderildi. Lütfen daha sonra tekrar deneyin."})
			return
		}
		c.Next()
	}
}

// MetricsMiddleware her isteği yöntem, yol ve durum koduna göre sayar
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method
		m.RequestsTotal.WithLabelValues(method, path, strconv.Itoa(c.Writer.Status())).Inc()
		m.RequestSeconds.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}
