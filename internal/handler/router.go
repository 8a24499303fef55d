package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"engelsiz-ankara-backend/internal/metrics"
)

// Handlers rotalara bağlanacak handler ve ara katman örneklerini taşır
type Handlers struct {
	Accessibility *AccessibilityHandler
	Stops         *StopsHandler
	Complaints    *ComplaintHandler
	Analytics     *AnalyticsHandler
	Auth          *AuthHandler
	AuthMW        *AuthMiddleware
	Limiter       *RateLimiter
	Metrics       *metrics.Metrics
	PhotosDir     string
}

// RegisterRoutes tüm uçları gin motoruna bağlar
func RegisterRoutes(r *gin.Engine, h *Handlers) {
	r.Use(CORSMiddleware())
	r.Use(MetricsMiddleware(h.Metrics))

	r.GET("/", healthCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.Static("/photos", h.PhotosDir)

	// Erişilebilirlik ve durak uçları
	r.GET("/nearest-stops", h.Accessibility.NearestStops)
	r.GET("/grid/:grid_id", h.Accessibility.GridInfo)
	r.GET("/bus-stops", h.Stops.ListStops)
	r.GET("/bus-stops/nearby", h.Stops.NearbyStops)
	r.GET("/bus-stops/bounds", h.Stops.Bounds)

	// Kimlik uçları
	r.POST("/auth/user/register", h.Auth.Register)
	r.POST("/auth/user/login", h.Auth.LoginUser)
	r.POST("/auth/staff/login", h.Auth.LoginStaff)
	r.GET("/auth/me", h.AuthMW.RequireUser(), h.Auth.Me)

	// Personel yönetimi
	r.GET("/staff/roles", h.Auth.StaffRoles)
	r.POST("/staff/add", h.AuthMW.RequireYonetici(), h.Auth.AddStaff)
	r.GET("/staff/list", h.AuthMW.RequireYonetici(), h.Auth.ListStaff)

	// Şikayet oluşturma uçları hız sınırına tabidir
	create := r.Group("/complaints", h.Limiter.Middleware())
	{
		create.POST("", h.Complaints.CreateMultipart)
		create.POST("/base64", h.Complaints.CreateBase64)
		create.POST("/json", h.Complaints.CreateJSON)
		create.POST("/json/auth", h.AuthMW.RequireUser(), h.Complaints.CreateJSONAuth)
	}

	r.GET("/complaints", h.Complaints.List)
	r.GET("/complaints/:complaint_id", h.Complaints.GetByID)
	r.GET("/complaints/status/:status", h.Complaints.ListByStatus)
	r.GET("/my-complaints", h.AuthMW.RequireUser(), h.Complaints.MyComplaints)
	r.PUT("/complaints/:complaint_id/feedback", h.AuthMW.RequireStaff(), h.Complaints.AddFeedback)
	r.PUT("/complaints/:complaint_id/status", h.AuthMW.RequireStaff(), h.Complaints.UpdateStatus)
	r.GET("/categories", h.Complaints.Categories)
	r.GET("/complaint-statuses", h.Complaints.Statuses)
	r.GET("/photo/:filename", h.Complaints.Photo)

	// Pano istatistik uçları
	r.GET("/analytics/summary", h.Analytics.Summary)
	r.GET("/analytics/trend", h.Analytics.Trend)
	r.GET("/analytics/hotspots", h.Analytics.Hotspots)
	r.GET("/analytics/urgent", h.Analytics.Urgent)
}

// healthCheck GET / - sağlık denetimi
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Accessibility API is running"})
}
