package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"

	"engelsiz-ankara-backend/internal/auth"
	"engelsiz-ankara-backend/internal/config"
	"engelsiz-ankara-backend/internal/database"
	domainrepo "engelsiz-ankara-backend/internal/domain/repository"
	"engelsiz-ankara-backend/internal/domain/service"
	"engelsiz-ankara-backend/internal/handler"
	infradb "engelsiz-ankara-backend/internal/infrastructure/database"
	"engelsiz-ankara-backend/internal/infrastructure/firestore"
	"engelsiz-ankara-backend/internal/infrastructure/storage"
	"engelsiz-ankara-backend/internal/metrics"
	repoimpl "engelsiz-ankara-backend/internal/repository"
	"engelsiz-ankara-backend/internal/usecase"
)

// Şikayet oluşturma uçlarına uygulanan hız sınırı
const (
	createRateLimit = rate.Limit(5)
	createRateBurst = 10
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	cfg := config.Load()
	ctx := context.Background()

	fmt.Println("Loading grid and bus stop data...")
	geoRepo, err := repoimpl.NewFileGeoDataRepository(cfg.DataDir)
	if err != nil {
		log.Fatalf("❌ Coğrafi veri yüklenemedi: %v", err)
	}
	fmt.Println("✅ Grid and bus stop data loaded!")

	complaintRepo, err := newComplaintRepository(ctx, cfg)
	if err != nil {
		log.Fatalf("❌ Şikayet deposu başlatılamadı: %v", err)
	}

	userRepo, err := repoimpl.NewFileUserRepository(cfg.UsersFile)
	if err != nil {
		log.Fatalf("❌ Kullanıcı deposu başlatılamadı: %v", err)
	}
	staffRepo, err := repoimpl.NewFileStaffRepository(cfg.StaffFile)
	if err != nil {
		log.Fatalf("❌ Personel deposu başlatılamadı: %v", err)
	}
	photos, err := storage.NewPhotoStore(cfg.PhotosDir)
	if err != nil {
		log.Fatalf("❌ Fotoğraf dizini hazırlanamadı: %v", err)
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret, 24*time.Hour)
	m := metrics.New(prometheus.DefaultRegisterer)

	locator := service.NewPointLocatorService(geoRepo)
	resolver := service.NewAccessibilityService(geoRepo)

	accessibilityUseCase := usecase.NewAccessibilityUseCase(locator, resolver, geoRepo)
	stopsUseCase := usecase.NewStopsUseCase(geoRepo)
	complaintUseCase := usecase.NewComplaintUseCase(complaintRepo, userRepo, photos)
	analyticsUseCase := usecase.NewAnalyticsUseCase(complaintRepo, locator)
	authUseCase := usecase.NewAuthUseCase(userRepo, staffRepo, tokens)

	handlers := &handler.Handlers{
		Accessibility: handler.NewAccessibilityHandler(accessibilityUseCase, m),
		Stops:         handler.NewStopsHandler(stopsUseCase),
		Complaints:    handler.NewComplaintHandler(complaintUseCase, photos, m),
		Analytics:     handler.NewAnalyticsHandler(analyticsUseCase),
		Auth:          handler.NewAuthHandler(authUseCase),
		AuthMW:        handler.NewAuthMiddleware(tokens),
		Limiter:       handler.NewRateLimiter(createRateLimit, createRateBurst, m),
		Metrics:       m,
		PhotosDir:     cfg.PhotosDir,
	}

	r := gin.Default()
	handler.RegisterRoutes(r, handlers)

	log.Printf("🚀 Engelsiz Ankara API %s portunda başlıyor (şikayet deposu: %s)", cfg.Port, cfg.ComplaintStore)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Sunucu başlatılamadı: %v", err)
	}
}

// newComplaintRepository COMPLAINT_STORE değerine göre şikayet deposunu kurar.
// Bilinmeyen değerlerde dosya deposuna düşülür.
func newComplaintRepository(ctx context.Context, cfg *config.Config) (domainrepo.ComplaintRepository, error) {
	switch cfg.ComplaintStore {
	case "postgres":
		fmt.Println("Initializing PostgreSQL client...")
		client, err := infradb.NewPostgreSQLClient()
		if err != nil {
			return nil, err
		}
		if err := client.HealthCheck(); err != nil {
			return nil, err
		}
		log.Printf("💾 Şikayet deposu: PostgreSQL")
		return repoimpl.NewPostgresComplaintRepository(client), nil

	case "supabase":
		fmt.Println("Initializing Supabase client...")
		client, err := database.NewSupabaseClient()
		if err != nil {
			return nil, err
		}
		if err := client.HealthCheck(); err != nil {
			return nil, err
		}
		log.Printf("💾 Şikayet deposu: Supabase")
		return repoimpl.NewSupabaseComplaintRepository(client), nil

	case "firestore":
		fmt.Println("Initializing Firestore client...")
		client, err := firestore.NewFirestoreClient(ctx, os.Getenv("FIRESTORE_PROJECT_ID"))
		if err != nil {
			return nil, err
		}
		log.Printf("💾 Şikayet deposu: Firestore")
		return repoimpl.NewFirestoreComplaintRepository(client.GetClient()), nil

	default:
		log.Printf("💾 Şikayet deposu: dosya (%s)", cfg.ComplaintsFile)
		return repoimpl.NewFileComplaintRepository(cfg.ComplaintsFile)
	}
}
