package test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"

	"engelsiz-ankara-backend/internal/auth"
	"engelsiz-ankara-backend/internal/domain/service"
	"engelsiz-ankara-backend/internal/handler"
	"engelsiz-ankara-backend/internal/infrastructure/storage"
	"engelsiz-ankara-backend/internal/metrics"
	repoimpl "engelsiz-ankara-backend/internal/repository"
	"engelsiz-ankara-backend/internal/usecase"
)

// Testler gerçek sunucuyla aynı veri dosyalarını küçültülmüş içerikle kullanır.
// 242 numaralı hücrenin eğim ve durak kaydı tam, 243 numaralının durak kaydı yoktur.
const fixtureGridGeoJSON = `{
	"type": "FeatureCollection",
	"features": [
		{
			"type": "Feature",
			"properties": {"grid_id": 242},
			"geometry": {
				"type": "Polygon",
				"coordinates": [[[32.848, 39.918], [32.852, 39.918], [32.852, 39.922], [32.848, 39.922], [32.848, 39.918]]]
			}
		},
		{
			"type": "Feature",
			"properties": {"grid_id": 243},
			"geometry": {
				"type": "Polygon",
				"coordinates": [[[32.852, 39.918], [32.856, 39.918], [32.856, 39.922], [32.852, 39.922], [32.852, 39.918]]]
			}
		}
	]
}`

const fixtureSlopeJSON = `[
	{"grid_id": 242, "slope_score": 87.456},
	{"grid_id": 243, "slope_score": 12.0}
]`

const fixtureBusStopsJSON = `[
	{"stop_id": 1750, "stop_name": "KIZILAY MEYDANI", "lat": 39.92, "lon": 32.85},
	{"stop_id": 1751, "stop_name": "GÜVENPARK", "lat": 39.921, "lon": 32.851},
	{"stop_id": 1752, "stop_name": "MİLLİ KÜTÜPHANE", "lat": 39.919, "lon": 32.849}
]`

const fixtureNearestStopsJSON = `[
	{
		"grid_id": 242,
		"nearest_stops": [
			{"stop_id": 1750, "distance": 150.5},
			{"stop_id": 1751, "distance": 210.456},
			{"stop_id": 1752, "distance": 300.2}
		]
	}
]`

// apiServer testlerde ayağa kaldırılan tam API örneği
type apiServer struct {
	router    *gin.Engine
	tokens    *auth.TokenManager
	photosDir string
}

// setupAPIServer gerçek sunucuyla aynı bağımlılık zincirini geçici dizin
// üzerinde kurar. Her çağrı kendi veri deposunu ve hız sınırlayıcısını alır.
func setupAPIServer(t *testing.T) *apiServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	dataDir := filepath.Join(dir, "data")
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		t.Fatalf("veri dizini oluşturulamadı: %v", err)
	}

	fixtures := map[string]string{
		repoimpl.GridAccessFile:   fixtureGridGeoJSON,
		repoimpl.GridSlopeFile:    fixtureSlopeJSON,
		repoimpl.BusStopsFile:     fixtureBusStopsJSON,
		repoimpl.NearestStopsFile: fixtureNearestStopsJSON,
	}
	for name, content := range fixtures {
		if err := os.WriteFile(filepath.Join(dataDir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("veri dosyası yazılamadı: %v", err)
		}
	}

	geoRepo, err := repoimpl.NewFileGeoDataRepository(dataDir)
	if err != nil {
		t.Fatalf("coğrafi veri yüklenemedi: %v", err)
	}
	complaintRepo, err := repoimpl.NewFileComplaintRepository(filepath.Join(dir, "complaints.json"))
	if err != nil {
		t.Fatalf("şikayet deposu açılamadı: %v", err)
	}
	userRepo, err := repoimpl.NewFileUserRepository(filepath.Join(dir, "users.json"))
	if err != nil {
		t.Fatalf("kullanıcı deposu açılamadı: %v", err)
	}
	staffRepo, err := repoimpl.NewFileStaffRepository(filepath.Join(dir, "staff.json"))
	if err != nil {
		t.Fatalf("personel deposu açılamadı: %v", err)
	}
	photosDir := filepath.Join(dir, "photos")
	photos, err := storage.NewPhotoStore(photosDir)
	if err != nil {
		t.Fatalf("fotoğraf deposu açılamadı: %v", err)
	}

	tokens := auth.NewTokenManager("entegrasyon-test-anahtari", time.Hour)
	m := metrics.New(prometheus.NewRegistry())

	locator := service.NewPointLocatorService(geoRepo)
	resolver := service.NewAccessibilityService(geoRepo)

	accessibilityUseCase := usecase.NewAccessibilityUseCase(locator, resolver, geoRepo)
	stopsUseCase := usecase.NewStopsUseCase(geoRepo)
	complaintUseCase := usecase.NewComplaintUseCase(complaintRepo, userRepo, photos)
	analyticsUseCase := usecase.NewAnalyticsUseCase(complaintRepo, locator)
	authUseCase := usecase.NewAuthUseCase(userRepo, staffRepo, tokens)

	r := gin.New()
	handler.RegisterRoutes(r, &handler.Handlers{
		Accessibility: handler.NewAccessibilityHandler(accessibilityUseCase, m),
		Stops:         handler.NewStopsHandler(stopsUseCase),
		Complaints:    handler.NewComplaintHandler(complaintUseCase, photos, m),
		Analytics:     handler.NewAnalyticsHandler(analyticsUseCase),
		Auth:          handler.NewAuthHandler(authUseCase),
		AuthMW:        handler.NewAuthMiddleware(tokens),
		Limiter:       handler.NewRateLimiter(rate.Limit(5), 10, m),
		Metrics:       m,
		PhotosDir:     photosDir,
	})

	return &apiServer{router: r, tokens: tokens, photosDir: photosDir}
}

// doRequest isteği test sunucusuna iletir ve yanıt kaydedicisini döndürür
func (s *apiServer) doRequest(t *testing.T, method, path string, body io.Reader, contentType, token string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(method, path, body)
	if err != nil {
		t.Fatalf("istek oluşturulamadı: %v", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *apiServer) get(t *testing.T, path, token string) *httptest.ResponseRecorder {
	return s.doRequest(t, http.MethodGet, path, nil, "", token)
}

func (s *apiServer) postJSON(t *testing.T, path string, payload any, token string) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("istek gövdesi kodlanamadı: %v", err)
	}
	return s.doRequest(t, http.MethodPost, path, bytes.NewReader(data), "application/json", token)
}

func (s *apiServer) putJSON(t *testing.T, path string, payload any, token string) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("istek gövdesi kodlanamadı: %v", err)
	}
	return s.doRequest(t, http.MethodPut, path, bytes.NewReader(data), "application/json", token)
}

// postMultipart form alanlarını ve isteğe bağlı fotoğraf dosyasını multipart gövdeyle gönderir
func (s *apiServer) postMultipart(t *testing.T, path string, fields map[string]string, photoName string, photoData []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("form alanı yazılamadı: %v", err)
		}
	}
	if photoName != "" {
		part, err := writer.CreateFormFile("photo", photoName)
		if err != nil {
			t.Fatalf("fotoğraf alanı oluşturulamadı: %v", err)
		}
		if _, err := part.Write(photoData); err != nil {
			t.Fatalf("fotoğraf verisi yazılamadı: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("multipart gövde kapatılamadı: %v", err)
	}

	return s.doRequest(t, http.MethodPost, path, &buf, writer.FormDataContentType(), "")
}

// decodeBody yanıt gövdesini verilen hedefe çözer
func decodeBody(t *testing.T, w *httptest.ResponseRecorder, target any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), target); err != nil {
		t.Fatalf("yanıt gövdesi çözülemedi: %v (gövde: %s)", err, w.Body.String())
	}
}

// errorMessage yanıt gövdesindeki error alanını döndürür
func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]any
	decodeBody(t, w, &body)
	message, _ := body["error"].(string)
	return message
}

// userToken varsayılan vatandaş hesabıyla giriş yapıp erişim belirtecini döndürür
func userToken(t *testing.T, s *apiServer) string {
	t.Helper()
	w := s.postJSON(t, "/auth/user/login", map[string]string{
		"username": "kullanici_admin",
		"password": "kullanici123",
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("vatandaş girişi başarısız: %d %s", w.Code, w.Body.String())
	}

	var resp struct {
		Token struct {
			AccessToken string `json:"access_token"`
		} `json:"token"`
	}
	decodeBody(t, w, &resp)
	return resp.Token.AccessToken
}

// staffToken varsayılan yönetici hesabıyla giriş yapıp erişim belirtecini döndürür
func staffToken(t *testing.T, s *apiServer) string {
	t.Helper()
	w := s.postJSON(t, "/auth/staff/login", map[string]string{
		"username": "belediye_admin",
		"password": "belediye123",
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("personel girişi başarısız: %d %s", w.Code, w.Body.String())
	}

	var resp struct {
		Token struct {
			AccessToken string `json:"access_token"`
		} `json:"token"`
	}
	decodeBody(t, w, &resp)
	return resp.Token.AccessToken
}

// complaintPayload geçerli bir JSON şikayet gövdesi üretir
func complaintPayload(category string) map[string]any {
	return map[string]any{
		"category":    category,
		"description": "Kaldırım rampası araç parkıyla kapatılmış",
		"lat":         39.920,
		"lon":         32.850,
	}
}
