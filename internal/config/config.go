package config

import "os"

// Config sunucunun ortam değişkenlerinden okunan ayarları
type Config struct {
	Port           string
	DataDir        string
	ComplaintsFile string
	UsersFile      string
	StaffFile      string
	PhotosDir      string
	ComplaintStore string // file, postgres, supabase ya da firestore
	JWTSecret      string
}

// Load ortam değişkenlerini okur, boş olanlara varsayılan değer atar
func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8000"),
		DataDir:        getEnv("DATA_DIR", "data"),
		ComplaintsFile: getEnv("COMPLAINTS_FILE", "complaints.json"),
		UsersFile:      getEnv("USERS_FILE", "users.json"),
		StaffFile:      getEnv("STAFF_FILE", "staff.json"),
		PhotosDir:      getEnv("PHOTOS_DIR", "photos"),
		ComplaintStore: getEnv("COMPLAINT_STORE", "file"),
		JWTSecret:      getEnv("JWT_SECRET", "belediye-accessibility-secret-key-2024"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
