package database

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/lib/pq"
)

// PostgreSQLClient doğrudan PostgreSQL bağlantısı için istemci
type PostgreSQLClient struct {
	DB *sql.DB
}

// NewPostgreSQLClient yeni bir PostgreSQL istemcisi oluşturur.
// Bağlantı bilgisi DATABASE_URL ile verilir; yoksa Supabase değişkenlerinden türetilir.
func NewPostgreSQLClient() (*PostgreSQLClient, error) {
	connStr := os.Getenv("DATABASE_URL")

	if connStr == "" {
		supabaseURL := os.Getenv("SUPABASE_URL")
		supabasePassword := os.Getenv("SUPABASE_DB_PASSWORD")

		if supabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL veya SUPABASE_URL ortam değişkeni ayarlanmamış")
		}
		if supabasePassword == "" {
			return nil, fmt.Errorf("SUPABASE_DB_PASSWORD ortam değişkeni ayarlanmamış")
		}

		// https://xxx.supabase.co -> xxx.supabase.co
		host := strings.TrimPrefix(supabaseURL, "https://")

		connStr = fmt.Sprintf(
			"host=db.%s port=6543 user=postgres password=%s dbname=postgres sslmode=require",
			host, supabasePassword,
		)
	}

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("PostgreSQL bağlantısı başlatılamadı: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("PostgreSQL sunucusuna bağlanılamadı: %w", err)
	}

	return &PostgreSQLClient{
		DB: db,
	}, nil
}

// Close veritabanı bağlantısını kapatır
func (pc *PostgreSQLClient) Close() error {
	if pc.DB != nil {
		return pc.DB.Close()
	}
	return nil
}

// HealthCheck veritabanı bağlantısını doğrular
func (pc *PostgreSQLClient) HealthCheck() error {
	if pc.DB == nil {
		return fmt.Errorf("PostgreSQL istemcisi başlatılmamış")
	}
	return pc.DB.Ping()
}
