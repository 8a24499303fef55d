package database

import (
	"fmt"
	"os"

	"github.com/supabase-community/supabase-go"
)

// SupabaseClient Supabase istemcisinin sarmalayıcısı
type SupabaseClient struct {
	Client *supabase.Client
}

// NewSupabaseClient yeni bir Supabase istemcisi oluşturur
func NewSupabaseClient() (*SupabaseClient, error) {
	supabaseURL := os.Getenv("SUPABASE_URL")
	supabaseAnonKey := os.Getenv("SUPABASE_ANON_KEY")

	if supabaseURL == "" {
		return nil, fmt.Errorf("SUPABASE_URL ortam değişkeni ayarlanmamış")
	}
	if supabaseAnonKey == "" {
		return nil, fmt.Errorf("SUPABASE_ANON_KEY ortam değişkeni ayarlanmamış")
	}

	client, err := supabase.NewClient(supabaseURL, supabaseAnonKey, &supabase.ClientOptions{})
	if err != nil {
		return nil, fmt.Errorf("Supabase istemcisi başlatılamadı: %w", err)
	}

	return &SupabaseClient{
		Client: client,
	}, nil
}

// GetClient Supabase istemcisini döndürür
func (sc *SupabaseClient) GetClient() *supabase.Client {
	return sc.Client
}

// HealthCheck istemcinin kullanılabilir olduğunu doğrular
func (sc *SupabaseClient) HealthCheck() error {
	if sc.Client == nil {
		return fmt.Errorf("Supabase istemcisi başlatılmamış")
	}

	fmt.Printf("Supabase istemcisi hazır: %s\n", os.Getenv("SUPABASE_URL"))
	return nil
}
