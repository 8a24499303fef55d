package firestore

import (
	"context"
	"fmt"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
)

type FirestoreClient struct {
	client *firestore.Client
}

// NewFirestoreClient yeni bir Firestore istemcisi oluşturur.
// Cloud Run üzerinde varsayılan kimlik kullanılır, yerelde kimlik dosyası aranır.
func NewFirestoreClient(ctx context.Context, projectID string) (*FirestoreClient, error) {
	var client *firestore.Client
	var err error

	isCloudRun := os.Getenv("K_SERVICE") != ""

	if isCloudRun {
		log.Printf("☁️ Cloud Run ortamı: varsayılan kimlik doğrulama kullanılıyor")
		client, err = firestore.NewClient(ctx, projectID)
		if err != nil {
			return nil, fmt.Errorf("Firestore istemcisi varsayılan kimlikle başlatılamadı: %w", err)
		}
		log.Printf("✅ Firestore istemcisi hazır: %s (Cloud Run)", projectID)
	} else {
		credentialsFile := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")

		if credentialsFile == "" {
			credentialsFile = "engelsiz-firestore-key.json"
		}

		if _, fileErr := os.Stat(credentialsFile); fileErr != nil {
			log.Printf("⚠️ Kimlik dosyası bulunamadı: %s, varsayılan kimlik deneniyor", credentialsFile)
			client, err = firestore.NewClient(ctx, projectID)
		} else {
			log.Printf("📄 Kimlik dosyası kullanılıyor: %s", credentialsFile)
			opt := option.WithCredentialsFile(credentialsFile)
			client, err = firestore.NewClient(ctx, projectID, opt)
		}

		if err != nil {
			return nil, fmt.Errorf("Firestore istemcisi başlatılamadı: %w", err)
		}
		log.Printf("✅ Firestore istemcisi hazır: %s", projectID)
	}

	return &FirestoreClient{client: client}, nil
}

func (fc *FirestoreClient) Close() error {
	return fc.client.Close()
}

func (fc *FirestoreClient) GetClient() *firestore.Client {
	return fc.client
}
