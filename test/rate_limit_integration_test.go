package test

import (
	"log"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestComplaintRateLimit şikayet oluşturma uçlarındaki hız sınırını doğrular.
// Kova 10 isteklik patlamaya izin verir, arka arkaya gelen fazlası 429 alır.
func TestComplaintRateLimit(t *testing.T) {
	log.Printf("🧪 Hız sınırı testi başladı")
	s := setupAPIServer(t)

	var ok, limited int
	for i := 0; i < 15; i++ {
		w := s.postJSON(t, "/complaints/json", complaintPayload("diger"), "")
		switch w.Code {
		case http.StatusOK:
			ok++
		case http.StatusTooManyRequests:
			limited++
			assert.Equal(t, "Çok fazla istek gönderildi. Lütfen daha sonra tekrar deneyin.", errorMessage(t, w))
		default:
			t.Fatalf("beklenmeyen durum kodu: %d %s", w.Code, w.Body.String())
		}
	}

	assert.GreaterOrEqual(t, ok, 10, "kova ilk istekleri geçirmeli")
	assert.GreaterOrEqual(t, limited, 1, "kova dolunca istekler kesilmeli")

	// okuma uçları sınırdan etkilenmez
	w := s.get(t, "/complaints", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
