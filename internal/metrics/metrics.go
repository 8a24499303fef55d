package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// En yakın durak sorgularının sonuç etiketleri.
const (
	OutcomeFound      = "found"
	OutcomeNotFound   = "not_found"
	OutcomeInvalid    = "invalid"
	OutcomeIncomplete = "incomplete"
)

// Metrics API genelindeki Prometheus sayaçlarını bir arada tutar.
type Metrics struct {
	RequestsTotal      *prometheus.CounterVec
	RequestSeconds     *prometheus.HistogramVec
	ComplaintsTotal    *prometheus.CounterVec
	NearestStopQueries *prometheus.CounterVec
	LocateSeconds      prometheus.Histogram
	RateLimited        prometheus.Counter
}

// New sayaçları oluşturup verilen kayıt defterine bağlar.
func New(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		RequestsTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "erisim_http_requests_total",
			Help: "HTTP isteklerinin yöntem, yol ve durum koduna göre sayısı.",
		}, []string{"method", "path", "status"}),
		RequestSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "erisim_http_request_duration_seconds",
			Help:    "HTTP isteklerinin saniye cinsinden süresi.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
		ComplaintsTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "erisim_complaints_created_total",
			Help: "Oluşturulan şikayetlerin aciliyet seviyesine göre sayısı.",
		}, []string{"urgency"}),
		NearestStopQueries: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "erisim_nearest_stop_queries_total",
			Help: "En yakın durak sorgularının sonuca göre sayısı.",
		}, []string{"outcome"}),
		LocateSeconds: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "erisim_point_locate_duration_seconds",
			Help:    "Koordinattan grid hücresi bulma süresi.",
			Buckets: prometheus.DefBuckets,
		}),
		RateLimited: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "erisim_rate_limited_total",
			Help: "Hız sınırına takılan isteklerin sayısı.",
		}),
	}
}
