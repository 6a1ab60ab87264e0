package metrics

import (
	"sync"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once              sync.Once
	articlesGenerated *prom.CounterVec
	sectionFallbacks  *prom.CounterVec
	qualityScore      prom.Histogram
	articlesRejected  *prom.CounterVec
	variationResets   *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers the metrics on reg. A nil
// registry gets a private one.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{}
	pr.once.Do(func() {
		pr.articlesGenerated = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "review_schedule",
			Name:      "articles_generated_total",
			Help:      "Articles assembled, by vehicle type",
		}, []string{"vehicle_type"})
		pr.sectionFallbacks = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "review_schedule",
			Name:      "section_fallbacks_total",
			Help:      "Sections replaced by fallback content",
		}, []string{"section"})
		pr.qualityScore = prom.NewHistogram(prom.HistogramOpts{
			Namespace: "review_schedule",
			Name:      "quality_score",
			Help:      "Overall quality score of assembled articles",
			Buckets:   []float64{40, 50, 60, 70, 80, 85, 90, 95, 100},
		})
		pr.articlesRejected = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "review_schedule",
			Name:      "articles_rejected_total",
			Help:      "Articles not written, by reason",
		}, []string{"reason"})
		pr.variationResets = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "review_schedule",
			Name:      "variation_resets_total",
			Help:      "Phrase pools exhausted and restarted, by field",
		}, []string{"field"})
		reg.MustRegister(pr.articlesGenerated, pr.sectionFallbacks, pr.qualityScore, pr.articlesRejected, pr.variationResets)
	})
	return pr
}

func (p *PrometheusRecorder) IncArticleGenerated(vehicleType string) {
	if p == nil || p.articlesGenerated == nil {
		return
	}
	p.articlesGenerated.WithLabelValues(vehicleType).Inc()
}

func (p *PrometheusRecorder) IncSectionFallback(section string) {
	if p == nil || p.sectionFallbacks == nil {
		return
	}
	p.sectionFallbacks.WithLabelValues(section).Inc()
}

func (p *PrometheusRecorder) ObserveQualityScore(score int) {
	if p == nil || p.qualityScore == nil {
		return
	}
	p.qualityScore.Observe(float64(score))
}

func (p *PrometheusRecorder) IncArticleRejected(reason string) {
	if p == nil || p.articlesRejected == nil {
		return
	}
	p.articlesRejected.WithLabelValues(reason).Inc()
}

func (p *PrometheusRecorder) IncVariationReset(field string) {
	if p == nil || p.variationResets == nil {
		return
	}
	p.variationResets.WithLabelValues(field).Inc()
}
