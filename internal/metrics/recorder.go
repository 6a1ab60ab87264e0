// Package metrics exposes generation counters and quality histograms.
package metrics

// Recorder defines observability hooks for article generation. Implementations
// may forward to Prometheus; NoopRecorder is the default when metrics are off.
type Recorder interface {
	IncArticleGenerated(vehicleType string)
	IncSectionFallback(section string)
	ObserveQualityScore(score int)
	IncArticleRejected(reason string)
	IncVariationReset(field string)
}

// Rejection reasons used with IncArticleRejected.
const (
	ReasonLowQuality  = "low_quality"
	ReasonInvalid     = "invalid_profile"
	ReasonPersistence = "persistence_error"
	ReasonUnchanged   = "unchanged"
)

// NoopRecorder is a Recorder that does nothing.
type NoopRecorder struct{}

func (NoopRecorder) IncArticleGenerated(string) {}
func (NoopRecorder) IncSectionFallback(string)  {}
func (NoopRecorder) ObserveQualityScore(int)    {}
func (NoopRecorder) IncArticleRejected(string)  {}
func (NoopRecorder) IncVariationReset(string)   {}
