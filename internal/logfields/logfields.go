// Package logfields holds the canonical slog attribute keys shared across packages.
package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeySlug         = "slug"
	KeyVehicle      = "vehicle"
	KeyVehicleType  = "vehicle_type"
	KeySection      = "section"
	KeyProvider     = "provider"
	KeyQualityScore = "quality_score"
	KeyTemplate     = "template"
	KeyEvent        = "event"
	KeyRunID        = "run_id"
	KeyStage        = "stage"
	KeyCount        = "count"
	KeyPath         = "path"
	KeyDurationMS   = "duration_ms"
	KeyError        = "error"
)

func Slug(s string) slog.Attr         { return slog.String(KeySlug, s) }
func Vehicle(v string) slog.Attr      { return slog.String(KeyVehicle, v) }
func VehicleType(t string) slog.Attr  { return slog.String(KeyVehicleType, t) }
func Section(s string) slog.Attr      { return slog.String(KeySection, s) }
func Provider(p string) slog.Attr     { return slog.String(KeyProvider, p) }
func QualityScore(n int) slog.Attr    { return slog.Int(KeyQualityScore, n) }
func Template(t string) slog.Attr     { return slog.String(KeyTemplate, t) }
func Event(e string) slog.Attr        { return slog.String(KeyEvent, e) }
func RunID(id string) slog.Attr       { return slog.String(KeyRunID, id) }
func Stage(name string) slog.Attr     { return slog.String(KeyStage, name) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
