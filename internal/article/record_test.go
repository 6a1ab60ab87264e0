package article

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/review-schedule/internal/events"
	"github.com/jonathan/review-schedule/internal/types"
)

func TestRecord_Publish(t *testing.T) {
	a, rec := newTestAssembler(t)
	ctx := context.Background()
	r, err := a.Create(ctx, corolla())
	require.NoError(t, err)

	assert.True(t, r.Publish(ctx))
	assert.Equal(t, StatusPublished, r.Status)
	require.NotNil(t, r.PublishedAt)
	assert.Equal(t, fixedNow, *r.PublishedAt)

	assert.False(t, r.Publish(ctx), "publishing twice is a no-op")
	assert.Equal(t, StatusPublished, r.Status)

	published := rec.OfType(events.TypeArticlePublished)
	require.Len(t, published, 1)
	assert.Equal(t, events.PublishedPayload{Slug: "toyota-corolla-2024", Vehicle: "Toyota Corolla 2024", QualityScore: 100}, published[0].Payload)
}

func TestRecord_PublishWithoutSink(t *testing.T) {
	r := &Record{Slug: "x", Status: StatusDraft}
	assert.NotPanics(t, func() {
		assert.True(t, r.Publish(context.Background()))
	})
}

func TestRecord_UpdateContent(t *testing.T) {
	a, rec := newTestAssembler(t)
	ctx := context.Background()
	r, err := a.Create(ctx, corolla())
	require.NoError(t, err)
	hashBefore := r.ContentHash()

	empty := ""
	updated := r.UpdateContent(ctx, types.SectionsPatch{
		Conclusion: &empty,
		FAQs:       []types.FAQ{{Question: "a", Answer: "b"}},
	})

	assert.Equal(t, []types.SectionName{types.SectionFAQs, types.SectionConclusion}, updated)
	assert.Equal(t, 75, r.Quality.Completeness)
	assert.Contains(t, r.QualityIssues(), "Missing required section: conclusion")
	assert.NotEqual(t, hashBefore, r.ContentHash())
	assert.Equal(t, 1, r.Metadata.ContentStructure.FAQCount)

	verdict := r.ValidateQuality()
	assert.False(t, verdict.IsValid)
	assert.Contains(t, verdict.Issues, "Missing conclusion")
	assert.Contains(t, verdict.Warnings, "Low FAQ count")

	updates := rec.OfType(events.TypeContentUpdated)
	require.Len(t, updates, 1)
	payload := updates[0].Payload.(events.ContentUpdatedPayload)
	assert.Equal(t, r.Quality.Overall, payload.NewQualityScore)
	assert.Equal(t, []string{"faqs", "conclusion"}, payload.UpdatedSections)
}

func TestRecord_SearchTerms(t *testing.T) {
	r := &Record{Vehicle: types.VehicleProfile{
		Make:        "Honda",
		Model:       "Honda",
		Year:        2023,
		VehicleType: types.VehicleTypeMotorcycle,
		Engine:      "",
		FuelType:    "Flex",
	}}

	assert.Equal(t, []string{"honda", "2023", "motorcycle", "revisão", "manutenção", "cronograma", "flex"}, r.SearchTerms())
}

func TestRecord_Export(t *testing.T) {
	a, _ := newTestAssembler(t)
	r, err := a.Create(context.Background(), corolla())
	require.NoError(t, err)

	t.Run("minimal", func(t *testing.T) {
		assert.Equal(t, Summary{
			Title:        "Cronograma de Revisões do Toyota Corolla 2024",
			Slug:         "toyota-corolla-2024",
			Vehicle:      "Toyota Corolla 2024",
			QualityScore: 100,
			Status:       StatusDraft,
		}, r.Export("minimal"))
	})

	t.Run("storage document", func(t *testing.T) {
		for _, format := range []string{"storage-document", "mongo", "MONGO"} {
			doc, ok := r.Export(format).(StorageDocument)
			require.True(t, ok, format)
			assert.Equal(t, "toyota-corolla-2024", doc.VehicleKey)
			assert.Equal(t, r.ContentHash(), doc.ContentHash)
			assert.Equal(t, r.SearchTerms(), doc.SearchTerms)
			assert.Equal(t, "cronograma-revisoes-toyota-corolla-2024", doc.Slug)
			assert.Equal(t, "revisao-toyota-corolla-2024", doc.NewSlug)
		}
	})

	t.Run("full and unknown", func(t *testing.T) {
		for _, format := range []string{"full", "array", "", "xml"} {
			_, ok := r.Export(format).(Document)
			assert.True(t, ok, format)
		}
	})

	t.Run("json", func(t *testing.T) {
		out, ok := r.Export("json").(string)
		require.True(t, ok)
		assert.True(t, strings.HasPrefix(out, "{\n  \"id\""))
		assert.Contains(t, out, "Cronograma de Revisões")

		var doc map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &doc))
		assert.Equal(t, "review_schedule", doc["domain"])
	})

	t.Run("storage document flattens into one object", func(t *testing.T) {
		data, err := json.Marshal(r.StorageDocument())
		require.NoError(t, err)
		var doc map[string]any
		require.NoError(t, json.Unmarshal(data, &doc))
		assert.Contains(t, doc, "content_hash")
		assert.Contains(t, doc, "quality_metrics")
		assert.NotContains(t, doc, "Document")
	})
}

func TestFromDocument_LegacySlug(t *testing.T) {
	r := FromDocument(Document{NewSlug: "revisao-fiat-uno-2010", CreatedAt: time.Now()})
	assert.Equal(t, "fiat-uno-2010", r.Slug)
}
