package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentSections_AlwaysSerializesNineKeys(t *testing.T) {
	data, err := json.Marshal(ContentSections{})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Len(t, decoded, 9)
	for _, name := range SectionOrder {
		assert.Contains(t, decoded, string(name))
	}
}

func TestContentSections_Has(t *testing.T) {
	c := ContentSections{
		Introduction: "Texto",
		FAQs:         []FAQ{{Question: "Q", Answer: "A"}},
		WarrantyInfo: WarrantyInfo{Term: "3 anos"},
	}

	assert.True(t, c.Has(SectionIntroduction))
	assert.True(t, c.Has(SectionFAQs))
	assert.True(t, c.Has(SectionWarrantyInfo))
	assert.False(t, c.Has(SectionConclusion))
	assert.False(t, c.Has(SectionPreventiveMaintenance))
	assert.False(t, c.Has(SectionName("unknown")))
}

func TestContentSections_Apply(t *testing.T) {
	c := ContentSections{Introduction: "old", Conclusion: "keep"}
	intro := "new"

	out, updated := c.Apply(SectionsPatch{
		Introduction: &intro,
		FAQs:         []FAQ{{Question: "Q", Answer: "A"}},
	})

	assert.Equal(t, "new", out.Introduction)
	assert.Equal(t, "keep", out.Conclusion)
	assert.Len(t, out.FAQs, 1)
	assert.Equal(t, []SectionName{SectionIntroduction, SectionFAQs}, updated)
	assert.Equal(t, "old", c.Introduction, "original must not change")
}

func TestContentSections_Keys(t *testing.T) {
	keys := ContentSections{}.Keys()
	assert.Equal(t, SectionOrder, keys)

	keys[0] = "mutated"
	assert.Equal(t, SectionIntroduction, SectionOrder[0])
}
