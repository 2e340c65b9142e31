package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManifest_CoversEveryShape(t *testing.T) {
	names := make(map[string]bool)
	for _, s := range Manifest() {
		names[s.Name] = true
	}
	for _, want := range []string{
		"project", "post", "author", "service",
		"about", "contact", "timeline", "officialDocument",
	} {
		assert.True(t, names[want], "missing shape %q", want)
	}
}

func TestLookup(t *testing.T) {
	shape, ok := Lookup("project")
	require.True(t, ok)
	assert.Equal(t, "Project", shape.Title)
	assert.False(t, shape.Singleton)

	about, ok := Lookup("about")
	require.True(t, ok)
	assert.True(t, about.Singleton)

	_, ok = Lookup("nope")
	assert.False(t, ok)
}

func TestProjectCategoryEnumIsClosed(t *testing.T) {
	shape, ok := Lookup("project")
	require.True(t, ok)

	var category Field
	for _, f := range shape.Fields {
		if f.Name == "category" {
			category = f
		}
	}
	require.NotEmpty(t, category.Enum)

	values := make([]any, 0, len(category.Enum))
	for _, v := range category.Enum {
		values = append(values, v.Value)
	}
	assert.ElementsMatch(t, []any{"web", "mobile", "design", "other"}, values)
}

func TestVerify_ReportsMissingRequiredFields(t *testing.T) {
	missing, err := Verify("timeline", map[string]any{
		"year":  "2024",
		"title": "Senior Engineer",
		// company and description absent, order nil
		"order": nil,
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"company", "description", "order"}, missing)
}

func TestVerify_CompleteDocumentPasses(t *testing.T) {
	missing, err := Verify("timeline", map[string]any{
		"year":        "2024",
		"title":       "Senior Engineer",
		"company":     "Acme",
		"description": "Led the platform team.",
		"order":       1,
	})
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestVerify_UnknownShapeErrors(t *testing.T) {
	_, err := Verify("nope", map[string]any{})
	assert.Error(t, err)
}
