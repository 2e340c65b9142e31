package contentstore

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/princepatel/folio/pkg/apperror"
	"github.com/princepatel/folio/pkg/logger"
)

func TestContentProjectRepo_ListAll_MapsDocuments(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result": [
			{
				"_id": "p1",
				"title": "Checkout Revamp",
				"slug": {"current": "checkout-revamp"},
				"mainImage": {"asset": {"_ref": "image-abc123-800x600-png"}},
				"category": "web-development",
				"technologies": ["Go", "Redis"],
				"featured": true
			},
			{
				"_id": "p2",
				"title": "Bare Bones",
				"slug": {"current": "bare-bones"}
			}
		]}`))
	})
	repo := NewContentProjectRepo(client, NewAssetResolver("projid", "production"), logger.NewNop())

	projects, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 2)

	first := projects[0]
	assert.Equal(t, "checkout-revamp", first.Slug)
	assert.Equal(t, "https://cdn.sanity.io/images/projid/production/abc123-800x600.png", first.MainImageURL)
	assert.Equal(t, []string{"Go", "Redis"}, first.Technologies)
	assert.True(t, first.Featured)

	// Absent fields default rather than stay nil.
	second := projects[1]
	assert.Empty(t, second.MainImageURL)
	assert.Equal(t, []string{}, second.Technologies)
}

func TestContentProjectRepo_ListAll_SkipsUnresolvableGalleryImages(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result": [
			{
				"_id": "p1",
				"title": "Gallery",
				"slug": {"current": "gallery"},
				"images": [
					{"asset": {"_ref": "image-good111-10x10-jpg"}},
					{"asset": {"_ref": "image-broken"}},
					{"asset": {"_ref": "image-good222-10x10-jpg"}}
				]
			}
		]}`))
	})
	repo := NewContentProjectRepo(client, NewAssetResolver("projid", "production"), logger.NewNop())

	projects, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, []string{
		"https://cdn.sanity.io/images/projid/production/good111-10x10.jpg",
		"https://cdn.sanity.io/images/projid/production/good222-10x10.jpg",
	}, projects[0].ImageURLs)
}

func TestContentProjectRepo_ListFeatured_UsesCappedQuery(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		w.Write([]byte(`{"result": []}`))
	})
	repo := NewContentProjectRepo(client, NewAssetResolver("projid", "production"), logger.NewNop())

	projects, err := repo.ListFeatured(context.Background())
	require.NoError(t, err)
	assert.Empty(t, projects)
	assert.Contains(t, gotQuery, "featured == true")
	assert.Contains(t, gotQuery, "[0...6]")
}

func TestContentProjectRepo_GetBySlug_PassesSlugParam(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, `"checkout-revamp"`, r.URL.Query().Get("$slug"))
		w.Write([]byte(`{"result": {"_id": "p1", "title": "Checkout Revamp", "slug": {"current": "checkout-revamp"}}}`))
	})
	repo := NewContentProjectRepo(client, NewAssetResolver("projid", "production"), logger.NewNop())

	p, err := repo.GetBySlug(context.Background(), "checkout-revamp")
	require.NoError(t, err)
	assert.Equal(t, "Checkout Revamp", p.Title)
}

func TestContentProjectRepo_GetBySlug_MissingIsNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result": null}`))
	})
	repo := NewContentProjectRepo(client, NewAssetResolver("projid", "production"), logger.NewNop())

	_, err := repo.GetBySlug(context.Background(), "nope")
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}
