package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	projectUC "github.com/princepatel/folio/internal/application/usecase/project"
	"github.com/princepatel/folio/internal/domain/project"
	"github.com/princepatel/folio/pkg/apperror"
	"github.com/princepatel/folio/pkg/logger"
)

type fakeProjectRepo struct {
	projects []*project.Project
	err      error
}

func (f *fakeProjectRepo) ListAll(ctx context.Context) ([]*project.Project, error) {
	return f.projects, f.err
}
func (f *fakeProjectRepo) ListFeatured(ctx context.Context) ([]*project.Project, error) {
	return f.projects, f.err
}
func (f *fakeProjectRepo) ListByCategory(ctx context.Context, category string) ([]*project.Project, error) {
	var out []*project.Project
	for _, p := range f.projects {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, f.err
}
func (f *fakeProjectRepo) GetBySlug(ctx context.Context, slug string) (*project.Project, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.projects {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, apperror.NewNotFound("project", slug)
}

func newProjectRouter(repo project.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewProjectHandler(
		projectUC.NewListProjectsUseCase(repo),
		projectUC.NewListFeaturedProjectsUseCase(repo),
		projectUC.NewGetProjectUseCase(repo, nil, logger.NewNop()),
	)
	router := gin.New()
	router.GET("/api/projects", handler.ListProjects)
	router.GET("/api/projects/featured", handler.ListFeaturedProjects)
	router.GET("/api/projects/:slug", handler.GetProject)
	return router
}

func TestProjectHandler_ListProjects(t *testing.T) {
	router := newProjectRouter(&fakeProjectRepo{projects: []*project.Project{
		{Slug: "one", Title: "One", Category: "web-development", Technologies: []string{}},
		{Slug: "two", Title: "Two", Category: "open-source", Technologies: []string{}},
	}})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Projects   []ProjectSummaryDTO `json:"projects"`
		Categories []string            `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Projects, 2)
	assert.Equal(t, []string{"web-development", "open-source"}, body.Categories)
}

func TestProjectHandler_ListProjects_FiltersByCategory(t *testing.T) {
	router := newProjectRouter(&fakeProjectRepo{projects: []*project.Project{
		{Slug: "one", Category: "web-development", Technologies: []string{}},
		{Slug: "two", Category: "open-source", Technologies: []string{}},
	}})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/projects?category=open-source", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Projects []ProjectSummaryDTO `json:"projects"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Projects, 1)
	assert.Equal(t, "two", body.Projects[0].Slug)
}

func TestProjectHandler_GetProject_UnknownSlugIs404(t *testing.T) {
	router := newProjectRouter(&fakeProjectRepo{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/projects/missing", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "not found", body["error"])
	assert.Equal(t, false, body["retryable"])
}

func TestProjectHandler_GetProject_UpstreamFailureIs502(t *testing.T) {
	router := newProjectRouter(&fakeProjectRepo{err: apperror.NewUnavailable("store down", nil)})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/projects/any", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadGateway, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["retryable"])
}
