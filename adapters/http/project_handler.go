package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	projectUC "github.com/princepatel/folio/internal/application/usecase/project"
)

type ProjectHandler struct {
	listProjectsUseCase *projectUC.ListProjectsUseCase
	listFeaturedUseCase *projectUC.ListFeaturedProjectsUseCase
	getProjectUseCase   *projectUC.GetProjectUseCase
}

func NewProjectHandler(
	listUC *projectUC.ListProjectsUseCase,
	featuredUC *projectUC.ListFeaturedProjectsUseCase,
	getUC *projectUC.GetProjectUseCase,
) *ProjectHandler {
	return &ProjectHandler{
		listProjectsUseCase: listUC,
		listFeaturedUseCase: featuredUC,
		getProjectUseCase:   getUC,
	}
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	input := projectUC.ListProjectsInput{
		Category: c.Query("category"),
	}
	output, err := h.listProjectsUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"projects":   ToProjectSummaryDTOs(output.Projects),
		"categories": output.Categories,
	})
}

func (h *ProjectHandler) ListFeaturedProjects(c *gin.Context) {
	output, err := h.listFeaturedUseCase.Execute(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ToProjectSummaryDTOs(output.Projects))
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	input := projectUC.GetProjectInput{Slug: c.Param("slug")}
	output, err := h.getProjectUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ToProjectDTO(output.Project))
}
