package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	aboutUC "github.com/princepatel/folio/internal/application/usecase/about"
)

type AboutHandler struct {
	getAboutUseCase     *aboutUC.GetAboutUseCase
	listTimelineUseCase *aboutUC.ListTimelineUseCase
}

func NewAboutHandler(getUC *aboutUC.GetAboutUseCase, timelineUC *aboutUC.ListTimelineUseCase) *AboutHandler {
	return &AboutHandler{getAboutUseCase: getUC, listTimelineUseCase: timelineUC}
}

func (h *AboutHandler) GetAbout(c *gin.Context) {
	output, err := h.getAboutUseCase.Execute(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ToAboutDTO(output.About, output.Timeline))
}

func (h *AboutHandler) ListTimeline(c *gin.Context) {
	output, err := h.listTimelineUseCase.Execute(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	dtos := make([]TimelineEntryDTO, len(output.Entries))
	for i, e := range output.Entries {
		dtos[i] = TimelineEntryDTO{
			Year:        e.Year,
			Title:       e.Title,
			Company:     e.Company,
			Description: e.Description,
		}
	}
	c.JSON(http.StatusOK, dtos)
}
