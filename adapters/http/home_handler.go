package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	homeUC "github.com/princepatel/folio/internal/application/usecase/home"
)

type HomeHandler struct {
	homeUseCase *homeUC.HomeUseCase
}

func NewHomeHandler(uc *homeUC.HomeUseCase) *HomeHandler {
	return &HomeHandler{homeUseCase: uc}
}

func (h *HomeHandler) GetHome(c *gin.Context) {
	output, err := h.homeUseCase.Execute(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ToHomeDTO(output))
}
