package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	serviceUC "github.com/princepatel/folio/internal/application/usecase/serviceitem"
)

type ServiceHandler struct {
	listServicesUseCase *serviceUC.ListServicesUseCase
	getServiceUseCase   *serviceUC.GetServiceUseCase
}

func NewServiceHandler(listUC *serviceUC.ListServicesUseCase, getUC *serviceUC.GetServiceUseCase) *ServiceHandler {
	return &ServiceHandler{
		listServicesUseCase: listUC,
		getServiceUseCase:   getUC,
	}
}

func (h *ServiceHandler) ListServices(c *gin.Context) {
	output, err := h.listServicesUseCase.Execute(c.Request.Context(), serviceUC.ListServicesInput{})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ToServiceDTOs(output.Services))
}

func (h *ServiceHandler) ListFeaturedServices(c *gin.Context) {
	output, err := h.listServicesUseCase.Execute(c.Request.Context(), serviceUC.ListServicesInput{FeaturedOnly: true})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ToServiceDTOs(output.Services))
}

func (h *ServiceHandler) GetService(c *gin.Context) {
	input := serviceUC.GetServiceInput{Slug: c.Param("slug")}
	output, err := h.getServiceUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ToServiceDTO(output.Service))
}
