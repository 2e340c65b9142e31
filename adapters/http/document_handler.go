package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	documentUC "github.com/princepatel/folio/internal/application/usecase/document"
	"github.com/princepatel/folio/internal/domain/document"
)

type DocumentHandler struct {
	listDocumentsUseCase *documentUC.ListDocumentsUseCase
}

func NewDocumentHandler(listUC *documentUC.ListDocumentsUseCase) *DocumentHandler {
	return &DocumentHandler{listDocumentsUseCase: listUC}
}

func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	input := documentUC.ListDocumentsInput{
		Category: document.Category(c.Query("category")),
	}
	output, err := h.listDocumentsUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ToDocumentDTOs(output.Documents))
}
