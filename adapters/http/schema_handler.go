package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/princepatel/folio/internal/schema"
)

type SchemaHandler struct{}

func NewSchemaHandler() *SchemaHandler {
	return &SchemaHandler{}
}

// GetSchema serves the content-shape manifest the studio edits against.
func (h *SchemaHandler) GetSchema(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"shapes": schema.Manifest()})
}
