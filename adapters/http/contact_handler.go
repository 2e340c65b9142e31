package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	contactUC "github.com/princepatel/folio/internal/application/usecase/contact"
	"github.com/princepatel/folio/pkg/apperror"
)

type ContactHandler struct {
	getContactInfoUseCase *contactUC.GetContactInfoUseCase
	submitContactUseCase  *contactUC.SubmitContactUseCase
}

func NewContactHandler(getUC *contactUC.GetContactInfoUseCase, submitUC *contactUC.SubmitContactUseCase) *ContactHandler {
	return &ContactHandler{
		getContactInfoUseCase: getUC,
		submitContactUseCase:  submitUC,
	}
}

func (h *ContactHandler) GetContactInfo(c *gin.Context) {
	output, err := h.getContactInfoUseCase.Execute(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ToContactInfoDTO(output.Info))
}

// SubmitContact validates the form before anything leaves the server; an
// invalid submission is rejected without an outbound call.
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperror.NewInvalidInput("name, valid email and message are required", err))
		return
	}

	input := contactUC.SubmitContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	output, err := h.submitContactUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"submission_id": output.SubmissionID,
	})
}
