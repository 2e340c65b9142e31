package contact

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/princepatel/folio/internal/application/service"
	"github.com/princepatel/folio/internal/domain/contact"
	"github.com/princepatel/folio/pkg/logger"
)

type SubmitContactUseCase struct {
	forms  service.FormsGateway
	logger logger.Logger
}

func NewSubmitContactUseCase(forms service.FormsGateway, log logger.Logger) *SubmitContactUseCase {
	return &SubmitContactUseCase{forms: forms, logger: log}
}

type SubmitContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

type SubmitContactOutput struct {
	SubmissionID uuid.UUID
}

// Execute relays a validated submission to the forms service. Field
// validation happens at the HTTP boundary before this runs.
func (uc *SubmitContactUseCase) Execute(ctx context.Context, input SubmitContactInput) (*SubmitContactOutput, error) {
	submission := contact.Submission{
		ID:      uuid.New(),
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
	}

	if err := uc.forms.Submit(ctx, submission); err != nil {
		uc.logger.Error("Contact submission relay failed", err, zap.String("submission_id", submission.ID.String()))
		return nil, err
	}

	uc.logger.Info("Contact submission relayed", zap.String("submission_id", submission.ID.String()))
	return &SubmitContactOutput{SubmissionID: submission.ID}, nil
}
