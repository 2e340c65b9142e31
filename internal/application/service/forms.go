package service

import (
	"context"

	"github.com/princepatel/folio/internal/domain/contact"
)

// FormsGateway relays a contact submission to the external forms service.
type FormsGateway interface {
	Submit(ctx context.Context, submission contact.Submission) error
}
