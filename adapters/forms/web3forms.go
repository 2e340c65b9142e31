package forms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/princepatel/folio/internal/application/service"
	"github.com/princepatel/folio/internal/config"
	"github.com/princepatel/folio/internal/domain/contact"
	"github.com/princepatel/folio/pkg/apperror"
)

// web3FormsGateway posts submissions as multipart form data to the Web3Forms
// endpoint with the configured access key.
type web3FormsGateway struct {
	endpoint   string
	accessKey  string
	httpClient *http.Client
}

func NewWeb3FormsGateway(cfg config.Config) (service.FormsGateway, error) {
	if cfg.Forms.AccessKey == "" {
		return nil, fmt.Errorf("forms access_key has not config")
	}
	return &web3FormsGateway{
		endpoint:   cfg.Forms.Endpoint,
		accessKey:  cfg.Forms.AccessKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}, nil
}

type web3FormsResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (g *web3FormsGateway) Submit(ctx context.Context, submission contact.Submission) error {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	fields := map[string]string{
		"access_key": g.accessKey,
		"name":       submission.Name,
		"email":      submission.Email,
		"subject":    submission.Subject,
		"message":    submission.Message,
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return apperror.NewInternal("cannot encode form submission", err)
		}
	}
	if err := writer.Close(); err != nil {
		return apperror.NewInternal("cannot finalize form submission", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, &body)
	if err != nil {
		return apperror.NewInternal("cannot build form submission request", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return apperror.NewUnavailable("forms service unreachable", err)
	}
	defer resp.Body.Close()

	var result web3FormsResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return apperror.NewUnavailable("cannot decode forms service response", err)
	}
	if !result.Success {
		return apperror.NewUnavailable(fmt.Sprintf("forms service rejected submission: %s", result.Message), nil)
	}
	return nil
}
