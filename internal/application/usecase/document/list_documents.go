package document

import (
	"context"
	"fmt"

	"github.com/princepatel/folio/internal/domain/document"
)

type ListDocumentsUseCase struct {
	documentRepo document.Repository
}

func NewListDocumentsUseCase(repo document.Repository) *ListDocumentsUseCase {
	return &ListDocumentsUseCase{documentRepo: repo}
}

type ListDocumentsInput struct {
	Category document.Category
}

type ListDocumentsOutput struct {
	Documents []*document.Document
}

func (uc *ListDocumentsUseCase) Execute(ctx context.Context, input ListDocumentsInput) (*ListDocumentsOutput, error) {
	var (
		docs []*document.Document
		err  error
	)
	if input.Category != "" {
		docs, err = uc.documentRepo.ListByCategory(ctx, input.Category)
	} else {
		docs, err = uc.documentRepo.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("get document list failed: %w", err)
	}
	return &ListDocumentsOutput{Documents: docs}, nil
}
