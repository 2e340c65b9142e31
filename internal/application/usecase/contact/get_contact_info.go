package contact

import (
	"context"
	"fmt"

	"github.com/princepatel/folio/internal/domain/contact"
)

type GetContactInfoUseCase struct {
	contactRepo contact.Repository
}

func NewGetContactInfoUseCase(repo contact.Repository) *GetContactInfoUseCase {
	return &GetContactInfoUseCase{contactRepo: repo}
}

type GetContactInfoOutput struct {
	Info *contact.Info
}

func (uc *GetContactInfoUseCase) Execute(ctx context.Context) (*GetContactInfoOutput, error) {
	info, err := uc.contactRepo.GetInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("get contact info failed: %w", err)
	}
	return &GetContactInfoOutput{Info: info}, nil
}
