package branding

import (
	"context"

	domain "fieldsight-backend/internal/domain/branding"
)

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

type Input struct {
	CompanyName  string `json:"company_name"`
	Address      string `json:"address"`
	ContactEmail string `json:"contact_email"`
	LogoURL      string `json:"logo_url"`
}

func (u *Usecase) Get(ctx context.Context) (*domain.HeaderDetails, error) {
	return u.repo.Get(ctx)
}

func (u *Usecase) Update(ctx context.Context, in Input) (*domain.HeaderDetails, error) {
	h := &domain.HeaderDetails{
		ID:           1,
		CompanyName:  in.CompanyName,
		Address:      in.Address,
		ContactEmail: in.ContactEmail,
		LogoURL:      in.LogoURL,
	}
	if err := u.repo.Upsert(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}
