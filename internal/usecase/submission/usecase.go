package submission

import (
	"context"
	"errors"
	"fmt"

	domain "fieldsight-backend/internal/domain/submission"
	"fieldsight-backend/pkg/id"
)

var ErrMissingField = errors.New("submission: missing required field")

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

type CreateInput struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Mobile  string `json:"mobile"`
	Summary string `json:"summary"`
}

// Create accepts an anonymous public submission; it always starts out
// pending.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*domain.Submission, error) {
	required := map[string]string{
		"name":    in.Name,
		"address": in.Address,
		"mobile":  in.Mobile,
	}
	for field, v := range required {
		if v == "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingField, field)
		}
	}
	s := &domain.Submission{
		SubmissionID: id.NewID32(),
		Name:         in.Name,
		Address:      in.Address,
		Mobile:       in.Mobile,
		Summary:      in.Summary,
		Status:       domain.StatusPending,
	}
	if err := u.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (u *Usecase) List(ctx context.Context) ([]domain.Submission, error) {
	return u.repo.List(ctx)
}

func (u *Usecase) Approve(ctx context.Context, submissionID string) (*domain.Submission, error) {
	return u.transition(ctx, submissionID, domain.StatusApproved)
}

func (u *Usecase) Reject(ctx context.Context, submissionID string) (*domain.Submission, error) {
	return u.transition(ctx, submissionID, domain.StatusRejected)
}

// transition moves a pending submission to a terminal status. Approved
// and rejected rows never move again.
func (u *Usecase) transition(ctx context.Context, submissionID string, to domain.Status) (*domain.Submission, error) {
	s, err := u.repo.GetBySubmissionID(ctx, submissionID)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	if s.Status != domain.StatusPending {
		return nil, domain.ErrTerminalState
	}
	s.Status = to
	if err := u.repo.Save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}
