package submission

import "context"

type Repository interface {
	Create(ctx context.Context, s *Submission) error
	GetBySubmissionID(ctx context.Context, submissionID string) (*Submission, error)
	List(ctx context.Context) ([]Submission, error)
	Save(ctx context.Context, s *Submission) error
}
