package http

import (
	"context"
	stdhttp "net/http"
	"strings"
	"testing"

	domain "fieldsight-backend/internal/domain/submission"
	"fieldsight-backend/internal/testutil/submissionmock"
	uc "fieldsight-backend/internal/usecase/submission"
)

func TestSubmissionCreate_AnonymousIntake(t *testing.T) {
	e := newEchoWithValidator()

	var created *domain.Submission
	repo := &submissionmock.Repo{
		CreateFn: func(ctx context.Context, s *domain.Submission) error {
			created = s
			return nil
		},
	}
	h := NewSubmissionHandler(uc.NewUsecase(repo))
	e.POST("/submissions", h.Create)

	// no Authorization header at all
	rec := doReq(t, e, stdhttp.MethodPost, "/submissions", mustJSON(t, map[string]string{
		"name":    "Ravi Kumar",
		"address": "12 Main Road, Madurai",
		"mobile":  "9876543210",
		"summary": "Interested in field agent work",
	}), "")
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201; body=%s", rec.Code, rec.Body.String())
	}
	if created == nil || created.Status != domain.StatusPending {
		t.Fatalf("created: %+v", created)
	}
}

func TestSubmissionCreate_MissingField(t *testing.T) {
	e := newEchoWithValidator()
	h := NewSubmissionHandler(uc.NewUsecase(&submissionmock.Repo{}))
	e.POST("/submissions", h.Create)

	rec := doReq(t, e, stdhttp.MethodPost, "/submissions", mustJSON(t, map[string]string{
		"name": "Ravi Kumar",
	}), "")
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestSubmissionList(t *testing.T) {
	e := newEchoWithValidator()
	repo := &submissionmock.Repo{
		ListFn: func(ctx context.Context) ([]domain.Submission, error) {
			return []domain.Submission{
				{SubmissionID: strings.Repeat("1", 32), Name: "One", Status: domain.StatusPending},
				{SubmissionID: strings.Repeat("2", 32), Name: "Two", Status: domain.StatusApproved},
			}, nil
		},
	}
	h := NewSubmissionHandler(uc.NewUsecase(repo))
	e.GET("/admin/submissions", h.List)

	rec := doReq(t, e, stdhttp.MethodGet, "/admin/submissions", nil, "")
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body struct {
		Rows []domain.Submission `json:"rows"`
	}
	decodeBody(t, rec, &body)
	if len(body.Rows) != 2 {
		t.Fatalf("rows: %+v", body.Rows)
	}
}

func TestSubmissionApprove_Success(t *testing.T) {
	e := newEchoWithValidator()
	stored := &domain.Submission{SubmissionID: strings.Repeat("3", 32), Status: domain.StatusPending}
	repo := &submissionmock.Repo{
		GetBySubmissionIDFn: func(ctx context.Context, id string) (*domain.Submission, error) {
			return stored, nil
		},
	}
	h := NewSubmissionHandler(uc.NewUsecase(repo))
	e.POST("/admin/submissions/:submission_id/approve", h.Approve)

	rec := doReq(t, e, stdhttp.MethodPost, "/admin/submissions/"+stored.SubmissionID+"/approve", nil, "")
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200; body=%s", rec.Code, rec.Body.String())
	}
	var got domain.Submission
	decodeBody(t, rec, &got)
	if got.Status != domain.StatusApproved {
		t.Fatalf("status = %q", got.Status)
	}
}

func TestSubmissionReject_AlreadyReviewed(t *testing.T) {
	e := newEchoWithValidator()
	repo := &submissionmock.Repo{
		GetBySubmissionIDFn: func(ctx context.Context, id string) (*domain.Submission, error) {
			return &domain.Submission{SubmissionID: id, Status: domain.StatusApproved}, nil
		},
	}
	h := NewSubmissionHandler(uc.NewUsecase(repo))
	e.POST("/admin/submissions/:submission_id/reject", h.Reject)

	rec := doReq(t, e, stdhttp.MethodPost, "/admin/submissions/"+strings.Repeat("4", 32)+"/reject", nil, "")
	if rec.Code != stdhttp.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
	var er ErrorResponse
	decodeBody(t, rec, &er)
	if er.Error != "already reviewed" {
		t.Fatalf("error = %q", er.Error)
	}
}

func TestSubmissionApprove_Unknown(t *testing.T) {
	e := newEchoWithValidator()
	h := NewSubmissionHandler(uc.NewUsecase(&submissionmock.Repo{}))
	e.POST("/admin/submissions/:submission_id/approve", h.Approve)

	rec := doReq(t, e, stdhttp.MethodPost, "/admin/submissions/"+strings.Repeat("5", 32)+"/approve", nil, "")
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
