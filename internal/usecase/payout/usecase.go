package payout

import (
	"context"
	"errors"
	"fmt"

	domain "fieldsight-backend/internal/domain/payout"
	"fieldsight-backend/internal/listing"
	"fieldsight-backend/pkg/id"
)

var ErrMissingField = errors.New("payout: missing required field")

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

// Input mirrors the payout form. All money fields are strings coerced
// with fallback 0. Nett is recomputed from amount_paid - less_tds on
// every write; the field is accepted in the payload for symmetry with
// the form but its value is ignored.
type Input struct {
	Month            string `json:"month"`
	Financier        string `json:"financier"`
	LoanAmount       string `json:"loan_amount"`
	PayoutPercentage string `json:"payout_percentage"`
	AmountPaid       string `json:"amount_paid"`
	LessTDS          string `json:"less_tds"`
	Nett             string `json:"nett"`
	BankDetails      string `json:"bank_details"`
	PAN              string `json:"pan"`
	SMName           string `json:"sm_name"`
	ContactNo        string `json:"contact_no"`
	MailSent         string `json:"mail_sent"`
	PaymentStatus    string `json:"payment_status"`
}

type ListResult struct {
	Rows       []domain.Report `json:"rows"`
	Generation uint64          `json:"generation"`
}

func (in Input) validate() error {
	required := map[string]string{
		"month":     in.Month,
		"financier": in.Financier,
	}
	for field, v := range required {
		if v == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, field)
		}
	}
	return nil
}

func (in Input) apply(r *domain.Report) {
	r.Month = in.Month
	r.Financier = in.Financier
	r.LoanAmount = listing.CoerceFloat(in.LoanAmount)
	r.PayoutPercentage = listing.CoerceFloat(in.PayoutPercentage)
	r.AmountPaid = listing.CoerceFloat(in.AmountPaid)
	r.LessTDS = listing.CoerceFloat(in.LessTDS)
	r.BankDetails = in.BankDetails
	r.PAN = in.PAN
	r.SMName = in.SMName
	r.ContactNo = in.ContactNo
	r.MailSent = in.MailSent
	if r.MailSent == "" {
		r.MailSent = "No"
	}
	r.PaymentStatus = domain.PaymentStatus(in.PaymentStatus)
	if in.PaymentStatus == "" {
		r.PaymentStatus = domain.PaymentPending
	}
	r.Recompute()
}

func (u *Usecase) List(ctx context.Context, q listing.Query) (*ListResult, error) {
	rows, err := u.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}
	return &ListResult{Rows: rows, Generation: q.Generation}, nil
}

func (u *Usecase) Create(ctx context.Context, ownerID string, in Input) (*domain.Report, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	r := &domain.Report{ReportID: id.NewID32(), CreatedBy: ownerID}
	in.apply(r)
	if err := u.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (u *Usecase) Update(ctx context.Context, scope listing.Scope, ownerID, reportID string, in Input) (*domain.Report, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	existing, err := u.repo.GetByReportID(ctx, reportID)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	if scope == listing.ScopeOwn && existing.CreatedBy != ownerID {
		return nil, domain.ErrNotFound
	}
	in.apply(existing)
	if err := u.repo.Update(ctx, scope, ownerID, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (u *Usecase) Delete(ctx context.Context, reportID string) error {
	return u.repo.Delete(ctx, reportID)
}

func Columns() []listing.Column[domain.Report] {
	return []listing.Column[domain.Report]{
		{Key: "month", Label: "Month", Kind: listing.KindEnum, Value: func(r domain.Report) any { return r.Month }},
		{Key: "financier", Label: "Financier", Kind: listing.KindText, Value: func(r domain.Report) any { return r.Financier }},
		{Key: "loan_amount", Label: "Loan Amount", Kind: listing.KindCurrency, Value: func(r domain.Report) any { return r.LoanAmount }},
		{Key: "payout_percentage", Label: "Payout %", Kind: listing.KindCurrency, Value: func(r domain.Report) any { return r.PayoutPercentage }},
		{Key: "amount_paid", Label: "Amount Paid", Kind: listing.KindCurrency, Value: func(r domain.Report) any { return r.AmountPaid }},
		{Key: "less_tds", Label: "Less TDS", Kind: listing.KindCurrency, Value: func(r domain.Report) any { return r.LessTDS }},
		{Key: "nett", Label: "Nett", Kind: listing.KindCurrency, Value: func(r domain.Report) any { return r.Nett }},
		{Key: "bank_details", Label: "Bank Details", Kind: listing.KindText, Value: func(r domain.Report) any { return r.BankDetails }},
		{Key: "pan", Label: "PAN", Kind: listing.KindText, Value: func(r domain.Report) any { return r.PAN }},
		{Key: "sm_name", Label: "SM Name", Kind: listing.KindText, Value: func(r domain.Report) any { return r.SMName }},
		{Key: "contact_no", Label: "Contact No", Kind: listing.KindText, Value: func(r domain.Report) any { return r.ContactNo }},
		{Key: "mail_sent", Label: "Mail Sent", Kind: listing.KindEnum, Value: func(r domain.Report) any { return r.MailSent }},
		{Key: "payment_status", Label: "Payment Status", Kind: listing.KindEnum, Value: func(r domain.Report) any { return string(r.PaymentStatus) }},
	}
}

func Filters() *listing.FilterState {
	return listing.NewFilterState(
		listing.FieldSpec{Param: "month", Column: "month", Op: listing.OpEq, Sentinel: "All Months"},
		listing.FieldSpec{Param: "payment_status", Column: "payment_status", Op: listing.OpEq, Sentinel: "All Status"},
	)
}
