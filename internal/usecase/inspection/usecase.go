package inspection

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "fieldsight-backend/internal/domain/inspection"
	"fieldsight-backend/internal/listing"
	"fieldsight-backend/pkg/id"
)

var ErrMissingField = errors.New("inspection: missing required field")

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

// Input carries a create/update payload. Numeric fields arrive as
// strings and coerce with fallback 0; malformed numbers are accepted,
// not rejected (the forms have always worked this way).
type Input struct {
	Date          string `json:"date"`
	LoanAcNo      string `json:"loan_ac_no"`
	CustomerName  string `json:"customer_name"`
	LoanAmount    string `json:"loan_amount"`
	Location      string `json:"location"`
	Region        string `json:"region"`
	State         string `json:"state"`
	LARRemarks    string `json:"lar_remarks"`
	PaymentStatus string `json:"payment_status"`
	InvoiceStatus string `json:"invoice_status"`
}

type ListResult struct {
	Rows []domain.Report `json:"rows"`
	// Generation is the filter revision the query was built from; a
	// client holding a newer revision discards this response instead
	// of overwriting fresher data with it.
	Generation uint64 `json:"generation"`
}

func (in Input) validate() error {
	required := map[string]string{
		"loan_ac_no":    in.LoanAcNo,
		"customer_name": in.CustomerName,
		"location":      in.Location,
		"region":        in.Region,
		"state":         in.State,
	}
	for field, v := range required {
		if v == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, field)
		}
	}
	return nil
}

func (in Input) apply(r *domain.Report) error {
	date := time.Now().UTC()
	if in.Date != "" {
		d, err := time.Parse("2006-01-02", in.Date)
		if err != nil {
			return fmt.Errorf("inspection: bad date %q", in.Date)
		}
		date = d
	}
	r.Date = date
	r.LoanAcNo = in.LoanAcNo
	r.CustomerName = in.CustomerName
	r.LoanAmount = listing.CoerceFloat(in.LoanAmount)
	r.Location = in.Location
	r.Region = in.Region
	r.State = in.State
	r.LARRemarks = in.LARRemarks
	r.PaymentStatus = domain.PaymentStatus(in.PaymentStatus)
	if in.PaymentStatus == "" {
		r.PaymentStatus = domain.PaymentPending
	}
	r.InvoiceStatus = domain.InvoiceStatus(in.InvoiceStatus)
	if in.InvoiceStatus == "" {
		r.InvoiceStatus = domain.InvoicePending
	}
	return nil
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
	if err := in.apply(r); err != nil {
		return nil, err
	}
	if err := u.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Update edits one report. With an own scope the write is constrained to
// rows owned by ownerID; a non-owned target reports not-found rather
// than revealing whether the row exists.
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
	if err := in.apply(existing); err != nil {
		return nil, err
	}
	if err := u.repo.Update(ctx, scope, ownerID, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (u *Usecase) Delete(ctx context.Context, reportID string) error {
	return u.repo.Delete(ctx, reportID)
}

// Columns is the displayed-column set shared by the list view, the
// in-memory search and the spreadsheet export.
func Columns() []listing.Column[domain.Report] {
	return []listing.Column[domain.Report]{
		{Key: "date", Label: "Date", Kind: listing.KindDate, Value: func(r domain.Report) any { return r.Date }},
		{Key: "loan_ac_no", Label: "Loan A/C No", Kind: listing.KindText, Value: func(r domain.Report) any { return r.LoanAcNo }},
		{Key: "customer_name", Label: "Customer Name", Kind: listing.KindText, Value: func(r domain.Report) any { return r.CustomerName }},
		{Key: "loan_amount", Label: "Loan Amount", Kind: listing.KindCurrency, Value: func(r domain.Report) any { return r.LoanAmount }},
		{Key: "location", Label: "Location", Kind: listing.KindText, Value: func(r domain.Report) any { return r.Location }},
		{Key: "region", Label: "Region", Kind: listing.KindEnum, Value: func(r domain.Report) any { return r.Region }},
		{Key: "lar_remarks", Label: "LAR Remarks", Kind: listing.KindText, Value: func(r domain.Report) any { return r.LARRemarks }},
		{Key: "state", Label: "State", Kind: listing.KindEnum, Value: func(r domain.Report) any { return r.State }},
		{Key: "payment_status", Label: "Payment Status", Kind: listing.KindEnum, Value: func(r domain.Report) any { return string(r.PaymentStatus) }},
		{Key: "invoice_status", Label: "Invoice Status", Kind: listing.KindEnum, Value: func(r domain.Report) any { return string(r.InvoiceStatus) }},
	}
}

// Filters declares the inspection list filter fields with their
// sentinels; values at a sentinel contribute no query clause.
func Filters() *listing.FilterState {
	return listing.NewFilterState(
		listing.FieldSpec{Param: "date_from", Column: "date", Op: listing.OpGte, Sentinel: ""},
		listing.FieldSpec{Param: "date_to", Column: "date", Op: listing.OpLte, Sentinel: ""},
		listing.FieldSpec{Param: "region", Column: "region", Op: listing.OpEq, Sentinel: "All Regions"},
		listing.FieldSpec{Param: "state", Column: "state", Op: listing.OpEq, Sentinel: "All States"},
		listing.FieldSpec{Param: "payment_status", Column: "payment_status", Op: listing.OpEq, Sentinel: "All Status"},
	)
}
