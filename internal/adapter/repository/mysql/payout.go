package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "fieldsight-backend/internal/domain/payout"
	"fieldsight-backend/internal/listing"
)

type PayoutRepository struct{ db *gorm.DB }

func NewPayoutRepository(db *gorm.DB) *PayoutRepository { return &PayoutRepository{db: db} }

func (r *PayoutRepository) List(ctx context.Context, q listing.Query) ([]domain.Report, error) {
	var out []domain.Report
	res := applyQuery(r.db.WithContext(ctx).Model(&domain.Report{}), q).Find(&out)
	return out, res.Error
}

func (r *PayoutRepository) GetByReportID(ctx context.Context, reportID string) (*domain.Report, error) {
	var out domain.Report
	res := r.db.WithContext(ctx).Where("report_id = ?", reportID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	return &out, res.Error
}

func (r *PayoutRepository) Create(ctx context.Context, rep *domain.Report) error {
	return r.db.WithContext(ctx).Create(rep).Error
}

func (r *PayoutRepository) Update(ctx context.Context, scope listing.Scope, ownerID string, rep *domain.Report) error {
	tx := r.db.WithContext(ctx).Model(&domain.Report{}).Where("report_id = ?", rep.ReportID)
	if scope == listing.ScopeOwn {
		tx = tx.Where("created_by = ?", ownerID)
	}
	res := tx.Updates(map[string]any{
		"month":             rep.Month,
		"financier":         rep.Financier,
		"loan_amount":       rep.LoanAmount,
		"payout_percentage": rep.PayoutPercentage,
		"amount_paid":       rep.AmountPaid,
		"less_tds":          rep.LessTDS,
		"nett":              rep.Nett,
		"bank_details":      rep.BankDetails,
		"pan":               rep.PAN,
		"sm_name":           rep.SMName,
		"contact_no":        rep.ContactNo,
		"mail_sent":         rep.MailSent,
		"payment_status":    rep.PaymentStatus,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PayoutRepository) Delete(ctx context.Context, reportID string) error {
	res := r.db.WithContext(ctx).Where("report_id = ?", reportID).Delete(&domain.Report{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
