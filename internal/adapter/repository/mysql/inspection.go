package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "fieldsight-backend/internal/domain/inspection"
	"fieldsight-backend/internal/listing"
)

type InspectionRepository struct{ db *gorm.DB }

func NewInspectionRepository(db *gorm.DB) *InspectionRepository {
	return &InspectionRepository{db: db}
}

func (r *InspectionRepository) List(ctx context.Context, q listing.Query) ([]domain.Report, error) {
	var out []domain.Report
	res := applyQuery(r.db.WithContext(ctx).Model(&domain.Report{}), q).Find(&out)
	return out, res.Error
}

func (r *InspectionRepository) GetByReportID(ctx context.Context, reportID string) (*domain.Report, error) {
	var out domain.Report
	res := r.db.WithContext(ctx).Where("report_id = ?", reportID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	return &out, res.Error
}

func (r *InspectionRepository) Create(ctx context.Context, rep *domain.Report) error {
	return r.db.WithContext(ctx).Create(rep).Error
}

// Update constrains the write to the owner when the scope is own; the
// ownership policy is enforced here, at the store boundary, not only in
// the controller above it.
func (r *InspectionRepository) Update(ctx context.Context, scope listing.Scope, ownerID string, rep *domain.Report) error {
	tx := r.db.WithContext(ctx).Model(&domain.Report{}).Where("report_id = ?", rep.ReportID)
	if scope == listing.ScopeOwn {
		tx = tx.Where("created_by = ?", ownerID)
	}
	res := tx.Updates(map[string]any{
		"date":           rep.Date,
		"loan_ac_no":     rep.LoanAcNo,
		"customer_name":  rep.CustomerName,
		"loan_amount":    rep.LoanAmount,
		"location":       rep.Location,
		"region":         rep.Region,
		"state":          rep.State,
		"lar_remarks":    rep.LARRemarks,
		"payment_status": rep.PaymentStatus,
		"invoice_status": rep.InvoiceStatus,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *InspectionRepository) Delete(ctx context.Context, reportID string) error {
	res := r.db.WithContext(ctx).Where("report_id = ?", reportID).Delete(&domain.Report{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
