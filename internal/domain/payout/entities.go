package payout

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentPartial PaymentStatus = "partial"
	PaymentOverdue PaymentStatus = "overdue"
)

var Months = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var ErrNotFound = errors.New("payout: report not found")

type Report struct {
	ID               uint64         `gorm:"primaryKey;column:id" json:"-"`
	ReportID         string         `gorm:"size:32;uniqueIndex:ux_payouts_report_id" json:"report_id"`
	Month            string         `gorm:"size:16" json:"month"`
	Financier        string         `gorm:"size:255" json:"financier"`
	LoanAmount       float64        `gorm:"type:decimal(18,2)" json:"loan_amount"`
	PayoutPercentage float64        `gorm:"type:decimal(6,2)" json:"payout_percentage"`
	AmountPaid       float64        `gorm:"type:decimal(18,2)" json:"amount_paid"`
	LessTDS          float64        `gorm:"type:decimal(18,2);column:less_tds" json:"less_tds"`
	// Nett is derived from AmountPaid - LessTDS on every write; a
	// client-supplied value is never trusted beyond display.
	Nett          float64        `gorm:"type:decimal(18,2)" json:"nett"`
	BankDetails   string         `gorm:"type:text" json:"bank_details"`
	PAN           string         `gorm:"size:32;column:pan" json:"pan"`
	SMName        string         `gorm:"size:255;column:sm_name" json:"sm_name"`
	ContactNo     string         `gorm:"size:32" json:"contact_no"`
	MailSent      string         `gorm:"type:enum('Yes','No');default:'No'" json:"mail_sent"`
	PaymentStatus PaymentStatus  `gorm:"type:enum('pending','paid','partial','overdue');default:'pending'" json:"payment_status"`
	CreatedBy     string         `gorm:"size:32;index:idx_payouts_created_by" json:"created_by"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Report) TableName() string { return "payout_reports" }

// Recompute enforces the nett invariant from the two source fields.
func (r *Report) Recompute() { r.Nett = r.AmountPaid - r.LessTDS }
